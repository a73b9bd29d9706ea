package agents

import "errors"

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrEmptyContent  = errors.New("message content is empty")
)
