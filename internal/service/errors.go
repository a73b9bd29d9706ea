package service

import (
	"errors"

	"github.com/shruti514/semantic-multi-agent-search/internal/app"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyQuery          = errors.New("query is empty")
	ErrInvalidHistoryLimit = errors.New("history limit must be a non-negative integer")
	ErrSessionFailed       = errors.New("search session failed")
)

// Messages of locally detected stream failures.
const (
	MsgConnectionLost = app.MsgConnectionLost
	MsgStreamStalled  = app.MsgStreamStalled
)

