package adapter

import (
	"errors"

	"github.com/shruti514/semantic-multi-agent-search/internal/app"
)

var (
	ErrEmptyQuery = errors.New("empty query")

	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("search endpoint not found")
	ErrInternalServerError   = errors.New("search service internal error")
	ErrBadGateway            = errors.New("search service unavailable")
	ErrUnexpectedContentType = errors.New("unexpected content type")

	// ErrConnectionLost is reported when the stream ends before its terminal
	// event or the service cannot be reached.
	ErrConnectionLost = errors.New(app.MsgConnectionLost)
)
