package http

import (
	"errors"
	"net/http"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyQuery:            http.StatusBadRequest,
	service.ErrInvalidHistoryLimit:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	agents.ErrAgentNotFound: http.StatusInternalServerError,
	agents.ErrEmptyContent:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
