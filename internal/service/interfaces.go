package service

import (
	"context"

	"github.com/shruti514/semantic-multi-agent-search/models"
)

// AppInfoService exposes static information about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EmitFunc delivers one event of a search stream to the transport. A
// non-nil error means the client is gone and the stream must stop.
type EmitFunc func(event models.StreamEvent) error

// SearchService runs the multi-phase search pipeline for a query.
type SearchService interface {
	// Stream emits the phase updates of query in order, ending with the
	// terminal formatting update or a StreamError. It returns when the
	// stream ends, ctx is done or emit fails; only the last two produce a
	// non-nil error.
	Stream(ctx context.Context, query models.SessionQuery, emit EmitFunc) error
}

// AgentsService exposes the search agents for inspection.
type AgentsService interface {
	// Overview describes every registered agent together with the last
	// historyLimit routed messages (all of them for zero) and the shared
	// context. A negative limit returns [ErrInvalidHistoryLimit].
	Overview(ctx context.Context, historyLimit int) (AgentsOverview, error)

	// ClearContext empties the context shared by the agents.
	ClearContext(ctx context.Context)
}
