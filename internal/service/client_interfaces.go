package service

import (
	"context"

	"github.com/shruti514/semantic-multi-agent-search/internal/render"
	"github.com/shruti514/semantic-multi-agent-search/internal/session"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// SessionController owns the single search session of a client. It opens
// streams, feeds their events to the phase state machine and re-renders the
// view after every transition.
//
// A SessionController is driven by one loop (the TUI update loop or Run)
// and is not safe for concurrent use.
type SessionController interface {
	// Submit starts a session for raw. Blank input is ignored: Submit
	// returns false and nothing changes. Otherwise any open stream is
	// closed, the state and view are reset and a new stream is opened.
	// If the stream cannot be opened the new session is already failed and
	// the error is returned alongside true.
	Submit(ctx context.Context, raw string) (bool, error)

	// SessionID identifies the open stream, or is empty when none is open.
	SessionID() string

	// Events is the event channel of the open stream, or nil when none is
	// open.
	Events() <-chan models.StreamEvent

	// Handle applies one event received from the stream identified by
	// sessionID. Events of any other stream are dropped. It returns the
	// current view and whether it changed. Reaching a final state closes
	// the stream.
	Handle(sessionID string, event models.StreamEvent) (render.View, bool)

	// ChannelClosed reports that the event channel of sessionID closed. A
	// session still running at that point fails with "connection lost".
	ChannelClosed(sessionID string) (render.View, bool)

	// Run submits raw and drives the session to its end, calling onView
	// after every change. It returns the final view; the error wraps
	// ErrSessionFailed when the session failed, ErrEmptyQuery for blank
	// input, or ctx.Err() when ctx ends first.
	Run(ctx context.Context, raw string, onView func(render.View)) (render.View, error)

	// View returns the latest rendered view.
	View() render.View

	// State returns a snapshot of the session state.
	State() session.State

	// Close closes the open stream, if any.
	Close()
}
