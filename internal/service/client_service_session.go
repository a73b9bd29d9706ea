// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/adapter"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/render"
	"github.com/shruti514/semantic-multi-agent-search/internal/session"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

type sessionController struct {
	searchAdapter adapter.SearchAdapter
	pipeline      *render.Pipeline
	stallTimeout  time.Duration

	handle  adapter.StreamHandle
	machine *session.Machine
	view    render.View

	logger *logger.Logger
}

// NewSessionController creates a controller that opens streams through
// searchAdapter and renders with pipeline. A positive stallTimeout fails a
// session whose stream stays silent for that long.
func NewSessionController(searchAdapter adapter.SearchAdapter, pipeline *render.Pipeline, stallTimeout time.Duration, logger *logger.Logger) SessionController {
	machine := session.NewMachine()

	return &sessionController{
		searchAdapter: searchAdapter,
		pipeline:      pipeline,
		stallTimeout:  stallTimeout,
		machine:       machine,
		view:          pipeline.Render(machine.Snapshot()),
		logger:        logger,
	}
}

// Submit implements [SessionController].
func (c *sessionController) Submit(ctx context.Context, raw string) (bool, error) {
	query, ok := models.NewSessionQuery(raw)
	if !ok {
		return false, nil
	}

	c.closeHandle()
	c.machine = session.NewMachine()
	c.view = c.pipeline.Render(c.machine.Snapshot())

	handle, err := c.searchAdapter.Open(ctx, query)
	if err != nil {
		c.logger.Err(err).Msg("error opening search stream")
		c.machine.Apply(models.StreamError{Message: err.Error(), Transport: true})
		c.view = c.pipeline.Render(c.machine.Snapshot())
		return true, fmt.Errorf("error opening search stream: %w", err)
	}

	if c.stallTimeout > 0 {
		handle = newStallWatchdog(handle, c.stallTimeout, c.logger)
	}
	c.handle = handle

	c.logger.Info().Str("session_id", handle.ID()).Msg("search session started")
	return true, nil
}

// SessionID implements [SessionController].
func (c *sessionController) SessionID() string {
	if c.handle == nil {
		return ""
	}
	return c.handle.ID()
}

// Events implements [SessionController].
func (c *sessionController) Events() <-chan models.StreamEvent {
	if c.handle == nil {
		return nil
	}
	return c.handle.Events()
}

// Handle implements [SessionController].
func (c *sessionController) Handle(sessionID string, event models.StreamEvent) (render.View, bool) {
	if !c.current(sessionID) {
		c.logger.Debug().Str("session_id", sessionID).Msg("dropping event of a replaced session")
		return c.view, false
	}

	if !c.machine.Apply(event) {
		return c.view, false
	}

	return c.transitioned(sessionID), true
}

// ChannelClosed implements [SessionController].
func (c *sessionController) ChannelClosed(sessionID string) (render.View, bool) {
	if !c.current(sessionID) {
		return c.view, false
	}

	if !c.machine.Apply(models.StreamError{Message: MsgConnectionLost, Transport: true}) {
		c.closeHandle()
		return c.view, false
	}

	return c.transitioned(sessionID), true
}

// transitioned re-renders after a state change and releases the stream once
// the session is over.
func (c *sessionController) transitioned(sessionID string) render.View {
	state := c.machine.Snapshot()
	c.view = c.pipeline.Render(state)

	log := c.logger.Debug().Str("session_id", sessionID).Str("status", state.Status.String())
	if state.Phase != "" {
		log = log.Str("phase", state.Phase)
	}
	log.Msg("session state changed")

	if c.machine.Done() {
		c.closeHandle()
		if state.Status == session.StatusFailed {
			c.logger.Warn().Str("session_id", sessionID).Str("failure", state.Failure).Msg("search session failed")
		} else {
			c.logger.Info().Str("session_id", sessionID).Msg("search session completed")
		}
	}

	return c.view
}

// Run implements [SessionController].
func (c *sessionController) Run(ctx context.Context, raw string, onView func(render.View)) (render.View, error) {
	started, err := c.Submit(ctx, raw)
	if !started {
		return c.view, ErrEmptyQuery
	}
	if err != nil {
		return c.view, err
	}

	notify := func(view render.View, changed bool) {
		if changed && onView != nil {
			onView(view)
		}
	}

	sessionID := c.SessionID()
	events := c.Events()
	for !c.machine.Done() {
		select {
		case <-ctx.Done():
			c.closeHandle()
			return c.view, ctx.Err()
		case event, ok := <-events:
			if !ok {
				notify(c.ChannelClosed(sessionID))
				continue
			}
			notify(c.Handle(sessionID, event))
		}
	}

	return c.view, c.result()
}

func (c *sessionController) result() error {
	state := c.machine.Snapshot()
	if state.Status == session.StatusFailed {
		return fmt.Errorf("%w: %s", ErrSessionFailed, state.Failure)
	}
	return nil
}

// View implements [SessionController].
func (c *sessionController) View() render.View {
	return c.view
}

// State implements [SessionController].
func (c *sessionController) State() session.State {
	return c.machine.Snapshot()
}

// Close implements [SessionController].
func (c *sessionController) Close() {
	c.closeHandle()
}

func (c *sessionController) current(sessionID string) bool {
	return c.handle != nil && sessionID == c.handle.ID()
}

func (c *sessionController) closeHandle() {
	if c.handle == nil {
		return
	}
	c.handle.Close()
	c.handle = nil
}
