// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package session

import (
	"strings"

	"github.com/shruti514/semantic-multi-agent-search/models"
)

// Machine applies stream events to a session state.
//
//	Idle ──update──▶ Active ──update(formatting)──▶ Completed
//	  │                │
//	  └────error───────┴──error──▶ Failed
//
// The formatting update may arrive first, moving Idle straight to Completed.
type Machine struct {
	state State
}

// NewMachine returns a machine in [StatusIdle].
func NewMachine() *Machine {
	return &Machine{}
}

// Apply feeds one event to the machine and reports whether the state changed.
// Events applied after the session completed or failed are ignored.
func (m *Machine) Apply(event models.StreamEvent) bool {
	if m.state.Status.Terminal() {
		return false
	}

	switch e := event.(type) {
	case models.PhaseUpdate:
		m.applyUpdate(e)
		return true
	case models.StreamError:
		m.state.Status = StatusFailed
		m.state.Failure = e.Message
		return true
	default:
		return false
	}
}

func (m *Machine) applyUpdate(u models.PhaseUpdate) {
	reasoning := u.Reasoning
	if strings.TrimSpace(reasoning) == "" {
		reasoning = ReasoningPlaceholder
	}

	m.state.Phase = u.Phase
	m.state.Transcript = append(m.state.Transcript, Entry{Phase: u.Phase, Reasoning: reasoning})

	if u.Terminal() {
		m.state.Status = StatusCompleted
		m.state.Content = u.Content
		return
	}
	m.state.Status = StatusActive
}

// Snapshot returns a copy of the current state that later events do not
// affect.
func (m *Machine) Snapshot() State {
	return m.state.Clone()
}

// Done reports whether the session reached a final status.
func (m *Machine) Done() bool {
	return m.state.Status.Terminal()
}
