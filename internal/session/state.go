// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package session holds the phase state machine of one search session.
//
// A [Machine] consumes [models.StreamEvent] values in arrival order and keeps
// the session's [State]: its status, the current phase, the append-only
// transcript of phase reasoning, the final content and the failure message.
// Machines are not safe for concurrent use; a single driving loop owns each
// one and a new query always starts a fresh machine.
package session

import "slices"

// ReasoningPlaceholder is recorded in the transcript for a phase update whose
// reasoning is empty or blank.
const ReasoningPlaceholder = "No reasoning provided."

// Status is the lifecycle position of a session.
type Status int

const (
	// StatusIdle means no event has been applied yet.
	StatusIdle Status = iota
	// StatusActive means at least one non-terminal phase update arrived.
	StatusActive
	// StatusCompleted means the terminal phase arrived. Final.
	StatusCompleted
	// StatusFailed means a stream error arrived. Final.
	StatusFailed
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Entry is one transcript line.
type Entry struct {
	Phase     string
	Reasoning string
}

// State is a value snapshot of a session.
type State struct {
	Status Status

	// Phase is the most recent phase name, empty until the first update.
	Phase string

	// Transcript lists every applied phase update in arrival order,
	// duplicates included.
	Transcript []Entry

	// Content is the final markdown. Set only when Status is
	// StatusCompleted.
	Content string

	// Failure is the error message. Set only when Status is StatusFailed.
	Failure string
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Transcript = slices.Clone(s.Transcript)
	return s
}
