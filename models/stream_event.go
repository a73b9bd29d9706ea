// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package models

// PhaseFormatting is the terminal phase name. An update carrying it also
// carries the final markdown content and ends the session.
const PhaseFormatting = "formatting"

// Phase names emitted by the search service before the terminal phase.
// Clients treat them as opaque text.
const (
	PhaseInitializing = "initializing"
	PhaseResearching  = "researching"
	PhaseAnalyzing    = "analyzing"
)

// IsTerminalPhase reports whether phase ends a session. Only
// [PhaseFormatting] is terminal.
func IsTerminalPhase(phase string) bool {
	return phase == PhaseFormatting
}

// StreamEvent is one decoded message of a search stream. It is either a
// [PhaseUpdate] or a [StreamError]; no other implementations exist.
type StreamEvent interface {
	// Terminal reports whether the event ends the session.
	Terminal() bool

	isStreamEvent()
}

// PhaseUpdate reports that the search service entered Phase.
type PhaseUpdate struct {
	// Phase is the opaque phase name, e.g. "retrieving".
	Phase string

	// Reasoning is the free-form explanation attached to the phase.
	// It may be empty.
	Reasoning string

	// Content is the final markdown answer. It is only meaningful when
	// Phase is [PhaseFormatting].
	Content string
}

// Terminal implements [StreamEvent].
func (u PhaseUpdate) Terminal() bool {
	return IsTerminalPhase(u.Phase)
}

func (PhaseUpdate) isStreamEvent() {}

// StreamError signals an unrecoverable failure of a search stream.
type StreamError struct {
	// Message is shown to the user verbatim.
	Message string

	// Transport is true when the failure was detected locally (connection
	// lost, bad status, stalled stream) rather than sent by the service.
	Transport bool
}

// Terminal implements [StreamEvent]. Errors always end the session.
func (e StreamError) Terminal() bool {
	return true
}

// Error implements the error interface.
func (e StreamError) Error() string {
	return e.Message
}

func (StreamError) isStreamEvent() {}
