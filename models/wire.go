// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package models

// PhaseMessage is the JSON payload of a phase update on the wire.
//
//	{"phase":"retrieving","reasoning":"found 3 docs"}
//	{"phase":"formatting","reasoning":"done","content":"# Answer"}
type PhaseMessage struct {
	Phase     string `json:"phase"`
	Reasoning string `json:"reasoning,omitempty"`
	Content   string `json:"content,omitempty"`
}

// ErrorMessage is the JSON payload of a fatal failure on the wire.
//
//	{"error":"upstream unavailable"}
type ErrorMessage struct {
	Error string `json:"error"`
}

// NewPhaseMessage converts a [PhaseUpdate] into its wire form.
func NewPhaseMessage(u PhaseUpdate) PhaseMessage {
	return PhaseMessage{
		Phase:     u.Phase,
		Reasoning: u.Reasoning,
		Content:   u.Content,
	}
}
