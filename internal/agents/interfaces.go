// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package agents implements the agent-to-agent messaging used by the demo
// search service.
//
// A [Protocol] keeps a registry of [Agent] values, routes messages between
// them and records the shared conversation history and context. The package
// ships three deterministic agents that make up the search pipeline:
// [ResearchAgent], [AnalysisAgent] and [FormattingAgent].
package agents

import (
	"context"

	"github.com/shruti514/semantic-multi-agent-search/models"
)

// Agent processes messages routed to it by a [Protocol].
type Agent interface {
	// ID returns the identifier the agent is registered under.
	ID() string

	// Role returns the role stamped on the agent's responses.
	Role() models.AgentRole

	// Process handles one incoming message and returns the response.
	Process(ctx context.Context, message models.AgentMessage) (models.AgentMessage, error)

	// State returns a copy of the agent's own conversation state.
	State() models.AgentState
}

// Info describes a registered agent.
type Info struct {
	ID    string            `json:"agent_id"`
	Role  models.AgentRole  `json:"role"`
	State models.AgentState `json:"state"`
}
