// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package models

import "time"

// AgentRole identifies the part an agent plays in the search pipeline.
type AgentRole string

const (
	RoleUser       AgentRole = "user"
	RoleAssistant  AgentRole = "assistant"
	RoleSystem     AgentRole = "system"
	RoleResearcher AgentRole = "researcher"
	RoleAnalyzer   AgentRole = "analyzer"
	RoleFormatter  AgentRole = "formatter"
)

// AgentMessage is the unit of communication between agents.
type AgentMessage struct {
	// ID is a unique message identifier (UUID v7).
	ID string `json:"message_id"`

	// Role is the role of the sender.
	Role AgentRole `json:"role"`

	// Content is the message body.
	Content string `json:"content"`

	// Metadata carries loosely typed hints such as "research_type" or
	// "format_type".
	Metadata map[string]string `json:"metadata,omitempty"`

	// Timestamp is the creation time of the message.
	Timestamp time.Time `json:"timestamp"`
}

// AgentState is the conversation state kept by the protocol and by every
// agent.
type AgentState struct {
	Messages []AgentMessage    `json:"messages"`
	Context  map[string]string `json:"context"`
	Status   string            `json:"status"`
}
