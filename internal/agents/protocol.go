// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package agents

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// maxHistory bounds the shared conversation history; older messages are
// dropped first.
const maxHistory = 1000

const (
	statusIdle       = "idle"
	statusProcessing = "processing"
)

// Protocol routes messages between registered agents. It is safe for
// concurrent use.
type Protocol struct {
	mu     sync.RWMutex
	agents map[string]Agent
	state  models.AgentState

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewProtocol returns a protocol with no registered agents.
func NewProtocol(logger *logger.Logger) *Protocol {
	return &Protocol{
		agents: make(map[string]Agent),
		state: models.AgentState{
			Context: make(map[string]string),
			Status:  statusIdle,
		},
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// Register adds agent under its ID, replacing any agent with the same ID.
func (p *Protocol) Register(agent Agent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.agents[agent.ID()] = agent
	p.logger.Debug().Str("agent_id", agent.ID()).Str("role", string(agent.Role())).Msg("agent registered")
}

// Send records a message from one agent to another and returns the
// recipient's response.
//
// Returns [ErrAgentNotFound] (wrapped) if no agent is registered under to,
// or the recipient's processing error.
func (p *Protocol) Send(ctx context.Context, from, to, content string, metadata map[string]string) (models.AgentMessage, error) {
	p.mu.Lock()
	agent, ok := p.agents[to]
	if !ok {
		p.mu.Unlock()
		return models.AgentMessage{}, fmt.Errorf("%w: %s", ErrAgentNotFound, to)
	}

	message := models.AgentMessage{
		ID:        p.ids.Generate(),
		Role:      models.RoleAssistant,
		Content:   content,
		Metadata:  maps.Clone(metadata),
		Timestamp: p.now(),
	}
	p.state.Messages = append(p.state.Messages, message)
	if overflow := len(p.state.Messages) - maxHistory; overflow > 0 {
		p.state.Messages = slices.Delete(p.state.Messages, 0, overflow)
	}
	p.mu.Unlock()

	p.logger.Debug().
		Str("from", from).
		Str("to", to).
		Str("message_id", message.ID).
		Msg("routing agent message")

	response, err := agent.Process(ctx, message)
	if err != nil {
		return models.AgentMessage{}, fmt.Errorf("agent %s failed to process message: %w", to, err)
	}

	return response, nil
}

// History returns the most recent limit messages, oldest first. A limit of
// zero or less returns the whole history.
func (p *Protocol) History(limit int) []models.AgentMessage {
	p.mu.RLock()
	defer p.mu.RUnlock()

	messages := p.state.Messages
	if limit > 0 && limit < len(messages) {
		messages = messages[len(messages)-limit:]
	}

	return slices.Clone(messages)
}

// AgentIDs returns the identifiers of the registered agents, sorted.
func (p *Protocol) AgentIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return slices.Sorted(maps.Keys(p.agents))
}

// AgentState describes the agent registered under id.
// Returns [ErrAgentNotFound] (wrapped) if there is none.
func (p *Protocol) AgentState(id string) (Info, error) {
	p.mu.RLock()
	agent, ok := p.agents[id]
	p.mu.RUnlock()

	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}

	return Info{ID: agent.ID(), Role: agent.Role(), State: agent.State()}, nil
}

// UpdateContext merges values into the shared context.
func (p *Protocol) UpdateContext(values map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	maps.Copy(p.state.Context, values)
}

// ClearContext removes every key of the shared context.
func (p *Protocol) ClearContext() {
	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.state.Context)
}

// Context returns a copy of the shared context.
func (p *Protocol) Context() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return maps.Clone(p.state.Context)
}
