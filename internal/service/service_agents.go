package service

import (
	"context"
	"fmt"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// AgentsOverview is the inspection view of a protocol.
type AgentsOverview struct {
	Agents  []agents.Info         `json:"agents"`
	History []models.AgentMessage `json:"history"`
	Context map[string]string     `json:"context"`
}

type agentsService struct {
	protocol *agents.Protocol

	logger *logger.Logger
}

// NewAgentsService creates an [AgentsService] over protocol.
func NewAgentsService(protocol *agents.Protocol, logger *logger.Logger) AgentsService {
	return &agentsService{
		protocol: protocol,
		logger:   logger,
	}
}

// Overview implements [AgentsService].
func (s *agentsService) Overview(ctx context.Context, historyLimit int) (AgentsOverview, error) {
	if historyLimit < 0 {
		return AgentsOverview{}, fmt.Errorf("%w: %d", ErrInvalidHistoryLimit, historyLimit)
	}

	ids := s.protocol.AgentIDs()
	overview := AgentsOverview{
		Agents:  make([]agents.Info, 0, len(ids)),
		History: s.protocol.History(historyLimit),
		Context: s.protocol.Context(),
	}

	for _, id := range ids {
		info, err := s.protocol.AgentState(id)
		if err != nil {
			return AgentsOverview{}, fmt.Errorf("error reading agent state: %w", err)
		}
		overview.Agents = append(overview.Agents, info)
	}

	return overview, nil
}

// ClearContext implements [AgentsService].
func (s *agentsService) ClearContext(ctx context.Context) {
	s.protocol.ClearContext()
	logger.FromContext(ctx).Info().Msg("shared agent context cleared")
}
