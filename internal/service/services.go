package service

import (
	"fmt"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
)

type Services struct {
	AppInfoService AppInfoService
	SearchService  SearchService
	AgentsService  AgentsService
}

// NewServices wires the services of the search service around a protocol
// with the standard search agents registered.
func NewServices(cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	protocol := agents.NewSearchProtocol(logger)

	return &Services{
		AppInfoService: appInfo,
		SearchService:  NewSearchService(protocol, cfg.Search, logger),
		AgentsService:  NewAgentsService(protocol, logger),
	}, nil
}
