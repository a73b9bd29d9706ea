// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package config

import "fmt"

// ServerConfig is the configuration view used by the demo search service.
type ServerConfig struct {
	App    App
	Server Server
	Search Search
}

// GetServerConfig builds and validates the service configuration from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Search: cfg.Search,
	}

	return serverCfg, serverCfg.validate()
}
