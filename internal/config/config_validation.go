// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that are invalid
// for every binary. Binary-specific rules live on the config views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ConnectTimeout < 0 || cfg.Adapter.StallTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Search.PhaseDelay < 0 {
		return ErrInvalidSearchConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.ConnectTimeout < 0 || cfg.Adapter.StallTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Run.OutputPath != "" && !cfg.Run.Headless() {
		return ErrInvalidRunConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Search.PhaseDelay < 0 {
		return ErrInvalidSearchConfigs
	}
	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
