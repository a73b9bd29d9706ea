// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":  "1.2.3",
		"APP_LOG_FILE": "/tmp/client.log",

		"SERVER_ADDRESS":         "localhost:8000",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "https://search.example",
		"ADAPTER_CONNECT_TIMEOUT": "5s",
		"ADAPTER_STALL_TIMEOUT":   "2m",

		"SEARCH_PHASE_DELAY": "150ms",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://search.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.ConnectTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.StallTimeout)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.PhaseDelay)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:9000",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.StallTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Run.Query)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_STALL_TIMEOUT": "not-a-duration",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
