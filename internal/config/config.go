// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// search client and the demo search service. It is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the version and log file.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and timeouts of the search service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the search service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Search holds settings of the demo search pipeline.
	Search Search `envPrefix:"SEARCH_"`

	// Run holds one-shot client settings that only make sense on the
	// command line.
	Run Run

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the interactive client writes its logs. Empty means
	// a file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings of the search service.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds non-streaming requests. Search streams are not
	// bounded by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's connection settings for the search service.
type Adapter struct {
	// HTTPAddress is the base address of the search service, with or
	// without scheme (e.g. "localhost:8000", "https://search.example").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ConnectTimeout bounds dialing the search service. Zero disables it.
	// Env: ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// StallTimeout fails a session whose stream stays silent for longer
	// than this. Zero disables the watchdog.
	// Env: ADAPTER_STALL_TIMEOUT
	StallTimeout time.Duration `env:"STALL_TIMEOUT"`
}

// Search holds settings of the demo search pipeline.
type Search struct {
	// PhaseDelay is the pause between two emitted phases.
	// Env: SEARCH_PHASE_DELAY
	PhaseDelay time.Duration `env:"PHASE_DELAY"`
}

// Run holds one-shot client settings.
type Run struct {
	// Query switches the client to headless mode: the query is submitted
	// once and the process exits when the session ends.
	Query string

	// OutputPath is where headless mode writes the rendered HTML document.
	// Empty means stdout.
	OutputPath string
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "0.1.0",
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8000",
			ConnectTimeout: 10 * time.Second,
		},
		Search: Search{
			PhaseDelay: 200 * time.Millisecond,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
