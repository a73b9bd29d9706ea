package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is shown in the build info window.
	Version string
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the search service.
	HTTPAddress string
	// ConnectTimeout bounds dialing the search service.
	ConnectTimeout time.Duration
	// StallTimeout enables the stream watchdog when positive.
	StallTimeout time.Duration
}

// ClientRun holds headless-mode settings.
type ClientRun struct {
	// Query is submitted once when non-empty.
	Query string
	// OutputPath receives the rendered HTML document.
	OutputPath string
}

// Headless reports whether the client should run one query without the
// terminal UI.
func (r ClientRun) Headless() bool {
	return r.Query != ""
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Run     ClientRun
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			ConnectTimeout: cfg.Adapter.ConnectTimeout,
			StallTimeout:   cfg.Adapter.StallTimeout,
		},
		Run: ClientRun{
			Query:      cfg.Run.Query,
			OutputPath: cfg.Run.OutputPath,
		},
	}
}
