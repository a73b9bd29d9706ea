package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

const searchPath = "/search"

type httpSearchAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPSearchAdapter constructs an HTTP implementation of [SearchAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the connect timeout. Streams
// themselves have no overall deadline.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSearchAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SearchAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.ConnectTimeout)
	client.SetBaseURL(baseURL)

	return &httpSearchAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Open implements [SearchAdapter]. It issues
// GET /search?query=<query> with Accept: text/event-stream on a new goroutine
// and returns the handle immediately.
func (h *httpSearchAdapter) Open(ctx context.Context, query models.SessionQuery) (StreamHandle, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ctx, cancel := context.WithCancel(ctx)
	id := h.ids.Generate()
	handleLogger := &logger.Logger{Logger: h.logger.With().Str("session_id", id).Logger()}

	handle := newStreamHandle(id, cancel, handleLogger)
	go handle.run(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetQueryParam("query", query.String()).
			SetHeader("Accept", eventStreamMediaType).
			SetHeader("Cache-Control", "no-cache").
			SetDoNotParseResponse(true).
			Get(searchPath)
	})

	handleLogger.Info().Str("query", query.String()).Msg("search stream requested")
	return handle, nil
}
