// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenAnalyzer replaces the analysis agent with one that always fails.
type brokenAnalyzer struct {
	*agents.AnalysisAgent
}

func (brokenAnalyzer) Process(context.Context, models.AgentMessage) (models.AgentMessage, error) {
	return models.AgentMessage{}, errors.New("model unavailable")
}

func collectStream(t *testing.T, svc SearchService, ctx context.Context, query string) ([]models.StreamEvent, error) {
	t.Helper()
	var events []models.StreamEvent
	err := svc.Stream(ctx, models.SessionQuery(query), func(e models.StreamEvent) error {
		events = append(events, e)
		return nil
	})
	return events, err
}

func TestSearchService_Stream_Phases(t *testing.T) {
	svc := NewSearchService(agents.NewSearchProtocol(logger.Nop()), config.Search{}, logger.Nop())

	events, err := collectStream(t, svc, context.Background(), "what is a tensor?")

	require.NoError(t, err)
	require.Len(t, events, 4)

	phases := make([]string, 0, len(events))
	for _, e := range events {
		u, ok := e.(models.PhaseUpdate)
		require.True(t, ok, "unexpected event %#v", e)
		phases = append(phases, u.Phase)
	}
	assert.Equal(t, []string{
		models.PhaseInitializing,
		models.PhaseResearching,
		models.PhaseAnalyzing,
		models.PhaseFormatting,
	}, phases)

	assert.Equal(t, "Research results for: what is a tensor?", events[1].(models.PhaseUpdate).Reasoning)
	assert.Equal(t, "Analysis of: Research results for: what is a tensor?", events[2].(models.PhaseUpdate).Reasoning)

	final := events[3].(models.PhaseUpdate)
	assert.True(t, final.Terminal())
	assert.True(t, strings.HasPrefix(final.Content, "# Search results"))
	assert.Contains(t, final.Content, "what is a tensor?")
	for _, e := range events[:3] {
		assert.False(t, e.Terminal())
		assert.Empty(t, e.(models.PhaseUpdate).Content)
	}
}

func TestSearchService_Stream_AgentFailure(t *testing.T) {
	protocol := agents.NewSearchProtocol(logger.Nop())
	protocol.Register(brokenAnalyzer{agents.NewAnalysisAgent(agents.AnalyzerID)})
	svc := NewSearchService(protocol, config.Search{}, logger.Nop())

	events, err := collectStream(t, svc, context.Background(), "q")

	require.NoError(t, err)
	require.Len(t, events, 3)
	streamErr, ok := events[2].(models.StreamError)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(streamErr.Message, "Sorry, I encountered an error while processing your request: "))
	assert.Contains(t, streamErr.Message, "model unavailable")
	assert.False(t, streamErr.Transport)
}

func TestSearchService_Stream_EmitErrorStops(t *testing.T) {
	svc := NewSearchService(agents.NewSearchProtocol(logger.Nop()), config.Search{}, logger.Nop())
	gone := errors.New("client gone")

	calls := 0
	err := svc.Stream(context.Background(), "q", func(models.StreamEvent) error {
		calls++
		if calls == 2 {
			return gone
		}
		return nil
	})

	assert.ErrorIs(t, err, gone)
	assert.Equal(t, 2, calls)
}

func TestSearchService_Stream_PacesAndCancels(t *testing.T) {
	svc := NewSearchService(agents.NewSearchProtocol(logger.Nop()), config.Search{PhaseDelay: time.Hour}, logger.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	events, err := collectStream(t, svc, ctx, "q")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, events, 1)
	assert.Equal(t, models.PhaseInitializing, events[0].(models.PhaseUpdate).Phase)
}
