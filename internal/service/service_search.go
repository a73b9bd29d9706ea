// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package service

import (
	"context"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/app"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// contextLastQuery is the shared agent context key holding the most recent
// query.
const contextLastQuery = "last_query"

// Reasoning texts of the phases that do not carry agent output.
const (
	reasoningInitializing = "I am analyzing your question to understand what you need..."
	reasoningFormatting   = "I have completed my search and prepared a response for you!"
)

type searchService struct {
	protocol   *agents.Protocol
	phaseDelay time.Duration

	logger *logger.Logger
}

// NewSearchService creates a [SearchService] that runs queries through the
// research, analysis and formatting agents registered in protocol, pausing
// cfg.PhaseDelay between phases.
func NewSearchService(protocol *agents.Protocol, cfg config.Search, logger *logger.Logger) SearchService {
	return &searchService{
		protocol:   protocol,
		phaseDelay: cfg.PhaseDelay,
		logger:     logger,
	}
}

// step is one agent hop of the pipeline.
type step struct {
	phase    string
	from, to string
	metadata map[string]string
}

var pipelineSteps = []step{
	{
		phase:    models.PhaseResearching,
		from:     agents.UserID,
		to:       agents.ResearcherID,
		metadata: map[string]string{agents.MetaResearchType: "web_search"},
	},
	{
		phase:    models.PhaseAnalyzing,
		from:     agents.ResearcherID,
		to:       agents.AnalyzerID,
		metadata: map[string]string{agents.MetaAnalysisType: "comprehensive"},
	},
	{
		phase:    models.PhaseFormatting,
		from:     agents.AnalyzerID,
		to:       agents.FormatterID,
		metadata: map[string]string{agents.MetaFormatType: "markdown"},
	},
}

// Stream implements [SearchService].
func (s *searchService) Stream(ctx context.Context, query models.SessionQuery, emit EmitFunc) error {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	log := s.logger.With().Str("trace_id", traceID).Str("query", query.String()).Logger()

	s.protocol.UpdateContext(map[string]string{contextLastQuery: query.String()})

	if err := emit(models.PhaseUpdate{Phase: models.PhaseInitializing, Reasoning: reasoningInitializing}); err != nil {
		return err
	}

	content := query.String()
	for _, st := range pipelineSteps {
		if err := s.pause(ctx); err != nil {
			return err
		}

		response, err := s.protocol.Send(ctx, st.from, st.to, content, st.metadata)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.Err(err).Str("phase", st.phase).Msg("search pipeline failed")
			return emit(models.StreamError{Message: app.MsgSearchFailed + err.Error()})
		}
		content = response.Content

		update := models.PhaseUpdate{Phase: st.phase, Reasoning: content}
		if models.IsTerminalPhase(st.phase) {
			update = models.PhaseUpdate{Phase: st.phase, Reasoning: reasoningFormatting, Content: content}
		}
		if err = emit(update); err != nil {
			return err
		}
		log.Debug().Str("phase", st.phase).Msg("phase emitted")
	}

	return nil
}

func (s *searchService) pause(ctx context.Context) error {
	if s.phaseDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.phaseDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
