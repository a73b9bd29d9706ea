// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package http

import (
	"net/http"

	"github.com/shruti514/semantic-multi-agent-search/internal/app"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// queryParam is the URL parameter carrying the search text.
const queryParam = "query"

// search streams the phases of one search as server-sent events.
//
// An empty query is rejected with 400 before the stream starts. Once the
// 200 status is written, failures can only be reported in-band: agent
// errors arrive as an {"error": ...} message, a gone client ends the
// handler silently.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query, ok := models.NewSessionQuery(r.URL.Query().Get(queryParam))
	if !ok {
		err := service.ErrEmptyQuery
		log.Err(err).Msg("search rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := utils.StartEventStream(w); err != nil {
		log.Err(err).Msg("error starting event stream")
		return
	}

	emit := func(event models.StreamEvent) error {
		return utils.WriteEvent(w, wireMessage(event))
	}

	err := h.services.SearchService.Stream(r.Context(), query, emit)
	switch {
	case err == nil:
		log.Info().Str("query", query.String()).Msg("search stream finished")
	case r.Context().Err() != nil:
		log.Info().Str("query", query.String()).Msg("client left before the search finished")
	default:
		log.Err(err).Str("query", query.String()).Msg("search stream aborted")
	}
}

// wireMessage converts event into the JSON payload sent to the client.
func wireMessage(event models.StreamEvent) any {
	switch e := event.(type) {
	case models.PhaseUpdate:
		return models.NewPhaseMessage(e)
	case models.StreamError:
		return models.ErrorMessage{Error: e.Message}
	default:
		return models.ErrorMessage{Error: app.MsgUnknownEvent}
	}
}
