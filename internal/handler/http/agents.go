package http

import (
	"net/http"
	"strconv"

	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
)

const (
	historyLimitParam   = "limit"
	defaultHistoryLimit = 20
)

// getAgents describes the search agents, the latest routed messages and the
// shared context. The history length defaults to [defaultHistoryLimit];
// limit=0 returns all of it.
func (h *Handler) getAgents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get(historyLimitParam); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			err = service.ErrInvalidHistoryLimit
			log.Err(err).Str("limit", raw).Msg("agents overview rejected")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		limit = parsed
	}

	overview, err := h.services.AgentsService.Overview(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("error reading agents overview")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, overview, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing agents overview")
	}
}

func (h *Handler) clearAgentsContext(w http.ResponseWriter, r *http.Request) {
	h.services.AgentsService.ClearContext(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
