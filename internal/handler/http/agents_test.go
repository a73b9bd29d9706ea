package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// newAgentsRouter returns a router over real search and agents services
// sharing one protocol, after running one search through it.
func newAgentsRouter(t *testing.T) http.Handler {
	t.Helper()
	protocol := agents.NewSearchProtocol(logger.Nop())
	services := &service.Services{
		AppInfoService: &stubAppInfoService{version: "1.2.3"},
		SearchService:  service.NewSearchService(protocol, config.Search{}, logger.Nop()),
		AgentsService:  service.NewAgentsService(protocol, logger.Nop()),
	}

	err := services.SearchService.Stream(context.Background(), "what is a tensor?", func(models.StreamEvent) error {
		return nil
	})
	require.NoError(t, err)

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func getOverview(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, service.AgentsOverview) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var overview service.AgentsOverview
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	}
	return rec, overview
}

func TestGetAgents_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantHistory int
	}{
		{name: "default limit", path: "/api/agents", wantStatus: http.StatusOK, wantHistory: 3},
		{name: "explicit limit", path: "/api/agents?limit=1", wantStatus: http.StatusOK, wantHistory: 1},
		{name: "whole history", path: "/api/agents?limit=0", wantStatus: http.StatusOK, wantHistory: 3},
		{name: "not a number", path: "/api/agents?limit=ten", wantStatus: http.StatusBadRequest},
		{name: "negative", path: "/api/agents?limit=-2", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, overview := getOverview(t, newAgentsRouter(t), tt.path)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rec.Body.String(), service.ErrInvalidHistoryLimit.Error())
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Len(t, overview.History, tt.wantHistory)
			require.Len(t, overview.Agents, 3)
			assert.Equal(t, agents.AnalyzerID, overview.Agents[0].ID)
			assert.Equal(t, models.RoleAnalyzer, overview.Agents[0].Role)
			assert.Equal(t, "what is a tensor?", overview.Context["last_query"])
		})
	}
}

func TestClearAgentsContext(t *testing.T) {
	router := newAgentsRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/agents/context", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, overview := getOverview(t, router, "/api/agents")
	assert.Empty(t, overview.Context)
	assert.Len(t, overview.History, 3)
}
