package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shruti514/semantic-multi-agent-search/internal/agents"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// stubAppInfoService implements service.AppInfoService.
type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

// stubSearchService emits a fixed list of events and returns err.
type stubSearchService struct {
	events []models.StreamEvent
	err    error

	gotQuery models.SessionQuery
}

func (s *stubSearchService) Stream(ctx context.Context, query models.SessionQuery, emit service.EmitFunc) error {
	s.gotQuery = query
	for _, e := range s.events {
		if err := emit(e); err != nil {
			return err
		}
	}
	return s.err
}

func newStubServices(search service.SearchService) *service.Services {
	return &service.Services{
		AppInfoService: &stubAppInfoService{version: "1.2.3"},
		SearchService:  search,
		AgentsService:  service.NewAgentsService(agents.NewSearchProtocol(logger.Nop()), logger.Nop()),
	}
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 5 * time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
