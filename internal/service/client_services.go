package service

import (
	"github.com/shruti514/semantic-multi-agent-search/internal/adapter"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/render"
)

type ClientServices struct {
	SessionController SessionController
}

func NewClientServices(searchAdapter adapter.SearchAdapter, cfg config.ClientAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionController: NewSessionController(searchAdapter, render.NewPipeline(), cfg.StallTimeout, logger),
	}
}
