package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shruti514/semantic-multi-agent-search/internal/adapter"
	"github.com/shruti514/semantic-multi-agent-search/internal/client"
	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/internal/tui"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("search-client", cfg.App.LogFile)
	buildInfo := newBuildInfo()
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Bool("headless", cfg.Run.Headless()).
		Msg("starting search client")

	searchAdapter, err := adapter.NewHTTPSearchAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create search adapter")
	}

	services := service.NewClientServices(searchAdapter, cfg.Adapter, log)

	var ui client.UI
	if !cfg.Run.Headless() {
		if ui, err = tui.New(services, buildInfo, log); err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(services, ui, cfg.Run, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
