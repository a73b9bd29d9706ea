package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/render"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	run      config.ClientRun

	// out receives the HTML document when no output path is set.
	out io.Writer
	// progress receives the headless progress lines.
	progress io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, run config.ClientRun, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionController == nil {
		return nil, errors.New("client: session controller is required")
	}
	if ui == nil && !run.Headless() {
		return nil, errors.New("client: ui is required in interactive mode")
	}

	return &App{
		services: services,
		ui:       ui,
		run:      run,
		out:      os.Stdout,
		progress: os.Stderr,
		logger:   logger,
	}, nil
}

// Run starts the terminal UI, or runs the configured query headless. A user
// quitting the UI is a normal exit.
func (a *App) Run(ctx context.Context) error {
	if a.run.Headless() {
		return a.runHeadless(ctx)
	}

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// runHeadless drives one session to its end, prints a line per phase and
// writes the final document. The document is written for failed sessions
// too; the returned error then wraps [service.ErrSessionFailed].
func (a *App) runHeadless(ctx context.Context) error {
	controller := a.services.SessionController
	defer controller.Close()

	a.logger.Info().Str("query", a.run.Query).Msg("running headless search")

	view, runErr := controller.Run(ctx, a.run.Query, func(v render.View) {
		switch {
		case v.Progress.Visible:
			fmt.Fprintf(a.progress, "… %s\n", v.Progress.Label)
		case v.Failed():
			fmt.Fprintf(a.progress, "✗ %s\n", v.Failure)
		case v.Completed():
			fmt.Fprintln(a.progress, "✓ done")
		}
	})
	if runErr != nil && !errors.Is(runErr, service.ErrSessionFailed) {
		return runErr
	}

	if err := a.writeDocument(view); err != nil {
		return err
	}

	return runErr
}

func (a *App) writeDocument(view render.View) error {
	doc, err := view.HTML()
	if err != nil {
		return fmt.Errorf("error rendering document: %w", err)
	}

	if a.run.OutputPath == "" {
		_, err = io.WriteString(a.out, doc)
		return err
	}

	if err = os.WriteFile(a.run.OutputPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	a.logger.Info().Str("path", a.run.OutputPath).Msg("document written")

	return nil
}
