// Package tui is the interactive terminal front-end of the search client.
//
// It shows one screen: a query input, the progress of the running session,
// the transcript of completed phases and the final answer rendered as
// terminal markdown. Events are pulled from the session controller one at
// a time by a command tagged with the session id, so events of a replaced
// session can never reach the current one.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionController == nil {
		return nil, errors.New("tui: session controller is required")
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the search screen until the user quits or ctx ends. The open
// session, if any, is closed before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	controller := t.services.SessionController
	defer controller.Close()

	model, err := newSearchModel(ctx, controller, t.buildInfo)
	if err != nil {
		return err
	}

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(searchModel); ok && result.quitting {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
