// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/shruti514/semantic-multi-agent-search/internal/render"
	"github.com/shruti514/semantic-multi-agent-search/internal/service"
	"github.com/shruti514/semantic-multi-agent-search/internal/session"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// headerHeight is the number of lines above and below the viewport:
	// padding, title, input, progress and help.
	headerHeight = 9
)

type searchModel struct {
	ctx        context.Context
	controller service.SessionController
	buildInfo  models.AppBuildInfo

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	view   render.View
	status string

	width, height int

	showBuildInfo bool
	quitting      bool
}

func newSearchModel(ctx context.Context, controller service.SessionController, buildInfo models.AppBuildInfo) (searchModel, error) {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.Width = defaultWidth - 4
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	renderer, err := newMarkdownRenderer(defaultWidth)
	if err != nil {
		return searchModel{}, err
	}

	m := searchModel{
		ctx:        ctx,
		controller: controller,
		buildInfo:  buildInfo,
		input:      ti,
		spinner:    s,
		viewport:   viewport.New(defaultWidth, defaultHeight-headerHeight),
		renderer:   renderer,
		view:       controller.View(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.refreshViewport()

	return m, nil
}

// newMarkdownRenderer renders the final answer for the terminal. NO_COLOR
// selects the plain style.
func newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if os.Getenv("NO_COLOR") != "" {
		opts = append(opts, glamour.WithStylePath("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	return glamour.NewTermRenderer(opts...)
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case spinner.TickMsg:
		if m.view.Status != session.StatusActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eventMsg:
		view, changed := m.controller.Handle(msg.sessionID, msg.event)
		if changed {
			m.setView(view)
		}
		return m, m.nextEvent(msg.sessionID)

	case channelClosedMsg:
		if view, changed := m.controller.ChannelClosed(msg.sessionID); changed {
			m.setView(view)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Answer copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m searchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.submit):
		return m.submit()

	case key.Matches(msg, keys.copy):
		if !m.view.Completed() || m.view.Markdown == "" {
			m.status = "Nothing to copy yet"
			return m, cmdClearStatus()
		}
		return m, cmdCopy(m.view.Markdown)

	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.up), key.Matches(msg, keys.down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a session for the current input. Blank input changes
// nothing.
func (m searchModel) submit() (tea.Model, tea.Cmd) {
	started, err := m.controller.Submit(m.ctx, m.input.Value())
	if !started {
		return m, nil
	}

	m.setView(m.controller.View())
	if err != nil {
		return m, nil
	}

	m.status = ""
	return m, tea.Batch(
		waitForEvent(m.controller.SessionID(), m.controller.Events()),
		m.spinner.Tick,
	)
}

// nextEvent keeps pulling while sessionID is the open session.
func (m searchModel) nextEvent(sessionID string) tea.Cmd {
	if sessionID == "" || m.controller.SessionID() != sessionID {
		return nil
	}
	return waitForEvent(sessionID, m.controller.Events())
}

func (m *searchModel) setView(view render.View) {
	m.view = view
	m.refreshViewport()
}

func (m searchModel) resize(width, height int) searchModel {
	m.width, m.height = width, height

	m.input.Width = max(width-8, 10)
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-headerHeight, 3)

	if renderer, err := newMarkdownRenderer(m.viewport.Width); err == nil {
		m.renderer = renderer
	}
	m.refreshViewport()

	return m
}

func (m *searchModel) refreshViewport() {
	m.viewport.SetContent(m.renderBody())
	if m.view.Status == session.StatusActive {
		m.viewport.GotoBottom()
	}
}
