package tui

import (
	"fmt"
	"strings"

	"github.com/shruti514/semantic-multi-agent-search/internal/session"
)

func (m searchModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Semantic search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(divider(m.viewport.Width))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider(m.viewport.Width))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(keys.help())))

	return appStyle.Render(b.String())
}

func (m searchModel) renderStatusLine() string {
	switch {
	case m.status != "":
		return m.status
	case m.view.Progress.Visible:
		label := m.view.Progress.Label
		if label == "" {
			label = "Connecting"
		}
		return fmt.Sprintf("%s %s", m.spinner.View(), progressStyle.Render(label+"..."))
	case m.view.Status == session.StatusIdle:
		return progressStyle.Render("Type a question and press enter")
	}
	return ""
}

// renderBody is the scrollable part of the screen: completed phases, then
// the failure or the final answer.
func (m searchModel) renderBody() string {
	var b strings.Builder

	for _, block := range m.view.Transcript {
		b.WriteString(phaseStyle.Render(block.Label))
		b.WriteString("\n")
		b.WriteString(blockStyle.Render(block.Reasoning))
		b.WriteString("\n\n")
	}

	if m.view.Failed() {
		b.WriteString(errorStyle.Render("✗ " + m.view.Failure))
		b.WriteString("\n")
	}

	if m.view.Completed() && m.view.Markdown != "" {
		b.WriteString(m.renderAnswer())
	}

	return b.String()
}

// renderAnswer renders the final markdown, falling back to plain text.
func (m searchModel) renderAnswer() string {
	if m.renderer == nil {
		return m.view.Markdown
	}
	rendered, err := m.renderer.Render(m.view.Markdown)
	if err != nil {
		return m.view.Markdown
	}
	return rendered
}
