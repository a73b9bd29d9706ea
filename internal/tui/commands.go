package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shruti514/semantic-multi-agent-search/models"
)

const statusTTL = 2 * time.Second

// waitForEvent reads one message from events. The update loop issues it
// again after every event as long as sessionID is still the open session.
func waitForEvent(sessionID string, events <-chan models.StreamEvent) tea.Cmd {
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return channelClosedMsg{sessionID: sessionID}
		}
		return eventMsg{sessionID: sessionID, event: event}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
