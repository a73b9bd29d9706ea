package tui

import "github.com/shruti514/semantic-multi-agent-search/models"

// eventMsg carries one event of the stream identified by sessionID.
type eventMsg struct {
	sessionID string
	event     models.StreamEvent
}

// channelClosedMsg reports that the event channel of sessionID closed.
type channelClosedMsg struct {
	sessionID string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
