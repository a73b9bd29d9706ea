// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package app contains the user-facing message strings shared by the search
// client and the demo search service.
//
// Failure messages reach the user verbatim, either in the terminal UI or in
// an {"error": ...} event, so their wording lives in one place.
package app

const (
	// MsgConnectionLost is the failure of a stream that ended, or could not
	// be read, before its terminal event.
	MsgConnectionLost = "connection lost"

	// MsgStreamStalled is the failure of a stream that stayed silent for
	// longer than the configured stall timeout.
	MsgStreamStalled = "stream stalled"

	// MsgSearchFailed prefixes the agent error reported when the search
	// pipeline fails.
	MsgSearchFailed = "Sorry, I encountered an error while processing your request: "

	// MsgUnknownEvent replaces an event the service cannot encode.
	MsgUnknownEvent = "unknown event"
)
