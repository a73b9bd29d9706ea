// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package adapter provides the transport layer between the search client and
// the remote search service.
//
// The primary abstraction is [SearchAdapter], which opens one server-sent
// event stream per query and exposes it as a [StreamHandle]. The package
// ships an HTTP implementation ([NewHTTPSearchAdapter]) built on resty.
//
// Every failure of the transport (refused connection, non-2xx status, wrong
// content type, stream closed before the terminal phase) is delivered on the
// handle's event channel as a [models.StreamError] with Transport set, so the
// caller has exactly one place to observe a session ending. Error values in
// errors.go are used as the message text and for [errors.Is] checks in tests.
package adapter

import (
	"context"

	"github.com/shruti514/semantic-multi-agent-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_adapter_mock.go -package=mock

// SearchAdapter opens search streams against the remote service.
type SearchAdapter interface {
	// Open starts a stream for query and returns immediately. The request
	// itself runs on the handle's reader goroutine; if it fails, the failure
	// arrives as a [models.StreamError] on [StreamHandle.Events].
	//
	// Cancelling ctx has the same effect as [StreamHandle.Close].
	// Returns [ErrEmptyQuery] if query is empty.
	Open(ctx context.Context, query models.SessionQuery) (StreamHandle, error)
}

// StreamHandle is one open search stream.
type StreamHandle interface {
	// ID returns the identifier of this stream. Identifiers are unique per
	// handle, so events of a replaced stream can be told apart.
	ID() string

	// Events delivers decoded events in arrival order. The channel is closed
	// after the last event: after a terminal event, after a transport error,
	// or once the handle is closed.
	Events() <-chan models.StreamEvent

	// Close cancels the request and releases the connection. It is safe to
	// call more than once and after the stream ended on its own. No events
	// are delivered after Close returns.
	Close()
}
