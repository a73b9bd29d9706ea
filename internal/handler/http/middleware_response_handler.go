// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code, the body size and the number of flushes of a
// response for the access log.
//
// It forwards flushes and exposes the wrapped writer through Unwrap, so
// [http.NewResponseController] can still stream server-sent events through
// it. WriteHeader is forwarded to the underlying writer exactly once.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// size is the running total of bytes successfully written to the response body.
	size int

	// flushes counts Flush calls, one per streamed event.
	flushes int
}

// WriteHeader records the status code and forwards it to the underlying
// [http.ResponseWriter] exactly once. Later calls are no-ops.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying [http.ResponseWriter] and accumulates
// the number of bytes written. A Write without a prior WriteHeader implies
// [http.StatusOK].
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush sends buffered data to the client. It is a no-op when the
// underlying writer cannot flush.
func (w *responseWriter) Flush() {
	_ = w.FlushError()
}

// FlushError flushes the underlying writer and reports
// [http.ErrNotSupported] when it cannot. Without a prior WriteHeader it
// implies [http.StatusOK].
func (w *responseWriter) FlushError() error {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if err := http.NewResponseController(w.ResponseWriter).Flush(); err != nil {
		return err
	}
	w.flushes++
	return nil
}

// Unwrap returns the wrapped writer for [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
