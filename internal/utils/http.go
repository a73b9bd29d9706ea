package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// StartEventStream writes the response headers of a server-sent events stream
// and flushes them so the client sees the 200 status before the first event.
func StartEventStream(w http.ResponseWriter) error {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	return http.NewResponseController(w).Flush()
}

// WriteEvent encodes data as JSON, writes it as a single `data:` message
// terminated by a blank line and flushes the connection.
//
// Returns an error if marshaling, writing or flushing fails. A flush error
// usually means the writer chain does not support streaming.
func WriteEvent(w http.ResponseWriter, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error encoding event: %w", err)
	}

	if _, err = fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("error writing event: %w", err)
	}

	if err = http.NewResponseController(w).Flush(); err != nil {
		return fmt.Errorf("error flushing event: %w", err)
	}

	return nil
}
