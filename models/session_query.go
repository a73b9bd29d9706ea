package models

import "strings"

// SessionQuery is the trimmed, non-empty text of one search request.
type SessionQuery string

// NewSessionQuery trims raw and returns it as a [SessionQuery]. The boolean
// is false when nothing but whitespace was entered; such input must never
// be submitted.
func NewSessionQuery(raw string) (SessionQuery, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", false
	}

	return SessionQuery(q), true
}

// String returns the query text.
func (q SessionQuery) String() string {
	return string(q)
}
