// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package render turns a session state into a [View].
//
// [Pipeline.Render] is a pure function: the same state always yields an
// identical view. Final answers are converted from markdown with goldmark,
// raw HTML disabled, and the result is passed through a bluemonday policy
// before it is exposed. If conversion fails the source is shown escaped in a
// <pre> block; unsanitized markup never leaves the package.
package render

import (
	"bytes"
	"html"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shruti514/semantic-multi-agent-search/internal/session"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// converter is the part of goldmark.Markdown the pipeline uses.
type converter interface {
	Convert(source []byte, w io.Writer, opts ...parser.ParseOption) error
}

// Pipeline renders session states. A Pipeline is safe for concurrent use.
type Pipeline struct {
	markdown converter
	policy   *bluemonday.Policy
}

// NewPipeline returns a pipeline rendering GitHub-flavoured markdown through
// the bluemonday user-generated-content policy.
func NewPipeline() *Pipeline {
	return &Pipeline{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Render builds the view of state. Remote text reaches terminals through the
// view, so every text field has its escape sequences removed; state itself
// is left as received.
func (p *Pipeline) Render(state session.State) View {
	view := View{
		Status:     state.Status,
		Transcript: make([]Block, 0, len(state.Transcript)),
	}

	for _, entry := range state.Transcript {
		view.Transcript = append(view.Transcript, Block{
			Label:     Label(ansi.Strip(entry.Phase)),
			Reasoning: ansi.Strip(entry.Reasoning),
		})
	}

	switch state.Status {
	case session.StatusActive:
		view.Progress = Progress{Visible: true, Label: Label(ansi.Strip(state.Phase))}
	case session.StatusCompleted:
		view.Content = p.toHTML(state.Content)
		view.Markdown = ansi.Strip(state.Content)
	case session.StatusFailed:
		view.Failure = ansi.Strip(state.Failure)
	}

	return view
}

// toHTML converts markdown to sanitized HTML, falling back to the escaped
// source.
func (p *Pipeline) toHTML(source string) string {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(source), &buf); err != nil {
		return "<pre>" + html.EscapeString(source) + "</pre>"
	}

	return p.policy.Sanitize(buf.String())
}

// Label returns phase with its first letter upper-cased for display.
func Label(phase string) string {
	r, size := utf8.DecodeRuneInString(phase)
	if r == utf8.RuneError {
		return phase
	}

	return string(unicode.ToUpper(r)) + phase[size:]
}
