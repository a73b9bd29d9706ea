// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shruti514/semantic-multi-agent-search/internal/session"
)

// Progress is the activity indicator shown while a session is running.
type Progress struct {
	Visible bool
	Label   string
}

// Block is one rendered transcript entry.
type Block struct {
	// Label is the display form of the phase name.
	Label string

	// Reasoning is the reasoning text, verbatim apart from removed terminal
	// escape sequences. Renderers must show it as preformatted text.
	Reasoning string
}

// View is the complete rendered output for one session state.
type View struct {
	Status     session.Status
	Progress   Progress
	Transcript []Block

	// Content is the sanitized HTML of the final answer. Empty unless the
	// session completed.
	Content string

	// Markdown is the final answer source with terminal control sequences
	// removed. Empty unless the session completed.
	Markdown string

	// Failure is the error message of a failed session, escape sequences
	// removed.
	Failure string
}

// Completed reports whether the view shows a final answer.
func (v View) Completed() bool {
	return v.Status == session.StatusCompleted
}

// Failed reports whether the view shows a failure block.
func (v View) Failed() bool {
	return v.Status == session.StatusFailed
}

// ContentHTML returns Content typed as trusted markup. Content has already
// been sanitized by the pipeline.
func (v View) ContentHTML() template.HTML {
	return template.HTML(v.Content)
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Search</title>
</head>
<body>
{{- if .Progress.Visible}}
<div class="progress" role="status">{{.Progress.Label}}…</div>
{{- end}}
<section class="transcript">
{{- range .Transcript}}
<div class="phase">
<h3>{{.Label}}</h3>
<pre>{{.Reasoning}}</pre>
</div>
{{- end}}
</section>
{{- if .Failed}}
<div class="failure" role="alert">{{.Failure}}</div>
{{- end}}
{{- if .Completed}}
<article class="answer">
{{.ContentHTML}}
</article>
{{- end}}
</body>
</html>
`))

// HTML renders the view as a standalone HTML document. Text fields are
// escaped by html/template; only the sanitized Content is inserted as markup.
func (v View) HTML() (string, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("error rendering document: %w", err)
	}

	return buf.String(), nil
}
