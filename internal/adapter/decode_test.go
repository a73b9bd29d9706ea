package adapter

import (
	"testing"

	"github.com/shruti514/semantic-multi-agent-search/models"
	"github.com/stretchr/testify/assert"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   models.StreamEvent
		wantOK bool
	}{
		{
			name:   "phase with reasoning",
			data:   `{"phase":"retrieving","reasoning":"found 3 docs"}`,
			want:   models.PhaseUpdate{Phase: "retrieving", Reasoning: "found 3 docs"},
			wantOK: true,
		},
		{
			name:   "phase without reasoning",
			data:   `{"phase":"ranking"}`,
			want:   models.PhaseUpdate{Phase: "ranking"},
			wantOK: true,
		},
		{
			name:   "terminal phase with content",
			data:   `{"phase":"formatting","reasoning":"done","content":"# Tensors"}`,
			want:   models.PhaseUpdate{Phase: "formatting", Reasoning: "done", Content: "# Tensors"},
			wantOK: true,
		},
		{
			name:   "error message",
			data:   `{"error":"upstream unavailable"}`,
			want:   models.StreamError{Message: "upstream unavailable"},
			wantOK: true,
		},
		{
			name:   "error wins over phase",
			data:   `{"phase":"ranking","error":"boom"}`,
			want:   models.StreamError{Message: "boom"},
			wantOK: true,
		},
		{
			name: "neither key",
			data: `{"status":"ok"}`,
		},
		{
			name: "invalid json",
			data: `{"phase":`,
		},
		{
			name: "not an object",
			data: `["phase"]`,
		},
		{
			name: "empty payload",
			data: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeEvent(tt.data)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
