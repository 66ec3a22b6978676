package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Body(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "content preferred over summary",
			entry: Entry{Content: "<p>full</p>", Summary: "<p>short</p>"},
			want:  "<p>full</p>",
		},
		{
			name:  "summary fallback",
			entry: Entry{Summary: "<p>short</p>"},
			want:  "<p>short</p>",
		},
		{
			name:  "both empty",
			entry: Entry{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Body())
		})
	}
}
