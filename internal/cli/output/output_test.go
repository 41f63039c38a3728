package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRenderer_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	assert.False(t, r.IsTTY())
	assert.Same(t, &buf, r.Writer())
	assert.False(t, IsTerminal(&buf))
}

func TestRenderer_Success(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Success("Built %d files", 3)

	assert.Equal(t, "Built 3 files\n", buf.String())
}

func TestRenderer_FileTable(t *testing.T) {
	tests := []struct {
		name  string
		files []FileEntry
		want  []string
	}{
		{
			name:  "empty",
			files: nil,
			want:  []string{"(no files)"},
		},
		{
			name: "files with sizes",
			files: []FileEntry{
				{Path: "index.html", Size: 2048},
				{Path: "static/styles.css", Size: 512},
			},
			want: []string{"FILE", "SIZE", "index.html", "2.0 kB", "static/styles.css", "512 B", "2 FILES", "2.6 KB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewRenderer(&buf).FileTable(tt.files)

			out := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestRenderer_FileTableRowOrder(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).FileTable([]FileEntry{
		{Path: "index.html", Size: 1},
		{Path: "index.md", Size: 1},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "index.html"), strings.Index(out, "index.md"))
}
