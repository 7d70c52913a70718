package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "json", ResolveFormat("", &buf))
	assert.Equal(t, "yaml", ResolveFormat("yaml", &buf))
	assert.Equal(t, "table", ResolveFormat("table", &buf))
}

func TestWriteStructured(t *testing.T) {
	summary := models.Summary{NoteCount: 2, TotalWordCount: 8, UniqueProjectCount: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, summary, "json"))
	assert.JSONEq(t, `{"note_count": 2, "total_word_count": 8, "unique_project_count": 1}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, WriteStructured(&buf, summary, "yaml"))
	assert.Contains(t, buf.String(), "total_word_count: 8")

	assert.Error(t, WriteStructured(&buf, summary, "xml"))
}

func TestKeywordTable(t *testing.T) {
	out := KeywordTable([]models.Keyword{{Token: "chat", Count: 12}, {Token: "souris", Count: 3}})
	assert.Contains(t, out, "Keyword")
	assert.Contains(t, out, "chat")
	assert.Contains(t, out, "souris")
	assert.Contains(t, out, "12")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil, nil))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer sentence here", 10, "a longe..."},
		{"élève élève élève", 8, "élève..."},
		{"tiny", 3, "tiny"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.input, tt.max), "Truncate(%q, %d)", tt.input, tt.max)
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("[]"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, ContentHash([]byte("[]")))
	assert.NotEqual(t, a, ContentHash([]byte("[ ]")))
}
