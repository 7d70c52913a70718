package report

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analyzer"
	"github.com/dtnitsch/notia-analyzer/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var reportNotes = []models.Note{
	{ID: "1", Content: "login bug on login page", Project: "web"},
	{ID: "2", Content: "disk full on db host", Project: "ops"},
	{ID: "3", Content: "Le chien court", Project: ""},
}

func TestBuild(t *testing.T) {
	r, err := Build(reportNotes, 2, analyzer.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, r.TopN)
	assert.Equal(t, models.Summary{NoteCount: 3, TotalWordCount: 13, UniqueProjectCount: 2}, r.Summary)
	assert.Equal(t, []models.Keyword{{Token: "login", Count: 2}, {Token: "bug", Count: 1}}, r.Keywords)
	assert.Nil(t, r.Languages)

	require.Len(t, r.ProjectKeywords, 3)
	assert.Equal(t, "", r.ProjectKeywords[0].Project)
	assert.Equal(t, "ops", r.ProjectKeywords[1].Project)
	assert.Equal(t, "web", r.ProjectKeywords[2].Project)
	assert.Equal(t, 1, r.ProjectKeywords[2].NoteCount)
	assert.Equal(t, []models.Keyword{{Token: "db", Count: 1}, {Token: "disk", Count: 1}}, r.ProjectKeywords[1].Keywords)
}

func TestBuildRejectsNegativeTopN(t *testing.T) {
	_, err := Build(reportNotes, -1, analyzer.New(), nil)
	assert.ErrorIs(t, err, models.ErrInvalidTopN)
}

func TestMarshal(t *testing.T) {
	r, err := Build(reportNotes, 1, analyzer.New(), nil)
	require.NoError(t, err)

	data, err := Marshal(r, "json")
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Summary, decoded.Summary)
	assert.NotContains(t, string(data), "languages")

	data, err = Marshal(r, "yaml")
	require.NoError(t, err)
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, r.Keywords, fromYAML.Keywords)

	_, err = Marshal(r, "xml")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	r, err := Build(reportNotes, 3, analyzer.New(), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "report.yaml")
	written, err := Save(r, path, "yaml", &storage.Storage{})
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := (&storage.Storage{}).ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "note_count: 3"))
}
