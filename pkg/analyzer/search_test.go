package analyzer

import (
	"testing"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryTokens(t *testing.T) {
	got := New().QueryTokens("The login bug, LOGIN crash")
	assert.Equal(t, []string{"login", "bug", "crash"}, got)

	assert.Empty(t, New().QueryTokens("the and le"))
}

func TestRankNotes(t *testing.T) {
	notes := []models.Note{
		{ID: "c", Content: "login page redesign", Project: "web"},
		{ID: "a", Content: "Login bug: login fails after bug fix", Project: "web"},
		{ID: "b", Content: "disk usage alert", Project: "ops"},
		{ID: "d", Content: "bug triage", Project: "web"},
	}

	tests := []struct {
		name    string
		query   string
		limit   int
		wantIDs []string
		wantTop int
	}{
		{name: "ranked by occurrences", query: "login bug", limit: 0, wantIDs: []string{"a", "c", "d"}, wantTop: 4},
		{name: "limit", query: "login bug", limit: 1, wantIDs: []string{"a"}, wantTop: 4},
		{name: "ties by id", query: "redesign triage", limit: 0, wantIDs: []string{"c", "d"}, wantTop: 1},
		{name: "no match", query: "kubernetes", limit: 0, wantIDs: []string{}},
		{name: "stop words only", query: "the le", limit: 0, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := New().RankNotes(tt.query, notes, tt.limit)
			require.NotNil(t, hits)

			ids := make([]string, len(hits))
			for i, h := range hits {
				ids[i] = h.Note.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			if len(hits) > 0 {
				assert.Equal(t, tt.wantTop, hits[0].Score)
			}
		})
	}
}

func TestRankNotesReturnsOriginalContent(t *testing.T) {
	notes := []models.Note{{ID: "1", Content: "<p>release checklist</p>"}}
	hits := New(WithHTMLStripping(true)).RankNotes("release", notes, 0)
	require.Len(t, hits, 1)
	assert.Equal(t, "<p>release checklist</p>", hits[0].Note.Content)
}
