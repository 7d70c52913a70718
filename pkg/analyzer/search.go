package analyzer

import (
	"sort"

	"github.com/dtnitsch/notia-analyzer/models"
)

// ScoredNote is a search hit.
type ScoredNote struct {
	Note  models.Note `json:"note" yaml:"note"`
	Score int         `json:"score" yaml:"score"`
}

// QueryTokens normalizes a search query with the keyword pipeline,
// dropping duplicates but keeping first-seen order.
func (a *Analyzer) QueryTokens(query string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, t := range a.analytics.Tokens(query) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// RankNotes scores notes against query. A note's score is the number of
// occurrences of query keywords in its normalized content. Notes scoring zero are
// dropped; ties are ordered by note ID. limit <= 0 returns every hit.
func (a *Analyzer) RankNotes(query string, notes []models.Note, limit int) []ScoredNote {
	tokens := a.QueryTokens(query)
	if len(tokens) == 0 {
		return []ScoredNote{}
	}

	prepared := a.prepare(notes)
	hits := make([]ScoredNote, 0, len(notes))
	for i, note := range prepared {
		freq := a.analytics.WordFrequency(note.Content)
		score := 0
		for _, t := range tokens {
			score += freq[t]
		}
		if score > 0 {
			hits = append(hits, ScoredNote{Note: notes[i], Score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Note.ID < hits[j].Note.ID
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}
