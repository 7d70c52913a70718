package analytics

import (
	"strings"

	"github.com/dtnitsch/notia-analyzer/models"
)

// Analytics computes per-note statistics. The zero value uses DefaultNormalizer.
type Analytics struct {
	Normalizer *Normalizer
}

func (a *Analytics) normalizer() *Normalizer {
	if a == nil || a.Normalizer == nil {
		return DefaultNormalizer
	}
	return a.Normalizer
}

// Tokens returns the keyword tokens of text in order of appearance.
func (a *Analytics) Tokens(text string) []string {
	return a.normalizer().Tokenize(text)
}

// WordFrequency counts keyword tokens in a single text.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, token := range a.Tokens(text) {
		frequencies[token]++
	}
	return frequencies
}

// WordCount counts whitespace-delimited substrings with no normalization.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Summarize computes note, word and distinct non-empty project counts.
func Summarize(notes []models.Note) models.Summary {
	projects := make(map[string]struct{})
	summary := models.Summary{NoteCount: len(notes)}

	for _, note := range notes {
		summary.TotalWordCount += WordCount(note.Content)
		if note.Project != "" {
			projects[note.Project] = struct{}{}
		}
	}

	summary.UniqueProjectCount = len(projects)
	return summary
}
