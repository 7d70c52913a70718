package models

import (
	"fmt"
	"strings"
)

// Summary holds the coarse statistics for a batch of notes.
type Summary struct {
	NoteCount          int `json:"note_count" yaml:"note_count"`
	TotalWordCount     int `json:"total_word_count" yaml:"total_word_count"`
	UniqueProjectCount int `json:"unique_project_count" yaml:"unique_project_count"`
}

// String renders the summary in the sentence form downstream consumers parse.
func (s Summary) String() string {
	return fmt.Sprintf("Analyzed %d notes. Total word count: %d. Found %d unique projects.",
		s.NoteCount, s.TotalWordCount, s.UniqueProjectCount)
}

// Keyword is a normalized token and its occurrence count across a batch.
type Keyword struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// String formats the keyword as "token:count" (e.g., "learning:1153").
func (k Keyword) String() string {
	return fmt.Sprintf("%s:%d", k.Token, k.Count)
}

// KeywordStrings formats each keyword as "token:count".
func KeywordStrings(keywords []Keyword) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = k.String()
	}
	return out
}

// TotalCount sums the counts of the given keywords.
func TotalCount(keywords []Keyword) int {
	total := 0
	for _, k := range keywords {
		total += k.Count
	}
	return total
}

// JoinTokens returns the tokens in rank order separated by sep.
func JoinTokens(keywords []Keyword, sep string) string {
	tokens := make([]string, len(keywords))
	for i, k := range keywords {
		tokens[i] = k.Token
	}
	return strings.Join(tokens, sep)
}
