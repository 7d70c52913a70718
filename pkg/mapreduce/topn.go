package mapreduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dtnitsch/notia-analyzer/models"
)

// isValidKeyword drops entries that cannot come out of the tokenizer:
// empty tokens and non-positive counts (e.g. from a hand-edited cache file).
func isValidKeyword(word string, count int) bool {
	return word != "" && count > 0
}

// Rank returns every entry of wordCounts sorted by count descending.
// Equal counts are ordered by token ascending so output is reproducible.
func Rank(wordCounts map[string]int) []models.Keyword {
	ss := make([]models.Keyword, 0, len(wordCounts))
	for k, v := range wordCounts {
		if isValidKeyword(k, v) {
			ss = append(ss, models.Keyword{Token: k, Count: v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Token < ss[j].Token
	})

	return ss
}

// TopKeywords returns the top N keywords from aggregated word counts.
// n <= 0 yields an empty (non-nil) slice; n larger than the table returns all entries.
func TopKeywords(wordCounts map[string]int, n int) []models.Keyword {
	if n <= 0 {
		return []models.Keyword{}
	}

	ss := Rank(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	return ss[:limit]
}

// FormatKeywords renders keywords as a pseudo object literal: {"word": 3, "other": 1}.
func FormatKeywords(keywords []models.Keyword) string {
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		parts[i] = fmt.Sprintf("\"%s\": %d", k.Token, k.Count)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
