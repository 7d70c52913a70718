package mapreduce

import (
	"sync"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analytics"
)

// Map generates a word frequency map for a single note's content.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

type mapJob struct {
	index   int
	content string
}

type mapResult struct {
	index  int
	counts map[string]int
}

// MapNotes maps every note to its frequency table using up to workers goroutines.
// The returned slice is in input order, so Reduce sees the same sequence
// regardless of scheduling.
func MapNotes(notes []models.Note, a *analytics.Analytics, workers int) []map[string]int {
	intermediate := make([]map[string]int, len(notes))
	if len(notes) == 0 {
		return intermediate
	}

	if workers <= 1 || len(notes) == 1 {
		for i, note := range notes {
			intermediate[i] = Map(note.Content, a)
		}
		return intermediate
	}
	if workers > len(notes) {
		workers = len(notes)
	}

	jobs := make(chan mapJob, len(notes))
	results := make(chan mapResult, len(notes))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- mapResult{index: job.index, counts: Map(job.content, a)}
			}
		}()
	}

	for i, note := range notes {
		jobs <- mapJob{index: i, content: note.Content}
	}
	close(jobs)

	wg.Wait()
	close(results)

	for r := range results {
		intermediate[r.index] = r.counts
	}
	return intermediate
}
