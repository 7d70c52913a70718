// Package analyzer is the entry point for note analysis: batch statistics,
// ranked keywords and lexical search over notes.
//
// Both Summarize and Keywords are pure with respect to their input; an Analyzer
// holds only configuration and may be shared between goroutines.
package analyzer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analytics"
	"github.com/dtnitsch/notia-analyzer/pkg/batch"
	"github.com/dtnitsch/notia-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/notia-analyzer/pkg/parser"
)

// Analyzer runs the aggregation and keyword pipelines over note batches.
type Analyzer struct {
	analytics *analytics.Analytics
	parser    *parser.Parser
	workers   int
	stripHTML bool
	logger    *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets how many goroutines map notes to frequency tables.
// Values below 1 mean sequential processing.
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

// WithHTMLStripping converts HTML note bodies to text before analysis.
func WithHTMLStripping(enabled bool) Option {
	return func(a *Analyzer) { a.stripHTML = enabled }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithNormalizer replaces the default normalization stages.
func WithNormalizer(n *analytics.Normalizer) Option {
	return func(a *Analyzer) { a.analytics = &analytics.Analytics{Normalizer: n} }
}

// New creates an Analyzer. Without options it processes notes sequentially.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		analytics: &analytics.Analytics{},
		parser:    &parser.Parser{},
		workers:   1,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// prepare returns the notes the pipelines should see. The input is never modified.
func (a *Analyzer) prepare(notes []models.Note) []models.Note {
	if !a.stripHTML {
		return notes
	}
	out := make([]models.Note, len(notes))
	converted := 0
	for i, note := range notes {
		out[i] = note
		if parser.LooksLikeHTML(note.Content) {
			out[i].Content = a.parser.ContentText(note.Content)
			converted++
		}
	}
	a.logger.Debug("converted html notes", "count", converted, "total", len(notes))
	return out
}

// Summarize computes note count, total word count and unique project count.
func (a *Analyzer) Summarize(notes []models.Note) models.Summary {
	return analytics.Summarize(a.prepare(notes))
}

// Frequencies builds the merged keyword frequency table for notes.
func (a *Analyzer) Frequencies(notes []models.Note) map[string]int {
	intermediate := mapreduce.MapNotes(a.prepare(notes), a.analytics, a.workers)
	return mapreduce.Reduce(intermediate)
}

// Keywords returns up to topN keywords by descending count, ties by token.
// topN == 0 returns an empty slice; a negative topN is an error.
func (a *Analyzer) Keywords(notes []models.Note, topN int) ([]models.Keyword, error) {
	if topN < 0 {
		return nil, fmt.Errorf("top_n must be >= 0, got %d: %w", topN, models.ErrInvalidTopN)
	}
	if topN == 0 || len(notes) == 0 {
		return []models.Keyword{}, nil
	}

	frequencies := a.Frequencies(notes)
	a.logger.Debug("aggregated keyword frequencies", "notes", len(notes), "distinct_tokens", len(frequencies))

	return mapreduce.TopKeywords(frequencies, topN), nil
}

// KeywordsByProject ranks keywords separately for each project.
// Notes without a project are grouped under "".
func (a *Analyzer) KeywordsByProject(notes []models.Note, topN int) (map[string][]models.Keyword, error) {
	if topN < 0 {
		return nil, fmt.Errorf("top_n must be >= 0, got %d: %w", topN, models.ErrInvalidTopN)
	}

	groups := make(map[string][]models.Note)
	for _, note := range notes {
		groups[note.Project] = append(groups[note.Project], note)
	}

	out := make(map[string][]models.Keyword, len(groups))
	for project, group := range groups {
		keywords, err := a.Keywords(group, topN)
		if err != nil {
			return nil, err
		}
		out[project] = keywords
	}
	return out, nil
}

// AnalyzeNotesContent decodes a JSON batch and returns the summary sentence.
func (a *Analyzer) AnalyzeNotesContent(notesJSON string) (string, error) {
	notes, err := batch.Decode([]byte(notesJSON), batch.FormatJSON)
	if err != nil {
		return "", err
	}
	return a.Summarize(notes).String(), nil
}

// ExtractKeywords decodes a JSON batch and returns the ranked keywords rendered
// as {"token": count, ...}.
func (a *Analyzer) ExtractKeywords(notesJSON string, topN int) (string, error) {
	notes, err := batch.Decode([]byte(notesJSON), batch.FormatJSON)
	if err != nil {
		return "", err
	}
	keywords, err := a.Keywords(notes, topN)
	if err != nil {
		return "", err
	}
	return mapreduce.FormatKeywords(keywords), nil
}
