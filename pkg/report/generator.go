package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analyzer"
	"github.com/dtnitsch/notia-analyzer/pkg/language"
	"github.com/dtnitsch/notia-analyzer/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Build assembles a report for notes. detector may be nil to skip language detection.
func Build(notes []models.Note, topN int, a *analyzer.Analyzer, detector *language.Detector) (*Report, error) {
	keywords, err := a.Keywords(notes, topN)
	if err != nil {
		return nil, err
	}

	byProject, err := a.KeywordsByProject(notes, topN)
	if err != nil {
		return nil, err
	}

	noteCounts := make(map[string]int)
	for _, n := range notes {
		noteCounts[n.Project]++
	}

	r := &Report{
		GeneratedAt:     time.Now().Format(time.RFC3339),
		TopN:            topN,
		Summary:         a.Summarize(notes),
		Keywords:        keywords,
		ProjectKeywords: make([]ProjectKeywords, 0, len(byProject)),
	}

	for project, kws := range byProject {
		r.ProjectKeywords = append(r.ProjectKeywords, ProjectKeywords{
			Project:   project,
			NoteCount: noteCounts[project],
			Keywords:  kws,
		})
	}
	sort.Slice(r.ProjectKeywords, func(i, j int) bool {
		return r.ProjectKeywords[i].Project < r.ProjectKeywords[j].Project
	})

	if detector != nil {
		r.Languages = detector.Distribution(notes)
	}

	return r, nil
}

// Marshal renders the report as indented JSON or YAML.
func Marshal(r *Report, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return json.MarshalIndent(r, "", "  ")
	case "yaml":
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Save writes the report to path. An empty path uses results/report-<date>.<format>.
// Returns the path written.
func Save(r *Report, path, format string, s *storage.Storage) (string, error) {
	if format == "" {
		format = "json"
	}
	if path == "" {
		path = fmt.Sprintf("results/report-%s.%s", time.Now().Format("2006-01-02"), format)
	}

	data, err := Marshal(r, format)
	if err != nil {
		return "", fmt.Errorf("error marshalling report: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving report: %w", err)
	}

	return path, nil
}
