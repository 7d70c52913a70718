package report

import "github.com/dtnitsch/notia-analyzer/models"

// Report is a lightweight overview of a note batch: coarse statistics, the
// aggregate keyword ranking and a ranking per project.
type Report struct {
	GeneratedAt     string            `json:"generated_at" yaml:"generated_at"`
	TopN            int               `json:"top_n" yaml:"top_n"`
	Summary         models.Summary    `json:"summary" yaml:"summary"`
	Keywords        []models.Keyword  `json:"keywords" yaml:"keywords"`
	ProjectKeywords []ProjectKeywords `json:"project_keywords" yaml:"project_keywords"`
	Languages       map[string]int    `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// ProjectKeywords holds the keyword ranking of one project.
// Notes without a project are reported under an empty name.
type ProjectKeywords struct {
	Project   string           `json:"project" yaml:"project"`
	NoteCount int              `json:"note_count" yaml:"note_count"`
	Keywords  []models.Keyword `json:"keywords" yaml:"keywords"`
}
