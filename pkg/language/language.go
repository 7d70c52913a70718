// Package language detects whether notes are written in English or French.
//
// Detection is informational: reports show the language mix of a batch, but the
// keyword pipeline always applies the combined English and French stop words.
package language

import (
	"strings"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/pemistahl/lingua-go"
)

// Unknown is reported for notes whose language cannot be determined.
const Unknown = "unknown"

// minimumRelativeDistance makes the detector abstain on short, ambiguous notes.
const minimumRelativeDistance = 0.1

// Detector wraps a lingua detector restricted to the supported languages.
// It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for English and French.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.French).
			WithMinimumRelativeDistance(minimumRelativeDistance).
			Build(),
	}
}

// Detect returns the ISO 639-1 code ("en", "fr") of text.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Distribution counts notes per detected language code.
func (d *Detector) Distribution(notes []models.Note) map[string]int {
	dist := make(map[string]int)
	for _, note := range notes {
		code, ok := d.Detect(note.Content)
		if !ok {
			code = Unknown
		}
		dist[code]++
	}
	return dist
}
