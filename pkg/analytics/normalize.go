package analytics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Stage is a single text transform in the normalization pipeline.
type Stage func(string) string

var (
	// contractionPattern matches a French elision at the start of a word: "qu'" or one
	// of d, l, c, j, n, t, s, q, u followed by an apostrophe. The leading group keeps
	// the boundary rune so it can be written back.
	contractionPattern = regexp.MustCompile(`(^|[^\p{L}\p{M}\p{Nd}\p{Pc}])(?:qu|[dlcjntsqu])['’]`)

	// noisePattern matches everything that is neither an ASCII letter, a Latin-1
	// letter (U+00C0-U+00FF) nor Unicode whitespace.
	noisePattern = regexp.MustCompile(`[^a-zA-Z\x{00C0}-\x{00FF}\t\n\v\f\r\x{85}\p{Z}]`)
)

// Fold composes the text to NFC and lowercases it.
// A Caser keeps state, so a fresh one is built per call.
func Fold(text string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}

// StripContractions removes elided prefixes without inserting a separator:
// "l'arbre" -> "arbre", "qu'il" -> "il". Must run before StripNoise, which would
// otherwise glue the elided letter onto the next word.
func StripContractions(text string) string {
	for {
		out := contractionPattern.ReplaceAllString(text, "${1}")
		if out == text {
			return out
		}
		// Chained elisions ("l'd'...") share a boundary rune, so a second pass is needed.
		text = out
	}
}

// StripNoise deletes digits, punctuation and symbols outright.
// "co2-neutre" becomes "coneutre".
func StripNoise(text string) string {
	return noisePattern.ReplaceAllString(text, "")
}

// Normalizer applies an ordered list of stages.
type Normalizer struct {
	stages []Stage
}

// DefaultNormalizer folds case, strips contractions, then strips noise.
var DefaultNormalizer = NewNormalizer(Fold, StripContractions, StripNoise)

// NewNormalizer takes a list of stages applied in order.
func NewNormalizer(stages ...Stage) *Normalizer {
	n := &Normalizer{}
	n.stages = append(n.stages, stages...)
	return n
}

// Normalize runs text through every stage.
func (n *Normalizer) Normalize(text string) string {
	for _, stage := range n.stages {
		text = stage(text)
	}
	return text
}

// IsKeyword reports whether a normalized token survives filtering:
// longer than one rune and not a stop word.
func IsKeyword(token string) bool {
	return utf8.RuneCountInString(token) > 1 && !IsStopword(token)
}

// Tokenize normalizes text and returns the surviving tokens in order.
func (n *Normalizer) Tokenize(text string) []string {
	fields := strings.Fields(n.Normalize(text))
	tokens := fields[:0]
	for _, f := range fields {
		if IsKeyword(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
