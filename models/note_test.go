package models

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  ", nil},
		{"bug", []string{"bug"}},
		{"bug, frontend ,,ui", []string{"bug", "frontend", "ui"}},
	}
	for _, tt := range tests {
		if got := ParseTags(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSummaryString(t *testing.T) {
	s := Summary{NoteCount: 2, TotalWordCount: 8, UniqueProjectCount: 1}
	want := "Analyzed 2 notes. Total word count: 8. Found 1 unique projects."
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestKeywordHelpers(t *testing.T) {
	keywords := []Keyword{{Token: "chat", Count: 3}, {Token: "souris", Count: 1}}
	if got := KeywordStrings(keywords); !reflect.DeepEqual(got, []string{"chat:3", "souris:1"}) {
		t.Errorf("KeywordStrings() = %v", got)
	}
	if got := TotalCount(keywords); got != 4 {
		t.Errorf("TotalCount() = %d, want 4", got)
	}
	if got := JoinTokens(keywords, ", "); got != "chat, souris" {
		t.Errorf("JoinTokens() = %q", got)
	}
}
