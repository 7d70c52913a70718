// Package models defines data structures shared across the analyzer, store and CLI.
package models

import (
	"strings"
	"time"
)

// Note is a single free-text note as supplied by the host application.
type Note struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
	Project string `json:"project" yaml:"project"`

	// Store-only fields, ignored by the analytics.
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`
}

// ParseTags splits a comma-separated tag string, dropping empty entries.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
