package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
)

// Analysis is a recorded keyword run.
type Analysis struct {
	AnalysisID int64            `json:"analysis_id" yaml:"analysis_id"`
	CreatedAt  time.Time        `json:"created_at" yaml:"created_at"`
	BatchHash  string           `json:"batch_hash" yaml:"batch_hash"`
	Summary    models.Summary   `json:"summary" yaml:"summary"`
	TopN       int              `json:"top_n" yaml:"top_n"`
	Keywords   []models.Keyword `json:"keywords" yaml:"keywords"`
}

// RecordAnalysis stores the result of a keyword run, returning its analysis_id.
func (db *DB) RecordAnalysis(batchHash string, summary models.Summary, topN int, keywords []models.Keyword) (int64, error) {
	if keywords == nil {
		keywords = []models.Keyword{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO analyses (created_at, batch_hash, note_count, total_words, unique_projects, top_n, top_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, time.Now().UTC(), batchHash, summary.NoteCount, summary.TotalWordCount, summary.UniqueProjectCount, topN, string(keywordsJSON))
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	return id, nil
}

const analysisColumns = `analysis_id, created_at, batch_hash, note_count, total_words, unique_projects, top_n, top_keywords`

// GetAnalysis returns a recorded analysis by ID.
func (db *DB) GetAnalysis(id int64) (*Analysis, error) {
	row := db.QueryRow("SELECT "+analysisColumns+" FROM analyses WHERE analysis_id = ?", id)
	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses returns the most recent analyses first.
func (db *DB) ListAnalyses(limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query("SELECT "+analysisColumns+" FROM analyses ORDER BY created_at DESC, analysis_id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *a)
	}
	return analyses, rows.Err()
}

func scanAnalysis(row rowScanner) (*Analysis, error) {
	var a Analysis
	var keywordsJSON string
	err := row.Scan(&a.AnalysisID, &a.CreatedAt, &a.BatchHash,
		&a.Summary.NoteCount, &a.Summary.TotalWordCount, &a.Summary.UniqueProjectCount,
		&a.TopN, &keywordsJSON)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &a.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode top keywords: %w", err)
	}
	return &a, nil
}
