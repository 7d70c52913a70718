package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note ID does not exist.
var ErrNoteNotFound = errors.New("note not found")

// InsertNote stores a note, assigning a UUID and creation time when missing.
// Returns the note as stored.
func (db *DB) InsertNote(note models.Note) (models.Note, error) {
	note, err := insertNote(db, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return note, nil
}

// InsertNotes stores a batch in one transaction. If any note fails, none are kept.
func (db *DB) InsertNotes(notes []models.Note) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, n := range notes {
		if _, err := insertNote(tx, n); err != nil {
			return fmt.Errorf("failed to insert note %d (%q): %w", i, n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func insertNote(ex execer, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	note.CreatedAt = note.CreatedAt.UTC()

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = ex.Exec(`
		INSERT INTO notes (note_id, content, project, tags, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, note.ID, note.Content, note.Project, string(tagsJSON), note.CreatedAt)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// GetNote returns a single note by ID.
func (db *DB) GetNote(id string) (*models.Note, error) {
	row := db.QueryRow(`
		SELECT note_id, content, project, tags, created_at
		FROM notes
		WHERE note_id = ?
	`, id)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// ListNotes returns notes newest first. An empty project lists every project;
// limit <= 0 means no limit.
func (db *DB) ListNotes(project string, limit int) ([]models.Note, error) {
	query := `SELECT note_id, content, project, tags, created_at FROM notes`
	var args []interface{}

	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}
	query += " ORDER BY created_at DESC, note_id ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// DeleteNote removes a note by ID.
func (db *DB) DeleteNote(id string) error {
	result, err := db.Exec("DELETE FROM notes WHERE note_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", id, ErrNoteNotFound)
	}
	return nil
}

// CountNotes returns the number of stored notes.
func (db *DB) CountNotes() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var note models.Note
	var tags string
	if err := row.Scan(&note.ID, &note.Content, &note.Project, &tags, &note.CreatedAt); err != nil {
		return nil, err
	}
	// Stores created before tags became a JSON array hold '' here.
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &note.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	if len(note.Tags) == 0 {
		note.Tags = nil
	}
	return &note, nil
}
