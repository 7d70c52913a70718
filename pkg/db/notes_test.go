package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/dtnitsch/notia-analyzer/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertNote(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name    string
		note    models.Note
		wantErr bool
	}{
		{
			name: "generated ID",
			note: models.Note{Content: "Fix login bug", Project: "web", Tags: []string{"bug", "frontend"}},
		},
		{
			name: "explicit ID",
			note: models.Note{ID: "note-1", Content: "Le chat mange la souris", Project: "A"},
		},
		{
			name: "empty project",
			note: models.Note{ID: "note-2", Content: "Le chien court"},
		},
		{
			name:    "duplicate ID",
			note:    models.Note{ID: "note-1", Content: "again"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := db.InsertNote(tt.note)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InsertNote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if stored.ID == "" {
				t.Error("InsertNote() returned empty ID")
			}
			if tt.note.ID != "" && stored.ID != tt.note.ID {
				t.Errorf("InsertNote() ID = %q, want %q", stored.ID, tt.note.ID)
			}
			if stored.CreatedAt.IsZero() {
				t.Error("InsertNote() did not set CreatedAt")
			}
		})
	}

	count, err := db.CountNotes()
	if err != nil {
		t.Fatalf("CountNotes() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("CountNotes() = %d, want 3", count)
	}
}

func TestGetNote(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := db.InsertNote(models.Note{
		ID:        "n1",
		Content:   "l'école ferme",
		Project:   "fr",
		Tags:      []string{"school", "news"},
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("InsertNote() failed: %v", err)
	}

	note, err := db.GetNote("n1")
	if err != nil {
		t.Fatalf("GetNote() failed: %v", err)
	}
	if note.Content != "l'école ferme" || note.Project != "fr" {
		t.Errorf("GetNote() = %+v", note)
	}
	if len(note.Tags) != 2 || note.Tags[0] != "school" || note.Tags[1] != "news" {
		t.Errorf("GetNote() tags = %v, want [school news]", note.Tags)
	}
	if !note.CreatedAt.Equal(created) {
		t.Errorf("GetNote() created_at = %v, want %v", note.CreatedAt, created)
	}

	_, err = db.GetNote("missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("GetNote(missing) error = %v, want ErrNoteNotFound", err)
	}
}

func TestTagsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name string
		tags []string
	}{
		{name: "none", tags: nil},
		{name: "comma inside a tag", tags: []string{"a,b", "c"}},
		{name: "spaces and accents", tags: []string{" école ", "q3 plan"}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := fmt.Sprintf("tags-%d", i)
			if _, err := db.InsertNote(models.Note{ID: id, Content: "x", Tags: tt.tags}); err != nil {
				t.Fatalf("InsertNote() failed: %v", err)
			}
			note, err := db.GetNote(id)
			if err != nil {
				t.Fatalf("GetNote() failed: %v", err)
			}
			if !slices.Equal(note.Tags, tt.tags) {
				t.Errorf("GetNote() tags = %q, want %q", note.Tags, tt.tags)
			}
		})
	}
}

func TestInsertNotes(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	batch := []models.Note{
		{ID: "1", Content: "Le chat mange la souris", Project: "A"},
		{ID: "2", Content: "Le chien court", Project: "A", Tags: []string{"pets"}},
		{ID: "3", Content: "The cat sleeps", Project: "B"},
	}
	if err := db.InsertNotes(batch); err != nil {
		t.Fatalf("InsertNotes() failed: %v", err)
	}

	count, err := db.CountNotes()
	if err != nil {
		t.Fatalf("CountNotes() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("CountNotes() = %d, want 3", count)
	}

	if err := db.InsertNotes(nil); err != nil {
		t.Errorf("InsertNotes(nil) error = %v, want nil", err)
	}
}

func TestInsertNotesIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.InsertNote(models.Note{ID: "2", Content: "already here", Project: "A"}); err != nil {
		t.Fatalf("InsertNote() failed: %v", err)
	}

	err := db.InsertNotes([]models.Note{
		{ID: "1", Content: "first", Project: "A"},
		{ID: "2", Content: "clashes with a stored note", Project: "A"},
		{ID: "3", Content: "never reached", Project: "A"},
	})
	if err == nil {
		t.Fatal("InsertNotes() error = nil, want duplicate ID error")
	}

	count, err := db.CountNotes()
	if err != nil {
		t.Fatalf("CountNotes() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountNotes() = %d, want 1 after a failed import", count)
	}
	if _, err := db.GetNote("1"); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("GetNote(1) error = %v, want ErrNoteNotFound", err)
	}
	note, err := db.GetNote("2")
	if err != nil {
		t.Fatalf("GetNote(2) failed: %v", err)
	}
	if note.Content != "already here" {
		t.Errorf("GetNote(2) content = %q, want the original note", note.Content)
	}
}

func TestListNotes(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtures := []models.Note{
		{ID: "a", Content: "oldest", Project: "web", CreatedAt: base},
		{ID: "b", Content: "middle", Project: "ops", CreatedAt: base.Add(time.Hour)},
		{ID: "c", Content: "newest", Project: "web", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, n := range fixtures {
		if _, err := db.InsertNote(n); err != nil {
			t.Fatalf("InsertNote(%s) failed: %v", n.ID, err)
		}
	}

	tests := []struct {
		name    string
		project string
		limit   int
		wantIDs []string
	}{
		{name: "all newest first", wantIDs: []string{"c", "b", "a"}},
		{name: "by project", project: "web", wantIDs: []string{"c", "a"}},
		{name: "limit", limit: 2, wantIDs: []string{"c", "b"}},
		{name: "unknown project", project: "none", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := db.ListNotes(tt.project, tt.limit)
			if err != nil {
				t.Fatalf("ListNotes() failed: %v", err)
			}
			if notes == nil {
				t.Fatal("ListNotes() returned nil slice")
			}
			if len(notes) != len(tt.wantIDs) {
				t.Fatalf("ListNotes() returned %d notes, want %d", len(notes), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if notes[i].ID != id {
					t.Errorf("ListNotes()[%d] = %s, want %s", i, notes[i].ID, id)
				}
			}
		})
	}
}

func TestDeleteNote(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.InsertNote(models.Note{ID: "gone", Content: "temporary"}); err != nil {
		t.Fatalf("InsertNote() failed: %v", err)
	}

	if err := db.DeleteNote("gone"); err != nil {
		t.Fatalf("DeleteNote() failed: %v", err)
	}
	if _, err := db.GetNote("gone"); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("GetNote() after delete error = %v, want ErrNoteNotFound", err)
	}
	if err := db.DeleteNote("gone"); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("second DeleteNote() error = %v, want ErrNoteNotFound", err)
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if db.Path() != path {
		t.Errorf("Path() = %s, want %s", db.Path(), path)
	}
	if _, err := db.InsertNote(models.Note{ID: "persisted", Content: "still here"}); err != nil {
		t.Fatalf("InsertNote() failed: %v", err)
	}
	db.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	note, err := reopened.GetNote("persisted")
	if err != nil {
		t.Fatalf("GetNote() after reopen failed: %v", err)
	}
	if note.Content != "still here" {
		t.Errorf("GetNote() content = %q, want %q", note.Content, "still here")
	}
}
