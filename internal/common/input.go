package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/batch"
	dbpkg "github.com/dtnitsch/notia-analyzer/pkg/db"
	"github.com/dtnitsch/notia-analyzer/pkg/storage"
	"github.com/urfave/cli/v2"
)

// InputFormat returns --input-format, or guesses it from the input file extension.
func InputFormat(c *cli.Context) string {
	if f := c.String("input-format"); f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(c.String("input"))) {
	case ".yaml", ".yml":
		return batch.FormatYAML
	default:
		return batch.FormatJSON
	}
}

// LoadNotes returns the batch selected by the command flags and the bytes used to
// hash it. With --from-db notes come from the store and are hashed by their JSON
// encoding; otherwise they are read from --input (a file path or "-" for stdin).
func LoadNotes(c *cli.Context, cfg *models.Config) ([]models.Note, []byte, error) {
	if c.Bool("from-db") {
		database, err := dbpkg.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		notes, err := database.ListNotes(c.String("project"), 0)
		if err != nil {
			return nil, nil, err
		}
		data, err := batch.Encode(notes, batch.FormatJSON)
		if err != nil {
			return nil, nil, err
		}
		return notes, data, nil
	}

	input := c.String("input")
	if input == "" {
		return nil, nil, fmt.Errorf("no input provided: use --input FILE, --input - for stdin, or --from-db")
	}

	s := &storage.Storage{}
	if input != "-" && !s.HasFile(input) {
		return nil, nil, fmt.Errorf("input file %s does not exist", input)
	}
	data, err := s.ReadFile(input)
	if err != nil {
		return nil, nil, err
	}

	notes, err := batch.Decode(data, InputFormat(c))
	if err != nil {
		return nil, nil, err
	}
	return notes, data, nil
}
