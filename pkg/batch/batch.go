// Package batch decodes and encodes note batches at the input boundary.
//
// A batch is a JSON array (or YAML sequence) of records with string "id",
// "content" and "project" fields. Unknown fields are ignored. A batch with any
// bad record is rejected as a whole; nothing is partially decoded.
package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/notia-analyzer/models"
	"gopkg.in/yaml.v3"
)

// Supported batch formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// rawNote uses pointers so a missing or null field can be told apart from "".
type rawNote struct {
	ID      *string  `yaml:"id"`
	Content *string  `yaml:"content"`
	Project *string  `yaml:"project"`
	Tags    []string `yaml:"tags,omitempty"`
}

// Decode parses data in the given format ("" means JSON).
// Every failure wraps models.ErrMalformedInput.
func Decode(data []byte, format string) ([]models.Note, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return decodeJSON(data)
	case FormatYAML, "yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported batch format %q: %w", format, models.ErrMalformedInput)
	}
}

// decodeJSON walks the token stream so that field names match exactly and
// appear at most once per record.
func decodeJSON(data []byte) ([]models.Note, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("failed to parse JSON: expected an array of notes: %w", models.ErrMalformedInput)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, jsonError(err)
	}

	notes := []models.Note{}
	for i := 0; dec.More(); i++ {
		fields, err := readRecord(dec, i)
		if err != nil {
			return nil, err
		}
		note, err := noteFromFields(fields, i)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if _, err := dec.Token(); err != nil {
		return nil, jsonError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse JSON: unexpected data after the array: %w", models.ErrMalformedInput)
	}
	return notes, nil
}

// readRecord reads one JSON object, keeping each value raw and rejecting repeated keys.
func readRecord(dec *json.Decoder, index int) (map[string]json.RawMessage, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, jsonError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse JSON: note %d: expected an object: %w", index, models.ErrMalformedInput)
	}

	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, jsonError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse JSON: note %d: expected a field name: %w", index, models.ErrMalformedInput)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("failed to parse JSON: note %d: duplicate field %q: %w", index, key, models.ErrMalformedInput)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, jsonError(err)
		}
		fields[key] = value
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, jsonError(err)
	}
	return fields, nil
}

func noteFromFields(fields map[string]json.RawMessage, index int) (models.Note, error) {
	var note models.Note
	required := []struct {
		name string
		dest *string
	}{
		{"id", &note.ID},
		{"content", &note.Content},
		{"project", &note.Project},
	}
	for _, f := range required {
		raw, ok := fields[f.name]
		if !ok || isNull(raw) {
			return models.Note{}, missingField("JSON", index, f.name)
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return models.Note{}, fmt.Errorf("failed to parse JSON: note %d: field %q must be a string: %w", index, f.name, models.ErrMalformedInput)
		}
	}

	if raw, ok := fields["tags"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &note.Tags); err != nil {
			return models.Note{}, fmt.Errorf("failed to parse JSON: note %d: field \"tags\" must be a list of strings: %w", index, models.ErrMalformedInput)
		}
	}
	return note, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func jsonError(err error) error {
	return fmt.Errorf("failed to parse JSON: %v: %w", err, models.ErrMalformedInput)
}

func decodeYAML(data []byte) ([]models.Note, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v: %w", err, models.ErrMalformedInput)
	}
	// An empty document decodes to a zero node.
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("failed to parse YAML: expected a sequence of notes: %w", models.ErrMalformedInput)
	}

	var raw []rawNote
	if err := doc.Content[0].Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v: %w", err, models.ErrMalformedInput)
	}
	return toNotes(raw)
}

func toNotes(raw []rawNote) ([]models.Note, error) {
	notes := make([]models.Note, len(raw))
	for i, r := range raw {
		switch {
		case r.ID == nil:
			return nil, missingField("YAML", i, "id")
		case r.Content == nil:
			return nil, missingField("YAML", i, "content")
		case r.Project == nil:
			return nil, missingField("YAML", i, "project")
		}
		notes[i] = models.Note{
			ID:      *r.ID,
			Content: *r.Content,
			Project: *r.Project,
			Tags:    r.Tags,
		}
	}
	return notes, nil
}

func missingField(format string, index int, field string) error {
	return fmt.Errorf("failed to parse %s: note %d: missing field %q: %w", format, index, field, models.ErrMalformedInput)
}

// Encode renders notes as a batch that Decode accepts.
func Encode(notes []models.Note, format string) ([]byte, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return json.MarshalIndent(notes, "", "  ")
	case FormatYAML, "yml":
		return yaml.Marshal(notes)
	default:
		return nil, fmt.Errorf("unsupported batch format %q", format)
	}
}
