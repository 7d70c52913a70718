package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/notia-analyzer/internal/common"
	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analyzer"
	"github.com/dtnitsch/notia-analyzer/pkg/batch"
	dbpkg "github.com/dtnitsch/notia-analyzer/pkg/db"
	"github.com/dtnitsch/notia-analyzer/pkg/storage"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func openDatabase(c *cli.Context) (*dbpkg.DB, *models.Config, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, cfg, nil
}

// AddAction stores a new note. Content comes from the arguments or --content.
func AddAction(c *cli.Context) error {
	database, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	content := c.String("content")
	if content == "" {
		content = strings.Join(c.Args().Slice(), " ")
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content is empty. Usage: notia notes add \"text\" --project NAME")
	}

	note, err := database.InsertNote(models.Note{
		ID:      c.String("id"),
		Content: content,
		Project: c.String("project"),
		Tags:    models.ParseTags(c.String("tags")),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Note added successfully with ID: %s\n", note.ID)
	return nil
}

// ListAction lists stored notes, newest first.
func ListAction(c *cli.Context) error {
	database, cfg, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	notes, err := database.ListNotes(c.String("project"), c.Int("limit"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	format := common.ResolveFormat(cfg.Format, w)
	if format != "table" {
		return common.WriteStructured(w, notes, format)
	}

	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found")
		return nil
	}

	rows := make([][]string, len(notes))
	for i, n := range notes {
		rows[i] = []string{
			n.ID,
			n.Project,
			strings.Join(n.Tags, ","),
			humanize.Time(n.CreatedAt),
			common.Truncate(strings.Join(strings.Fields(n.Content), " "), 60),
		}
	}
	fmt.Fprintln(w, common.RenderTable([]string{"ID", "Project", "Tags", "Created", "Content"}, rows, nil))
	fmt.Fprintf(w, "\nTotal: %d notes\n", len(notes))
	return nil
}

// ShowAction prints a single note.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("note ID is required")
	}

	database, cfg, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	note, err := database.GetNote(c.Args().First())
	if err != nil {
		return err
	}

	w := c.App.Writer
	format := common.ResolveFormat(cfg.Format, w)
	if format != "table" {
		return common.WriteStructured(w, note, format)
	}

	fmt.Fprintf(w, "Note %s\n", note.ID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Project:  %s\n", note.Project)
	fmt.Fprintf(w, "Tags:     %s\n", strings.Join(note.Tags, ", "))
	fmt.Fprintf(w, "Created:  %s (%s)\n", note.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(note.CreatedAt))
	fmt.Fprintf(w, "Words:    %d\n\n", len(strings.Fields(note.Content)))
	fmt.Fprintln(w, note.Content)
	return nil
}

// DeleteAction removes notes by ID.
func DeleteAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one note ID is required")
	}

	database, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, id := range c.Args().Slice() {
		if err := database.DeleteNote(id); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Note with ID %s has been deleted.\n", id)
	}
	return nil
}

// SearchAction ranks stored notes by keyword overlap with the query.
func SearchAction(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is empty")
	}

	database, cfg, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	notes, err := database.ListNotes(c.String("project"), 0)
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.WithHTMLStripping(cfg.StripHTML))
	hits := a.RankNotes(query, notes, c.Int("limit"))

	w := c.App.Writer
	format := common.ResolveFormat(cfg.Format, w)
	if format != "table" {
		return common.WriteStructured(w, hits, format)
	}

	if len(hits) == 0 {
		fmt.Fprintf(w, "No notes match %q (keywords: %s)\n", query, strings.Join(a.QueryTokens(query), ", "))
		return nil
	}

	rows := make([][]string, len(hits))
	for i, h := range hits {
		rows[i] = []string{
			strconv.Itoa(h.Score),
			h.Note.ID,
			h.Note.Project,
			common.Truncate(strings.Join(strings.Fields(h.Note.Content), " "), 60),
		}
	}
	fmt.Fprintln(w, common.RenderTable(
		[]string{"Score", "ID", "Project", "Content"},
		rows,
		[]common.ColumnAlignment{common.AlignRight},
	))
	return nil
}

// ImportAction loads a note batch into the store.
func ImportAction(c *cli.Context) error {
	database, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	s := &storage.Storage{}
	data, err := s.ReadFile(c.String("input"))
	if err != nil {
		return err
	}

	notes, err := batch.Decode(data, common.InputFormat(c))
	if err != nil {
		return err
	}

	if err := database.InsertNotes(notes); err != nil {
		return err
	}

	total, err := database.CountNotes()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Imported %d notes into %s (%d stored)\n", len(notes), database.Path(), total)
	return nil
}

// ExportAction writes stored notes as a batch that analyze/keywords accept.
func ExportAction(c *cli.Context) error {
	database, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	notes, err := database.ListNotes(c.String("project"), 0)
	if err != nil {
		return err
	}

	format := c.String("output-format")
	data, err := batch.Encode(notes, format)
	if err != nil {
		return err
	}

	if output := c.String("output"); output != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(output, data); err != nil {
			return err
		}
		stats, err := s.GetFileStats(output)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Exported %d notes to %s (%s)\n", len(notes), output, humanize.Bytes(uint64(stats.SizeBytes)))
		return nil
	}

	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

// AnalysesAction lists recorded keyword runs, or shows one when an ID is given.
func AnalysesAction(c *cli.Context) error {
	database, cfg, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	w := c.App.Writer
	format := common.ResolveFormat(cfg.Format, w)

	if c.NArg() > 0 {
		id, err := strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid analysis ID %q: %w", c.Args().First(), err)
		}
		analysis, err := database.GetAnalysis(id)
		if err != nil {
			return err
		}
		if format != "table" {
			return common.WriteStructured(w, analysis, format)
		}
		fmt.Fprintf(w, "Analysis %d (%s)\n", analysis.AnalysisID, humanize.Time(analysis.CreatedAt))
		fmt.Fprintf(w, "%s\n\n", analysis.Summary)
		fmt.Fprintln(w, common.KeywordTable(analysis.Keywords))
		return nil
	}

	analyses, err := database.ListAnalyses(c.Int("limit"))
	if err != nil {
		return err
	}

	if format != "table" {
		return common.WriteStructured(w, analyses, format)
	}

	if len(analyses) == 0 {
		fmt.Fprintln(w, "No analyses recorded. Run 'notia keywords --record' first")
		return nil
	}

	rows := make([][]string, len(analyses))
	for i, a := range analyses {
		rows[i] = []string{
			strconv.FormatInt(a.AnalysisID, 10),
			humanize.Time(a.CreatedAt),
			strconv.Itoa(a.Summary.NoteCount),
			strconv.Itoa(a.Summary.TotalWordCount),
			strconv.Itoa(a.TopN),
			common.Truncate(models.JoinTokens(a.Keywords, ", "), 50),
		}
	}
	fmt.Fprintln(w, common.RenderTable(
		[]string{"ID", "Created", "Notes", "Words", "Top", "Keywords"},
		rows,
		[]common.ColumnAlignment{common.AlignRight, common.AlignLeft, common.AlignRight, common.AlignRight, common.AlignRight},
	))
	return nil
}
