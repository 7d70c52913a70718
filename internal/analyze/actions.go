package analyze

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dtnitsch/notia-analyzer/internal/common"
	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/analyzer"
	"github.com/dtnitsch/notia-analyzer/pkg/caching"
	dbpkg "github.com/dtnitsch/notia-analyzer/pkg/db"
	"github.com/dtnitsch/notia-analyzer/pkg/language"
	"github.com/dtnitsch/notia-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/notia-analyzer/pkg/report"
	"github.com/dtnitsch/notia-analyzer/pkg/storage"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func newAnalyzer(cfg *models.Config, logger *slog.Logger) *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithWorkers(cfg.Workers),
		analyzer.WithHTMLStripping(cfg.StripHTML),
		analyzer.WithLogger(logger),
	)
}

// AnalyzeAction prints note, word and project counts for a batch.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	notes, _, err := common.LoadNotes(c, cfg)
	if err != nil {
		return err
	}

	summary := newAnalyzer(cfg, logger).Summarize(notes)
	logger.Info("analyzed notes",
		"notes", summary.NoteCount,
		"words", summary.TotalWordCount,
		"projects", summary.UniqueProjectCount)

	w := c.App.Writer
	if c.Bool("legacy") {
		_, err := fmt.Fprintln(w, summary.String())
		return err
	}

	format := common.ResolveFormat(cfg.Format, w)
	if format == "table" {
		fmt.Fprintln(w, common.RenderTable(
			[]string{"Notes", "Words", "Projects"},
			[][]string{{
				strconv.Itoa(summary.NoteCount),
				strconv.Itoa(summary.TotalWordCount),
				strconv.Itoa(summary.UniqueProjectCount),
			}},
			[]common.ColumnAlignment{common.AlignRight, common.AlignRight, common.AlignRight},
		))
		return nil
	}
	return common.WriteStructured(w, summary, format)
}

// KeywordsAction prints the top keywords of a batch.
func KeywordsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	notes, data, err := common.LoadNotes(c, cfg)
	if err != nil {
		return err
	}

	a := newAnalyzer(cfg, logger)
	topN := cfg.TopN
	batchHash := caching.Key(common.ContentHash(data), strconv.FormatBool(cfg.StripHTML))

	var cache *caching.Cache
	if cfg.CacheDir != "" {
		cache, err = caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
	}

	var keywords []models.Keyword
	cacheHit := false
	if cache != nil {
		keywords, cacheHit = cache.GetKeywords(batchHash, topN)
	}
	if !cacheHit {
		keywords, err = a.Keywords(notes, topN)
		if err != nil {
			return err
		}
		if cache != nil {
			if err := cache.SetKeywords(batchHash, topN, keywords); err != nil {
				logger.Warn("failed to cache keywords", "error", err)
			}
		}
	}
	logger.Info("extracted keywords", "notes", len(notes), "top_n", topN, "returned", len(keywords), "cache_hit", cacheHit)
	logger.Debug("top keywords", "keywords", models.KeywordStrings(keywords), "occurrences", models.TotalCount(keywords))

	if c.Bool("record") {
		if err := recordAnalysis(cfg, batchHash, a.Summarize(notes), topN, keywords, logger); err != nil {
			return err
		}
	}

	w := c.App.Writer
	if c.Bool("legacy") {
		_, err := fmt.Fprintln(w, mapreduce.FormatKeywords(keywords))
		return err
	}

	format := common.ResolveFormat(cfg.Format, w)
	if format == "table" {
		fmt.Fprintln(w, common.KeywordTable(keywords))
		return nil
	}
	return common.WriteStructured(w, keywords, format)
}

func recordAnalysis(cfg *models.Config, batchHash string, summary models.Summary, topN int, keywords []models.Keyword, logger *slog.Logger) error {
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	id, err := database.RecordAnalysis(batchHash, summary, topN, keywords)
	if err != nil {
		return err
	}
	logger.Info("recorded analysis", "analysis_id", id, "db", database.Path())
	return nil
}

// ReportAction builds a full report and writes it to --output or stdout.
func ReportAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	notes, _, err := common.LoadNotes(c, cfg)
	if err != nil {
		return err
	}

	var detector *language.Detector
	if cfg.DetectLanguage {
		detector = language.NewDetector()
	}

	r, err := report.Build(notes, cfg.TopN, newAnalyzer(cfg, logger), detector)
	if err != nil {
		return err
	}

	format := cfg.Format
	if format == "table" {
		format = "json"
	}

	if output := c.String("output"); output != "" {
		path, err := report.Save(r, output, format, &storage.Storage{})
		if err != nil {
			return err
		}
		logger.Info("report saved", "path", path, "notes", r.Summary.NoteCount)
		return nil
	}

	data, err := report.Marshal(r, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

// CacheAction prints the size of the keyword cache.
func CacheAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	if cfg.CacheDir == "" {
		return fmt.Errorf("no cache directory configured: set --cache-dir or cache_dir in the config file")
	}

	cache, err := caching.NewCache(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	size, err := cache.Size()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Cache %s: %s (entries expire after %s)\n", cfg.CacheDir, humanize.Bytes(uint64(size)), cfg.CacheTTL)
	return nil
}
