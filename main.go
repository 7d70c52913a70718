package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dtnitsch/notia-analyzer/internal/analyze"
	"github.com/dtnitsch/notia-analyzer/internal/db"
	"github.com/dtnitsch/notia-analyzer/models"
	"github.com/dtnitsch/notia-analyzer/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		info := models.NewErrorInfo(err)
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	globalFlags := []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "notia.yaml", Usage: "YAML config file", EnvVars: []string{"NOTIA_CONFIG"}},
		&cli.StringFlag{Name: "db", Usage: "SQLite database path (default: next to the binary)", EnvVars: []string{"NOTIA_DB"}},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: json, yaml, table (default: table on a terminal, json otherwise)", EnvVars: []string{"NOTIA_FORMAT"}},
		&cli.IntFlag{Name: "workers", Usage: "goroutines used to map notes", EnvVars: []string{"NOTIA_WORKERS"}},
		&cli.BoolFlag{Name: "strip-html", Usage: "convert HTML note bodies to text before analysis", EnvVars: []string{"NOTIA_STRIP_HTML"}},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		&cli.BoolFlag{Name: "verbose", Usage: "log debug output"},
	}

	inputFlags := func(extra ...cli.Flag) []cli.Flag {
		return append([]cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "note batch file, or - for stdin"},
			&cli.StringFlag{Name: "input-format", Usage: "batch format: json or yaml (default: from file extension)"},
			&cli.BoolFlag{Name: "from-db", Usage: "analyze notes from the store instead of --input"},
			&cli.StringFlag{Name: "project", Usage: "with --from-db, only notes of this project"},
		}, extra...)
	}

	topFlag := func() cli.Flag {
		return &cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "number of keywords to return", Value: models.DefaultTopN}
	}

	return &cli.App{
		Name:  "notia",
		Usage: "keyword and word-count analytics for project notes",
		Flags: globalFlags,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "count notes, words and distinct projects",
				Flags:  inputFlags(&cli.BoolFlag{Name: "legacy", Usage: "print the one-line summary sentence"}),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "keywords",
				Usage: "rank keywords after stop-word and noise filtering",
				Flags: inputFlags(
					topFlag(),
					&cli.BoolFlag{Name: "legacy", Usage: "print {\"token\": count, ...}"},
					&cli.StringFlag{Name: "cache-dir", Usage: "cache results in this directory", EnvVars: []string{"NOTIA_CACHE_DIR"}},
					&cli.DurationFlag{Name: "max-age", Usage: "cache entry lifetime", Value: models.DefaultCacheTTL},
					&cli.BoolFlag{Name: "record", Usage: "store the run in the analyses table"},
				),
				Action: analyze.KeywordsAction,
			},
			{
				Name:  "report",
				Usage: "summary, keywords, per-project keywords and language mix",
				Flags: inputFlags(
					topFlag(),
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the report to this file"},
					&cli.BoolFlag{Name: "detect-language", Usage: "detect note languages", Value: true},
				),
				Action: analyze.ReportAction,
			},
			{
				Name:  "cache",
				Usage: "show keyword cache usage",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "cache-dir", Usage: "cache directory", EnvVars: []string{"NOTIA_CACHE_DIR"}},
				},
				Action: analyze.CacheAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML quick-start guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
			{
				Name:  "notes",
				Usage: "manage the note store",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "add a note",
						ArgsUsage: "[content...]",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "content", Usage: "note content (default: the arguments)"},
							&cli.StringFlag{Name: "project", Aliases: []string{"p"}, Usage: "project name"},
							&cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: "comma-separated tags, e.g. \"bug,frontend\""},
							&cli.StringFlag{Name: "id", Usage: "note ID (default: random UUID)"},
						},
						Action: db.AddAction,
					},
					{
						Name:  "list",
						Usage: "list notes, newest first",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "project", Aliases: []string{"p"}},
							&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 50},
						},
						Action: db.ListAction,
					},
					{
						Name:      "show",
						Usage:     "show a note",
						ArgsUsage: "<id>",
						Action:    db.ShowAction,
					},
					{
						Name:      "delete",
						Usage:     "delete notes",
						ArgsUsage: "<id>...",
						Action:    db.DeleteAction,
					},
					{
						Name:      "search",
						Usage:     "rank notes by keyword overlap with a query",
						ArgsUsage: "<query...>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "project", Aliases: []string{"p"}},
							&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 5},
						},
						Action: db.SearchAction,
					},
					{
						Name:  "import",
						Usage: "load a note batch into the store",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "batch file, or - for stdin"},
							&cli.StringFlag{Name: "input-format", Usage: "json or yaml"},
						},
						Action: db.ImportAction,
					},
					{
						Name:  "export",
						Usage: "write stored notes as a batch",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "project", Aliases: []string{"p"}},
							&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
							&cli.StringFlag{Name: "output-format", Value: "json", Usage: "json or yaml"},
						},
						Action: db.ExportAction,
					},
					{
						Name:      "analyses",
						Usage:     "list recorded keyword runs, or show one",
						ArgsUsage: "[id]",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 10},
						},
						Action: db.AnalysesAction,
					},
				},
			},
		},
	}
}
