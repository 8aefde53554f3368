package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-snapshot/internal/common"
	"github.com/dtnitsch/page-snapshot/models"
	"github.com/dtnitsch/page-snapshot/pkg/extractor"
	"github.com/dtnitsch/page-snapshot/pkg/markdown"
	"github.com/dtnitsch/page-snapshot/pkg/parser"
	"github.com/dtnitsch/page-snapshot/pkg/storage"
)

// Exit codes.
const (
	exitUsage = 1
	exitIO    = 2
)

// metaFields are the keys printed by the meta command.
const metaFields = "title,url,author,read_time_minutes,metadata.word_count,metadata.image_count"

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// loadConfig reads --config when given and applies command flags on top.
func loadConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				return nil, cli.Exit(err.Error(), exitIO)
			}
			return nil, cli.Exit(err.Error(), exitUsage)
		}
		cfg = *loaded
	}

	if c.IsSet("format") {
		cfg.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("preserve-nested-tables") {
		cfg.PreserveNestedTables = c.Bool("preserve-nested-tables")
	}
	if c.IsSet("no-enrich") {
		cfg.Enrich = !c.Bool("no-enrich")
	}
	if c.IsSet("tags") {
		cfg.TagCount = c.Int("tags")
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Exit(err.Error(), exitUsage)
	}
	return &cfg, nil
}

// newStorage reads and writes through the app's streams so the
// commands can run against in-memory buffers.
func newStorage(c *cli.Context) *storage.Storage {
	return &storage.Storage{Stdin: c.App.Reader, Stdout: c.App.Writer}
}

func readInput(s *storage.Storage, c *cli.Context, logger *slog.Logger) (string, error) {
	data, err := s.ReadInput(c.String("input"))
	if err != nil {
		logger.Error("failed to read input", "input", c.String("input"), "error", err)
		return "", cli.Exit(err.Error(), exitIO)
	}
	return string(data), nil
}

func writeOutput(s *storage.Storage, c *cli.Context, logger *slog.Logger, data []byte) error {
	if err := s.WriteOutput(c.String("output"), data); err != nil {
		logger.Error("failed to write output", "output", c.String("output"), "error", err)
		return cli.Exit(err.Error(), exitIO)
	}
	if out := c.String("output"); out != "" && out != "-" {
		logger.Info("snapshot written", "output", out, "bytes", len(data))
	}
	return nil
}

func location(c *cli.Context) (string, error) {
	loc, err := common.NormalizeLocation(c.String("location"))
	if err != nil {
		return "", cli.Exit(err.Error(), exitUsage)
	}
	return loc, nil
}

func SnapshotAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	loc, err := location(c)
	if err != nil {
		return err
	}

	s := newStorage(c)
	html, err := readInput(s, c, logger)
	if err != nil {
		return err
	}

	p := parser.New(parser.Options{
		PreserveNestedTables: cfg.PreserveNestedTables,
		Logger:               logger,
	})
	snap, err := p.Parse(models.SnapshotRequest{
		URL:      loc,
		HTML:     html,
		Mode:     models.ParseModeFull,
		Enrich:   cfg.Enrich,
		TagCount: cfg.TagCount,
	})
	if err != nil {
		logger.Error("failed to parse document", "error", err)
		return cli.Exit(err.Error(), exitIO)
	}
	if snap.Status == models.StatusDegraded {
		logger.Warn("snapshot degraded to plain text", "reason", snap.Reason)
	}
	logger.Info("snapshot created",
		"url", snap.URL,
		"status", snap.Status,
		"read_time_minutes", snap.ReadTimeMinutes,
		"bytes", len(snap.Markdown))

	data, err := renderSnapshot(snap, cfg.Format, c.String("fields"))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	return writeOutput(s, c, logger, data)
}

func ConvertAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	s := newStorage(c)
	html, err := readInput(s, c, logger)
	if err != nil {
		return err
	}

	conv := markdown.New(markdown.Options{PreserveNestedTables: cfg.PreserveNestedTables})
	md, err := conv.Convert(html)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		return cli.Exit(err.Error(), exitIO)
	}
	return writeOutput(s, c, logger, []byte(md+"\n"))
}

func MetaAction(c *cli.Context) error {
	logger := newLogger(c)

	format := strings.ToLower(c.String("format"))
	if format != models.FormatJSON && format != models.FormatYAML {
		return cli.Exit(fmt.Sprintf("invalid format %q: expected json or yaml", format), exitUsage)
	}
	loc, err := location(c)
	if err != nil {
		return err
	}

	s := newStorage(c)
	html, err := readInput(s, c, logger)
	if err != nil {
		return err
	}

	snap, err := parser.New(parser.Options{Logger: logger}).Parse(models.SnapshotRequest{
		URL:  loc,
		HTML: html,
		Mode: models.ParseModeMeta,
	})
	if err != nil {
		logger.Error("failed to parse document", "error", err)
		return cli.Exit(err.Error(), exitIO)
	}

	data, err := renderSnapshot(snap, format, metaFields)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	return writeOutput(s, c, logger, data)
}

func ReadTimeAction(c *cli.Context) error {
	logger := newLogger(c)

	html, err := readInput(newStorage(c), c, logger)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Error("failed to parse document", "error", err)
		return cli.Exit(err.Error(), exitIO)
	}

	estimate := extractor.EstimateReadTime(doc)
	logger.Info("read time estimated",
		"words", estimate.WordCount,
		"images", estimate.ImageCount,
		"raw_minutes", estimate.RawMinutes)

	fmt.Fprintln(c.App.Writer, estimate.Minutes)
	return nil
}
