package parser

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dtnitsch/page-snapshot/internal/common"
	"github.com/dtnitsch/page-snapshot/models"
)

const page = `<html><head>
	<title>Tables in markdown</title>
	<meta name="author" content="Ada">
	<meta property="og:url" content="https://example.com/tables">
</head><body>
	<nav>Home About</nav>
	<article>
		<h1>Tables in markdown</h1>
		<p>Markdown tables need a header row. Markdown tables also need a separator.</p>
		<table>
			<tr><th>Name</th><th align="right">Count</th></tr>
			<tr><td>rows</td><td align="right">2</td></tr>
		</table>
	</article>
</body></html>`

func newParser() *Parser {
	return New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestParseFull(t *testing.T) {
	snap, err := newParser().Parse(models.SnapshotRequest{
		URL:      "https://example.com/tables?ref=feed",
		HTML:     page,
		TagCount: 2,
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snap.TitleOr("") != "Tables in markdown" {
		t.Errorf("Title = %v", snap.Title)
	}
	if snap.AuthorOr("") != "Ada" {
		t.Errorf("Author = %v", snap.Author)
	}
	if snap.URL != "https://example.com/tables" {
		t.Errorf("URL = %q", snap.URL)
	}
	if snap.Status != models.StatusConverted {
		t.Errorf("Status = %q", snap.Status)
	}
	if strings.Contains(snap.Markdown, "About") {
		t.Errorf("navigation leaked into markdown:\n%s", snap.Markdown)
	}
	if !strings.Contains(snap.Markdown, "| Name | Count |\n| --- | ---: |") {
		t.Errorf("table missing from markdown:\n%s", snap.Markdown)
	}
	if snap.Hash != common.ContentHash([]byte(snap.Markdown)) {
		t.Errorf("Hash = %q does not match markdown", snap.Hash)
	}
	if len(snap.Tags) != 2 || snap.Tags[0] != "markdown" || snap.Tags[1] != "tables" {
		t.Errorf("Tags = %v", snap.Tags)
	}
	if snap.Metadata.Enriched {
		t.Error("enrichment ran without being requested")
	}
}

func TestParseMetaOnly(t *testing.T) {
	snap, err := newParser().Parse(models.SnapshotRequest{
		HTML: page,
		Mode: models.ParseModeMeta,
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snap.Status != models.StatusSkipped {
		t.Errorf("Status = %q, want skipped", snap.Status)
	}
	if snap.Markdown != "" || snap.Hash != "" {
		t.Errorf("meta mode produced markdown %q / hash %q", snap.Markdown, snap.Hash)
	}
	if snap.ReadTimeMinutes != 1 {
		t.Errorf("ReadTimeMinutes = %d", snap.ReadTimeMinutes)
	}
	if snap.Metadata.WordCount == 0 {
		t.Error("WordCount not measured")
	}
}

func TestParseEnrichKeepsMeasuredCounts(t *testing.T) {
	snap, err := newParser().Parse(models.SnapshotRequest{
		URL:    "https://example.com/tables",
		HTML:   page,
		Enrich: true,
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snap.Metadata.WordCount == 0 {
		t.Error("enrichment dropped the measured word count")
	}
	if snap.Metadata.SiteType != "commercial" {
		t.Errorf("SiteType = %q", snap.Metadata.SiteType)
	}
}

func TestMergeMetadata(t *testing.T) {
	measured := models.PageMetadata{WordCount: 10, ImageCount: 2, EstimatedReadMin: 0.5}
	enriched := models.PageMetadata{WordCount: 99, Language: "en", SiteName: "Example", Enriched: true}

	got := mergeMetadata(measured, enriched)
	want := models.PageMetadata{
		WordCount:        10,
		ImageCount:       2,
		EstimatedReadMin: 0.5,
		Language:         "en",
		SiteName:         "Example",
		Enriched:         true,
	}
	if got != want {
		t.Errorf("mergeMetadata() = %+v, want %+v", got, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	snap, err := newParser().Parse(models.SnapshotRequest{URL: "https://example.com/empty"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if snap.Title != nil || snap.Author != nil {
		t.Errorf("expected nil title and author, got %v %v", snap.Title, snap.Author)
	}
	if snap.URL != "https://example.com/empty" {
		t.Errorf("URL = %q", snap.URL)
	}
	if snap.ReadTimeMinutes != 0 {
		t.Errorf("ReadTimeMinutes = %d", snap.ReadTimeMinutes)
	}
}
