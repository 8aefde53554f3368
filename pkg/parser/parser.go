package parser

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/page-snapshot/internal/common"
	"github.com/dtnitsch/page-snapshot/models"
	"github.com/dtnitsch/page-snapshot/pkg/detector"
	"github.com/dtnitsch/page-snapshot/pkg/extractor"
	"github.com/dtnitsch/page-snapshot/pkg/keywords"
	"github.com/dtnitsch/page-snapshot/pkg/markdown"
)

type Options struct {
	PreserveNestedTables bool
	Logger               *slog.Logger
}

// Parser turns raw HTML into a snapshot. It holds no per-request state
// and can be shared between goroutines.
type Parser struct {
	extractor *extractor.Extractor
	detector  *detector.Detector
}

func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conv := markdown.New(markdown.Options{PreserveNestedTables: opts.PreserveNestedTables})
	return &Parser{
		extractor: extractor.New(extractor.WithConverter(conv), extractor.WithLogger(logger)),
		detector:  detector.New(logger),
	}
}

// Parse builds a snapshot for req. The only error is an unreadable HTML
// document; conversion problems are reported through Snapshot.Status.
func (p *Parser) Parse(req models.SnapshotRequest) (*models.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	if req.URL != "" {
		if u, err := url.Parse(req.URL); err == nil {
			doc.Url = u
		}
	}

	var snap models.Snapshot
	switch models.ResolveParseMode(req) {
	case models.ParseModeMeta:
		snap = metaOnly(doc, req.URL)
	default:
		snap = p.extractor.Extract(doc, req.URL)
	}

	if req.Enrich {
		snap.Metadata = mergeMetadata(snap.Metadata, p.detector.Enrich(snap.URL, req.HTML))
	}

	if req.TagCount > 0 {
		text := snap.Markdown
		if text == "" {
			text = extractor.PlainText(doc)
		}
		snap.Tags = keywords.SuggestTags(req.TagCount, snap.TitleOr(""), text)
	}

	if snap.Markdown != "" {
		snap.Hash = common.ContentHash([]byte(snap.Markdown))
	}

	return &snap, nil
}

func metaOnly(doc *goquery.Document, location string) models.Snapshot {
	estimate := extractor.EstimateReadTime(doc)
	return models.Snapshot{
		Title:           extractor.SelectTitle(doc),
		URL:             extractor.SelectCanonicalURL(doc, location),
		Author:          extractor.SelectAuthor(doc),
		ReadTimeMinutes: estimate.Minutes,
		Status:          models.StatusSkipped,
		Metadata: models.PageMetadata{
			WordCount:        estimate.WordCount,
			ImageCount:       estimate.ImageCount,
			EstimatedReadMin: estimate.RawMinutes,
		},
	}
}

// mergeMetadata keeps the size signals measured on the page and takes
// everything else from the enrichment pass.
func mergeMetadata(measured, enriched models.PageMetadata) models.PageMetadata {
	enriched.WordCount = measured.WordCount
	enriched.ImageCount = measured.ImageCount
	enriched.EstimatedReadMin = measured.EstimatedReadMin
	return enriched
}
