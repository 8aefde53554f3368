// Package extractor turns a parsed HTML document into a snapshot: the
// main content as markdown plus title, canonical url, author and an
// estimated read time.
//
// None of the exported functions panic or return errors. Missing
// metadata yields nil or a fallback value, and a failed conversion
// degrades to the plain visible text of the page.
package extractor

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dtnitsch/page-snapshot/models"
	"github.com/dtnitsch/page-snapshot/pkg/markdown"
)

// MarkdownConverter converts an HTML fragment to markdown.
// *markdown.Converter satisfies it.
type MarkdownConverter interface {
	Convert(htmlInput string, opts ...converter.ConvertOptionFunc) (string, error)
}

type Extractor struct {
	converter MarkdownConverter
	logger    *slog.Logger
}

type Option func(*Extractor)

// WithConverter replaces the default markdown converter.
func WithConverter(c MarkdownConverter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// New returns an Extractor using a default markdown.Converter and
// slog.Default unless overridden.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.converter == nil {
		e.converter = markdown.New(markdown.Options{})
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract collects everything a snapshot needs from doc. location is the
// address the document was loaded from and is used when the page does
// not declare a canonical url.
func (e *Extractor) Extract(doc *goquery.Document, location string) models.Snapshot {
	estimate := EstimateReadTime(doc)
	result := e.ExtractSnapshot(doc)

	return models.Snapshot{
		Title:           SelectTitle(doc),
		URL:             SelectCanonicalURL(doc, location),
		Author:          SelectAuthor(doc),
		ReadTimeMinutes: estimate.Minutes,
		Markdown:        result.Markdown,
		Status:          result.Status,
		Reason:          result.Reason,
		Metadata: models.PageMetadata{
			WordCount:        estimate.WordCount,
			ImageCount:       estimate.ImageCount,
			EstimatedReadMin: estimate.RawMinutes,
		},
	}
}

// ExtractSnapshot converts the main content of doc to markdown. doc is
// not modified. Any failure, including a panic inside the converter, is
// logged and reported as a degraded result holding the page text.
func (e *Extractor) ExtractSnapshot(doc *goquery.Document) (result models.ConversionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.degrade(doc, fmt.Errorf("panic during conversion: %v", r))
		}
	}()

	if doc == nil {
		return e.degrade(nil, errors.New("no document"))
	}

	clone := goquery.CloneDocument(doc)
	clone.Find("script, style").Remove()

	inner, err := SelectContentNode(clone).Html()
	if err != nil {
		return e.degrade(doc, fmt.Errorf("failed to render content node: %w", err))
	}

	var opts []converter.ConvertOptionFunc
	if doc.Url != nil && doc.Url.Host != "" {
		opts = append(opts, converter.WithDomain(doc.Url.Scheme+"://"+doc.Url.Host))
	}

	md, err := e.converter.Convert(inner, opts...)
	if err != nil {
		return e.degrade(doc, err)
	}
	return models.Converted(md)
}

func (e *Extractor) degrade(doc *goquery.Document, err error) models.ConversionResult {
	e.logger.Error("snapshot conversion failed, using plain text", "error", err)
	return models.Degraded(PlainText(doc), err.Error())
}

// PlainText returns the visible text of the document body with
// whitespace normalized. It returns "" for a nil document.
func PlainText(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}
	return normalizeText(visibleText(doc))
}

// hiddenTags are never displayed by browsers.
var hiddenTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "template": {},
}

// visibleText is the rendered text of the body. Block elements end a
// line so words in adjacent paragraphs are not glued together.
func visibleText(doc *goquery.Document) string {
	var b strings.Builder
	for _, n := range bodyOf(doc).Nodes {
		collectText(n, &b)
	}
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if _, hidden := hiddenTags[n.Data]; hidden {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && endsLine(n.Data) {
		b.WriteString("\n")
	}
}

func endsLine(name string) bool {
	switch name {
	case "br", "tr", "td", "th", "caption":
		return true
	}
	return dom.NameIsBlockNode(name)
}

func bodyOf(doc *goquery.Document) *goquery.Selection {
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// normalizeText trims every line, drops blank ones and joins the rest
// with a single space.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), len(input)+1)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
