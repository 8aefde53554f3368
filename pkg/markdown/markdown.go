// Package markdown converts HTML fragments to markdown using the
// html-to-markdown rule engine with the mdtables plugin for tables.
package markdown

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"

	"github.com/dtnitsch/page-snapshot/pkg/mdtables"
)

// Options configures a Converter.
type Options struct {
	PreserveNestedTables bool
}

// Converter is safe for concurrent use. Per-table decisions are kept in
// the state of each conversion call, never on the Converter.
type Converter struct {
	conv *converter.Converter
}

// New builds a Converter with the commonmark rules, strikethrough and
// the markdown table plugin.
func New(opts Options) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			mdtables.New(mdtables.Options{
				PreserveNestedTables: opts.PreserveNestedTables,
			}),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into markdown.
func (c *Converter) Convert(htmlInput string, opts ...converter.ConvertOptionFunc) (string, error) {
	md, err := c.conv.ConvertString(htmlInput, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}
	return md, nil
}
