// Package mdtables renders HTML tables as GitHub flavored markdown tables
// for the html-to-markdown converter.
//
// Tables that cannot be represented losslessly (lists, headings, quotes,
// dividers or code blocks inside cells) are emitted as raw HTML instead.
// Layout tables (a single cell, or tables that contain other tables) are
// unwrapped and their content is rendered as regular markdown.
package mdtables

import (
	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"golang.org/x/net/html"
)

// Options configures the table plugin.
type Options struct {
	// PreserveNestedTables renders a table that contains another table as raw HTML.
	PreserveNestedTables bool
}

type tablesPlugin struct {
	opts Options
}

// New returns the plugin. Register it after the base and commonmark plugins.
func New(opts Options) converter.Plugin {
	return &tablesPlugin{opts: opts}
}

func (p *tablesPlugin) Name() string {
	return "mdtables"
}

var tableTags = []string{
	"table", "caption", "colgroup", "col",
	"thead", "tbody", "tfoot",
	"tr", "th", "td",
}

func (p *tablesPlugin) Init(conv *converter.Converter) error {
	for _, tag := range tableTags {
		conv.Register.TagType(tag, converter.TagTypeBlock, converter.PriorityStandard)
	}
	conv.Register.Renderer(p.handleRender, converter.PriorityEarly)
	return nil
}

func (p *tablesPlugin) handleRender(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	switch dom.NodeName(n) {
	case "table":
		return p.renderTable(ctx, w, n)
	case "tr":
		return p.renderRow(ctx, w, n)
	case "th", "td":
		return p.renderCell(ctx, w, n)
	case "thead", "tbody", "tfoot":
		ctx.RenderChildNodes(ctx, w, n)
		return converter.RenderSuccess
	case "caption", "colgroup", "col":
		return converter.RenderSuccess
	}
	return converter.RenderTryNext
}

const stateKey = "mdtables:decisions"

// decisionsFor returns the decision cache of the current conversion.
// The converter creates fresh state for every call, so nothing leaks
// between conversions even when node addresses are reused.
func (p *tablesPlugin) decisionsFor(ctx converter.Context) *decisions {
	d := converter.GetState[*decisions](ctx, stateKey)
	if d == nil {
		d = newDecisions(p.opts)
		converter.SetState(ctx, stateKey, d)
	}
	return d
}
