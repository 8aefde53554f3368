package mdtables

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"golang.org/x/net/html"
)

const minCellWidth = 3

var (
	pipeRun      = regexp.MustCompile(`\|+`)
	separatorRow = regexp.MustCompile(`\| :?---`)
)

func (p *tablesPlugin) renderTable(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	d := p.decisionsFor(ctx)

	if d.shouldRenderAsHTML(n) {
		w.WriteString(htmlBlock(n))
		return converter.RenderSuccess
	}

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	if d.shouldSkip(n) {
		w.WriteString("\n\n")
		w.Write(buf.Bytes())
		w.WriteString("\n\n")
		return converter.RenderSuccess
	}

	w.WriteString(wrapTable(buf.String(), d.layoutOf(n), captionText(n)))
	return converter.RenderSuccess
}

func (p *tablesPlugin) renderRow(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	d := p.decisionsFor(ctx)
	table := parentTable(n)

	if d.shouldSkip(table) {
		ctx.RenderChildNodes(ctx, w, n)
		return converter.RenderSuccess
	}

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	w.WriteString("\n")
	w.Write(buf.Bytes())

	if isHeadingRow(n) {
		if l := d.layoutOf(table); l.columns > 0 {
			w.WriteString("\n")
			w.WriteString(borderRow(l))
		}
	}
	return converter.RenderSuccess
}

func (p *tablesPlugin) renderCell(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	d := p.decisionsFor(ctx)

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	if d.shouldSkip(parentTable(n)) {
		w.Write(buf.Bytes())
		return converter.RenderSuccess
	}

	// Resolve the converter's escape markers inside the cell so that the
	// pipe escaping below is applied exactly once.
	content := string(ctx.UnEscapeContent(buf.Bytes()))

	w.WriteString(formatCell(content, cellIndex(n), colspan(n)))
	return converter.RenderSuccess
}

// formatCell renders one cell, including the empty placeholder cells
// that keep the column count intact for colspan > 1.
func formatCell(content string, index int, span int) string {
	prefix := " "
	if index == 0 {
		prefix = "| "
	}

	text := strings.TrimSpace(content)
	text = strings.ReplaceAll(text, "\n\r", "<br>")
	text = strings.ReplaceAll(text, "\n", "<br>")
	text = pipeRun.ReplaceAllString(text, `\|`)

	if width := utf8.RuneCountInString(text); width < minCellWidth {
		text += strings.Repeat(" ", minCellWidth-width)
	}
	for i := 1; i < span; i++ {
		text += " | " + strings.Repeat(" ", minCellWidth)
	}

	return prefix + text + " |"
}

// borderRow is the header separator, one cell per logical column.
func borderRow(l *layout) string {
	var b strings.Builder
	for i := 0; i < l.columns; i++ {
		b.WriteString(formatCell(border(l.alignments[i]), i, 1))
	}
	return b.String()
}

func emptyHeaderRow(columns int) string {
	var b strings.Builder
	for i := 0; i < columns; i++ {
		b.WriteString(formatCell("", i, 1))
	}
	return b.String()
}

// wrapTable turns the rendered rows into a markdown table block, one row
// per line. Tables without a header row get an empty one so every table
// parses as GFM.
func wrapTable(content string, l *layout, caption string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	content = strings.Join(lines, "\n")

	hasHeader := len(lines) >= 2 && separatorRow.MatchString(lines[1])

	var b strings.Builder
	b.WriteString("\n\n")
	if caption != "" {
		b.WriteString(caption)
		b.WriteString("\n\n")
	}
	if l.columns > 0 && !hasHeader {
		b.WriteString(emptyHeaderRow(l.columns))
		b.WriteString("\n")
		b.WriteString(borderRow(l))
		b.WriteString("\n")
	}
	b.WriteString(content)
	b.WriteString("\n\n")
	return b.String()
}

// htmlBlock renders the table verbatim. Outside of a div the block is
// wrapped in one so markdown renderers treat it as a raw HTML block.
func htmlBlock(table *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, withoutComments(table)); err != nil {
		return ""
	}
	if hasDivAncestor(table) {
		return buf.String()
	}
	return "\n\n<div>" + buf.String() + "</div>\n\n"
}

// withoutComments deep copies n, dropping comment nodes such as the
// list end markers the converter inserts.
func withoutComments(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			continue
		}
		clone.AppendChild(withoutComments(c))
	}
	return clone
}
