package mdtables

import (
	"strconv"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// maxColspan mirrors the limit browsers apply to the colspan attribute.
const maxColspan = 1000

// htmlOnlyTags cannot be expressed inside a markdown table cell.
var htmlOnlyTags = map[string]struct{}{
	"ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"hr":         {},
	"blockquote": {},
}

// decisions caches per-table results for the duration of one conversion.
// Keys are node identities; a decision is computed at most once.
type decisions struct {
	opts    Options
	asHTML  map[*html.Node]bool
	skip    map[*html.Node]bool
	layouts map[*html.Node]*layout
}

func newDecisions(opts Options) *decisions {
	return &decisions{
		opts:    opts,
		asHTML:  make(map[*html.Node]bool),
		skip:    make(map[*html.Node]bool),
		layouts: make(map[*html.Node]*layout),
	}
}

// shouldRenderAsHTML reports whether the table holds content that a
// markdown table cannot represent.
func (d *decisions) shouldRenderAsHTML(table *html.Node) bool {
	if v, ok := d.asHTML[table]; ok {
		return v
	}

	v := dom.ContainsNode(table, func(n *html.Node) bool {
		name := dom.NodeName(n)
		if _, ok := htmlOnlyTags[name]; ok {
			return true
		}
		if isCodeBlock(n) {
			return true
		}
		return d.opts.PreserveNestedTables && name == "table"
	})

	d.asHTML[table] = v
	return v
}

// shouldSkip reports whether the table is a layout artifact whose
// content should pass through without table syntax.
func (d *decisions) shouldSkip(table *html.Node) bool {
	if table == nil {
		return true
	}
	if v, ok := d.skip[table]; ok {
		return v
	}

	rows := tableRows(table)
	v := len(rows) == 0 ||
		(len(rows) == 1 && len(rowCells(rows[0])) <= 1) ||
		containsTable(table)

	d.skip[table] = v
	return v
}

func (d *decisions) layoutOf(table *html.Node) *layout {
	if l, ok := d.layouts[table]; ok {
		return l
	}
	l := newLayout(table)
	d.layouts[table] = l
	return l
}

func isCodeBlock(n *html.Node) bool {
	return dom.NodeName(n) == "pre"
}

func containsTable(n *html.Node) bool {
	return dom.ContainsNode(n, func(c *html.Node) bool {
		return dom.NodeName(c) == "table"
	})
}

// tableRows returns the rows that belong to the table itself, in tree
// order. Rows of nested tables are not included.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch dom.NodeName(c) {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if dom.NodeName(r) == "tr" {
					rows = append(rows, r)
				}
			}
		}
	}
	return rows
}

func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if name := dom.NodeName(c); name == "th" || name == "td" {
			cells = append(cells, c)
		}
	}
	return cells
}

func cellIndex(cell *html.Node) int {
	if cell.Parent == nil {
		return 0
	}
	for i, c := range rowCells(cell.Parent) {
		if c == cell {
			return i
		}
	}
	return 0
}

func colspan(cell *html.Node) int {
	if cell == nil {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(dom.GetAttributeOr(cell, "colspan", "1")))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxColspan {
		return maxColspan
	}
	return n
}

func parentTable(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if dom.NodeName(p) == "table" {
			return p
		}
	}
	return nil
}

func hasDivAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if dom.NodeName(p) == "div" {
			return true
		}
	}
	return false
}

// isHeadingRow reports whether tr becomes the markdown header row.
func isHeadingRow(tr *html.Node) bool {
	parent := tr.Parent
	if parent == nil {
		return false
	}
	if dom.NodeName(parent) == "thead" {
		return true
	}
	if dom.NodeName(parent) != "table" && !isFirstTbody(parent) {
		return false
	}
	if dom.FirstChildElement(parent) != tr {
		return false
	}
	for _, c := range dom.AllChildElements(tr) {
		if dom.NodeName(c) != "th" {
			return false
		}
	}
	return true
}

// isFirstTbody is true for a tbody without preceding sections, or whose
// only preceding section is an empty thead. Captions and column groups
// are not sections.
func isFirstTbody(n *html.Node) bool {
	if dom.NodeName(n) != "tbody" {
		return false
	}
	prev := prevSection(n)
	if prev == nil {
		return true
	}
	return dom.NodeName(prev) == "thead" &&
		prevSection(prev) == nil &&
		strings.TrimSpace(dom.CollectText(prev)) == ""
}

func prevSection(n *html.Node) *html.Node {
	prev := dom.PrevSiblingElement(n)
	for prev != nil {
		switch dom.NodeName(prev) {
		case "caption", "colgroup":
			prev = dom.PrevSiblingElement(prev)
		default:
			return prev
		}
	}
	return nil
}

func captionText(table *html.Node) string {
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if dom.NodeName(c) == "caption" {
			return strings.TrimSpace(dom.CollectText(c))
		}
	}
	return ""
}
