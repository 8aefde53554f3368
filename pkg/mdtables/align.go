package mdtables

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

const (
	alignLeft   = "left"
	alignRight  = "right"
	alignCenter = "center"
	alignNone   = ""
)

// voteOrder is also the tie-break order.
var voteOrder = []string{alignLeft, alignRight, alignCenter, alignNone}

var borders = map[string]string{
	alignLeft:   ":---",
	alignRight:  "---:",
	alignCenter: ":---:",
	alignNone:   "---",
}

// layout is the column structure of a table: the number of logical
// columns (colspans included) and the resolved alignment of each.
type layout struct {
	columns    int
	alignments []string
}

func newLayout(table *html.Node) *layout {
	rows := tableRows(table)

	columns := 0
	for _, row := range rows {
		width := 0
		for _, cell := range rowCells(row) {
			width += colspan(cell)
		}
		columns = max(columns, width)
	}

	l := &layout{
		columns:    columns,
		alignments: make([]string, columns),
	}
	for i := range l.alignments {
		l.alignments[i] = columnAlignment(rows, i)
	}
	return l
}

// columnAlignment tallies the alignment of the cell covering column
// index in every row and returns the winner.
func columnAlignment(rows []*html.Node, index int) string {
	votes := make(map[string]int, len(voteOrder))
	for _, row := range rows {
		if cell := cellAt(row, index); cell != nil {
			votes[cellAlignment(cell)]++
		}
	}
	return majority(votes)
}

// majority returns the alignment with the most votes. Ties go to the
// first entry of voteOrder, so "" only wins when it has strictly more
// votes than every explicit alignment.
func majority(votes map[string]int) string {
	winner := alignNone
	best := 0
	for _, align := range voteOrder {
		if votes[align] > best {
			winner = align
			best = votes[align]
		}
	}
	return winner
}

func cellAt(row *html.Node, index int) *html.Node {
	start := 0
	for _, cell := range rowCells(row) {
		span := colspan(cell)
		if index >= start && index < start+span {
			return cell
		}
		start += span
	}
	return nil
}

// cellAlignment reads the align attribute, falling back to an inline
// text-align style. Unknown values count as no alignment.
func cellAlignment(cell *html.Node) string {
	align := strings.ToLower(strings.TrimSpace(dom.GetAttributeOr(cell, "align", "")))
	if align == "" {
		align = styleTextAlign(dom.GetAttributeOr(cell, "style", ""))
	}

	switch align {
	case alignLeft, alignRight, alignCenter:
		return align
	}
	return alignNone
}

func styleTextAlign(style string) string {
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "text-align") {
			value = strings.TrimSuffix(strings.TrimSpace(value), "!important")
			return strings.ToLower(strings.TrimSpace(value))
		}
	}
	return ""
}

func border(align string) string {
	if b, ok := borders[align]; ok {
		return b
	}
	return borders[alignNone]
}
