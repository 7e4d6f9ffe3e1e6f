package docgen

import (
	"golang.org/x/net/html"

	"github.com/docwright/md2docx/wordml"
)

// addTable converts an HTML table into a bordered grid. The first row
// fixes the column count: longer rows have their extra cells ignored,
// shorter rows leave trailing cells empty. Chart-related cell content is
// cleared rather than dropping the row. Every cell is center-aligned;
// the first row and <th> cells take the header variant.
func addTable(doc *wordml.Document, table *html.Node) {
	rows := collectElements(table, "tr")
	if len(rows) == 0 {
		return
	}
	cols := len(collectElements(rows[0], "th", "td"))
	if cols == 0 {
		return
	}

	grid := doc.AddTable(len(rows), cols)
	for i, row := range rows {
		for j, cell := range collectElements(row, "th", "td") {
			if j >= cols {
				continue
			}
			text := stripMarker(collectText(cell))
			if isChartRelated(text) {
				text = ""
			}
			style := cellStyle
			if i == 0 || cell.Data == "th" {
				style = headerStyle
			}
			p := grid.Rows[i].Cells[j].Paragraphs[0]
			p.Justification("center")
			style.apply(p.AddRun(text))
		}
	}
}
