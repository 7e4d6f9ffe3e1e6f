package docgen

import (
	"golang.org/x/net/html"

	"github.com/docwright/md2docx/wordml"
)

// formatInline walks el's inline children and appends one styled run per
// segment. Chart-related segments are dropped, except inside code spans,
// which may legitimately mention chart libraries. Bold is not rendered
// as a distinct weight; italic survives as a flag on top of the body
// style. Every non-code run ends up normalized to the body font, size,
// and color.
func formatInline(p *wordml.Paragraph, el *html.Node) {
	for child := el.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			text := stripMarker(child.Data)
			if isChartRelated(text) {
				continue
			}
			bodyStyle.apply(p.AddRun(text))
			continue
		}
		if child.Type != html.ElementNode {
			continue
		}
		switch child.Data {
		case "strong", "b":
			text := stripMarker(collectText(child))
			if isChartRelated(text) {
				continue
			}
			bodyStyle.apply(p.AddRun(text))
		case "em", "i":
			text := stripMarker(collectText(child))
			if isChartRelated(text) {
				continue
			}
			style := bodyStyle
			style.italic = true
			style.apply(p.AddRun(text))
		case "code":
			codeStyle.apply(p.AddRun(stripMarker(collectText(child))))
		default:
			// Links, spans, and other inline wrappers are flattened.
			formatInline(p, child)
		}
	}
}
