package docgen

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/docwright/md2docx/wordml"
)

// addList emits one bulleted or numbered paragraph per direct list item.
// An item's text concatenates all of its descendant text, nested list
// items included; the first nested <ul> and the first nested <ol> are
// then emitted as lists of their own, further nested lists of the same
// kind are dropped.
func addList(doc *wordml.Document, list *html.Node, numID int) {
	for _, item := range directChildren(list, "li") {
		text := strings.TrimSpace(stripMarker(collectText(item)))
		if text == "" || isChartRelated(text) {
			continue
		}
		p := doc.AddParagraph().Numbering(numID).LineSpacing(lineSpacing125)
		bodyStyle.apply(p.AddRun(text))

		if nested := firstElement(item, "ul"); nested != nil {
			addList(doc, nested, wordml.NumBullet)
		}
		if nested := firstElement(item, "ol"); nested != nil {
			addList(doc, nested, wordml.NumDecimal)
		}
	}
}
