package docgen

// transcribe.go — the HTML-tree-to-document transcription pass.

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/docwright/md2docx/wordml"
)

// looseTextMinRunes is the cutoff below which a loose text node is
// treated as a stray label (such as "分析：") and dropped instead of
// becoming its own paragraph.
const looseTextMinRunes = 10

// Transcribe walks a parsed HTML tree and maps every element onto
// document blocks, starting with a centered title block. It never fails:
// unknown wrappers are flattened by recursing into their children, and
// chart markup is dropped.
func Transcribe(root *html.Node, title string) *wordml.Document {
	doc := wordml.New()
	addTitle(doc, title)
	walkBlocks(doc, root)
	return doc
}

func addTitle(doc *wordml.Document, title string) {
	p := doc.AddParagraph().Justification("center")
	titleStyle.apply(p.AddRun(title))
}

// walkBlocks dispatches each child of n in document order.
func walkBlocks(doc *wordml.Document, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			addLooseText(doc, child.Data)
		case html.ElementNode:
			dispatchElement(doc, child)
		}
	}
}

func dispatchElement(doc *wordml.Document, el *html.Node) {
	switch el.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		addHeading(doc, el)
	case "p":
		addParagraph(doc, el)
	case "ul":
		addList(doc, el, wordml.NumBullet)
	case "ol":
		addList(doc, el, wordml.NumDecimal)
	case "pre":
		addCodeBlock(doc, el)
	case "table":
		addTable(doc, el)
	case "hr":
		doc.AddParagraph().AddRun(strings.Repeat("_", 50))
	case "script", "style", "canvas":
		// chart and script payloads never reach the document
	case "br":
		// block-level breaks are dropped
	default:
		// Wrapper elements are flattened unless they are tagged as
		// chart markup, in which case the whole subtree is dropped.
		if isChartContainer(el) {
			return
		}
		walkBlocks(doc, el)
	}
}

// addLooseText emits text sitting between block elements as its own body
// paragraph. Short fragments are skipped so stray labels do not become
// standalone paragraphs.
func addLooseText(doc *wordml.Document, raw string) {
	text := strings.TrimSpace(stripMarker(raw))
	if text == "" || isChartRelated(text) {
		return
	}
	if utf8.RuneCountInString(text) <= looseTextMinRunes {
		return
	}
	p := doc.AddParagraph().FirstLineIndent(bodyIndent).LineSpacing(lineSpacing125)
	bodyStyle.apply(p.AddRun(text))
}

func addHeading(doc *wordml.Document, el *html.Node) {
	level := int(el.Data[1] - '0')
	text := strings.TrimSpace(stripMarker(collectText(el)))
	p := doc.AddParagraph().Style(fmt.Sprintf("Heading%d", level))
	if text != "" {
		headingStyle(level).apply(p.AddRun(text))
	}
}

func addParagraph(doc *wordml.Document, el *html.Node) {
	if strings.TrimSpace(stripMarker(collectText(el))) == "" {
		return
	}
	p := doc.AddParagraph().FirstLineIndent(bodyIndent).LineSpacing(lineSpacing125)
	formatInline(p, el)
}

// isChartContainer reports whether a wrapper element holds chart markup,
// judged by its id, its class list, or its full text content.
func isChartContainer(el *html.Node) bool {
	return isChartRelated(attrVal(el, "id")) ||
		isChartRelated(attrVal(el, "class")) ||
		isChartRelated(collectText(el))
}

// ---- tree helpers ----

// collectText concatenates every descendant text node of n in document
// order, with no separators.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// firstElement returns the first descendant element named tag, in
// document order, or nil.
func firstElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// collectElements returns every descendant element matching one of tags,
// in document order, descending into matches as well.
func collectElements(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				for _, tag := range tags {
					if c.Data == tag {
						out = append(out, c)
						break
					}
				}
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// directChildren returns n's immediate child elements named tag.
func directChildren(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}
