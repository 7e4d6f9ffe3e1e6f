package docgen

// markdown.go — Markdown rendering and HTML parsing.

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	mdhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// engine renders the accepted Markdown dialect: pipe tables, fenced code
// blocks with language info, strict lists. Raw HTML passes through so
// embedded chart markup reaches the filter. Single newlines stay soft;
// there is no <br> auto-conversion.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(mdhtml.WithUnsafe()),
)

func renderHTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert(source, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseBody parses rendered HTML and returns the body element whose
// children the transcriber walks.
func parseBody(rendered string) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, err
	}
	body := findBody(root)
	if body == nil {
		return nil, errors.New("rendered html has no body")
	}
	return body, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}
