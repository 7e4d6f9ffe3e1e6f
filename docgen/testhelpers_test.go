package docgen

// Shared test helpers for the docgen package.

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/docwright/md2docx/config"
	"github.com/docwright/md2docx/wordml"
)

// ---- assertion helpers -----------------------------------------------------

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q\ngot: %s", want, got)
	}
}

func assertNotContains(t *testing.T, got, banned string) {
	t.Helper()
	if strings.Contains(got, banned) {
		t.Errorf("expected output to not contain %q\ngot: %s", banned, got)
	}
}

// ---- generator and document factories --------------------------------------

func newTestGenerator() *DocGenerator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDocGenerator(&config.Config{MaxMarkdownBytes: config.DefaultMaxMarkdownBytes}, logger)
}

// transcribeMarkdown runs the conversion pipeline up to the document
// model, without serializing, so tests can inspect blocks directly.
func transcribeMarkdown(t *testing.T, source, title string) *wordml.Document {
	t.Helper()
	rendered, err := renderHTML([]byte(stripMarker(source)))
	assertNoErr(t, err)
	body, err := parseBody(rendered)
	assertNoErr(t, err)
	return Transcribe(body, title)
}

// ---- document inspection ---------------------------------------------------

func docParagraphs(doc *wordml.Document) []*wordml.Paragraph {
	var out []*wordml.Paragraph
	for _, b := range doc.Blocks {
		if p, ok := b.(*wordml.Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

func docTables(doc *wordml.Document) []*wordml.Table {
	var out []*wordml.Table
	for _, b := range doc.Blocks {
		if tbl, ok := b.(*wordml.Table); ok {
			out = append(out, tbl)
		}
	}
	return out
}

func paraText(p *wordml.Paragraph) string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// docText concatenates all paragraph and table cell text in the
// document, one block per line.
func docText(doc *wordml.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case *wordml.Paragraph:
			sb.WriteString(paraText(v))
			sb.WriteString("\n")
		case *wordml.Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					for _, p := range cell.Paragraphs {
						sb.WriteString(paraText(p))
						sb.WriteString("\n")
					}
				}
			}
		}
	}
	return sb.String()
}

// findParagraph returns the first paragraph whose text contains want.
func findParagraph(t *testing.T, doc *wordml.Document, want string) *wordml.Paragraph {
	t.Helper()
	for _, p := range docParagraphs(doc) {
		if strings.Contains(paraText(p), want) {
			return p
		}
	}
	t.Fatalf("no paragraph containing %q\ndocument text:\n%s", want, docText(doc))
	return nil
}

// findRun returns the first run in the document whose text contains want.
func findRun(t *testing.T, doc *wordml.Document, want string) *wordml.Run {
	t.Helper()
	for _, p := range docParagraphs(doc) {
		for _, r := range p.Runs {
			if strings.Contains(r.Text, want) {
				return r
			}
		}
	}
	t.Fatalf("no run containing %q\ndocument text:\n%s", want, docText(doc))
	return nil
}

// listParagraphs returns paragraphs carrying a numbering reference.
func listParagraphs(doc *wordml.Document) []*wordml.Paragraph {
	var out []*wordml.Paragraph
	for _, p := range docParagraphs(doc) {
		if p.NumID != 0 {
			out = append(out, p)
		}
	}
	return out
}
