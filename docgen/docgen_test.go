package docgen

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/docwright/md2docx/config"
)

// readBackDocx parses a generated attachment with an independent DOCX
// reader and returns the paragraph texts in order plus a text-to-style
// index for the styled ones.
func readBackDocx(t *testing.T, blob []byte) ([]string, map[string]string) {
	t.Helper()
	doc, err := docx.Parse(bytes.NewReader(blob), int64(len(blob)))
	assertNoErr(t, err)

	var texts []string
	styles := make(map[string]string)
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if text, ok := rc.(*docx.Text); ok {
					sb.WriteString(text.Text)
				}
			}
		}
		texts = append(texts, sb.String())
		if para.Properties != nil && para.Properties.Style != nil {
			styles[sb.String()] = para.Properties.Style.Val
		}
	}
	return texts, styles
}

// ---- Generate --------------------------------------------------------------

func TestDocGenerator_Generate_EmptyInput(t *testing.T) {
	msgs := newTestGenerator().Generate(context.Background(), Params{Title: "T"})

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Kind != MessageText || msgs[0].Err {
		t.Fatalf("want a plain informational message, got %+v", msgs[0])
	}
	if msgs[0].Text != "No markdown content provided." {
		t.Errorf("message = %q", msgs[0].Text)
	}
}

func TestDocGenerator_Generate_Success(t *testing.T) {
	md := "# Overview\n\n1. alpha item body text\n2. beta item body text\n"
	msgs := newTestGenerator().Generate(context.Background(), Params{MarkdownContent: md, Title: "Doc A"})

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Kind != MessageText || msgs[0].Text != "Document 'Doc A' generated successfully" {
		t.Errorf("status message = %q", msgs[0].Text)
	}
	blob := msgs[1]
	if blob.Kind != MessageBlob {
		t.Fatalf("second message kind = %d, want blob", blob.Kind)
	}
	if blob.Meta.MIMEType != MIMETypeDocx {
		t.Errorf("attachment MIME type = %q", blob.Meta.MIMEType)
	}
	if blob.Meta.Filename != "Doc_A.docx" {
		t.Errorf("attachment filename = %q", blob.Meta.Filename)
	}
	if len(blob.Blob) == 0 {
		t.Fatal("attachment is empty")
	}

	texts, styles := readBackDocx(t, blob.Blob)
	joined := strings.Join(texts, "\n")
	assertContains(t, joined, "Doc A")
	assertContains(t, joined, "Overview")
	assertContains(t, joined, "alpha item body text")
	assertContains(t, joined, "beta item body text")
	if styles["Overview"] != "Heading1" {
		t.Errorf("heading style read back as %q, want Heading1", styles["Overview"])
	}
}

func TestDocGenerator_Generate_DefaultTitle(t *testing.T) {
	msgs := newTestGenerator().Generate(context.Background(),
		Params{MarkdownContent: "plain body text for the default title case"})

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	assertContains(t, msgs[0].Text, "'Document'")
	if msgs[1].Meta.Filename != "Document.docx" {
		t.Errorf("attachment filename = %q", msgs[1].Meta.Filename)
	}
}

func TestDocGenerator_Generate_FilenameReplacesSpaces(t *testing.T) {
	msgs := newTestGenerator().Generate(context.Background(),
		Params{MarkdownContent: "body text", Title: "Quarterly Report 2025"})

	if msgs[1].Meta.Filename != "Quarterly_Report_2025.docx" {
		t.Errorf("attachment filename = %q", msgs[1].Meta.Filename)
	}
}

func TestDocGenerator_Generate_ChartMarkupAbsentFromOutput(t *testing.T) {
	md := "Ordinary prose stays in the document.\n\n" +
		"<div class=\"echarts\">\nchart payload here\n</div>\n"
	msgs := newTestGenerator().Generate(context.Background(), Params{MarkdownContent: md, Title: "T"})

	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	texts, _ := readBackDocx(t, msgs[1].Blob)
	joined := strings.Join(texts, "\n")
	assertContains(t, joined, "Ordinary prose stays in the document.")
	assertNotContains(t, joined, "chart payload")
}

func TestDocGenerator_Generate_InputTooLarge(t *testing.T) {
	gen := NewDocGenerator(&config.Config{MaxMarkdownBytes: 4},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	msgs := gen.Generate(context.Background(),
		Params{MarkdownContent: "# a document well over four bytes", Title: "T"})

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if !msgs[0].Err {
		t.Error("oversize input did not produce an error message")
	}
	assertContains(t, msgs[0].Text, "Error converting markdown to DOCX:")
}

// ---- GenerationInfo --------------------------------------------------------

func TestDocGenerator_GenerationInfo(t *testing.T) {
	info := newTestGenerator().GenerationInfo(context.Background())

	assertContains(t, info, "DOCX")
	assertContains(t, info, MIMETypeDocx)
	assertContains(t, info, "Headings h1-h6")
	assertContains(t, info, "10 MB")
}
