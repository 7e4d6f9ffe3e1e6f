// Package docgen turns Markdown text into Word documents.
//
// Conversion is one synchronous pass: Markdown renders to HTML, the HTML
// tree is transcribed block by block into a wordml.Document, and the
// document serializes into a DOCX attachment. Chart markup (echarts,
// highcharts, d3 and similar) is filtered out along the way. Results are
// reported as the ordered message sequence a hosting runtime forwards to
// the user: a status message plus an attachment on success, a single
// text message otherwise.
package docgen

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docwright/md2docx/config"
	"github.com/docwright/md2docx/wordml"
)

// DefaultTitle names documents when a request leaves the title empty.
const DefaultTitle = "Document"

// Params carries one generation request.
type Params struct {
	MarkdownContent string
	Title           string
}

// Generator is the surface the tool server binds to.
// It is an interface so tests can inject a mock.
type Generator interface {
	Generate(ctx context.Context, params Params) []Message
	GenerationInfo(ctx context.Context) string
}

// DocGenerator implements Generator with this package's fixed formatting
// rules. Safe for concurrent use; all per-conversion state is local to
// one Generate call.
type DocGenerator struct {
	cfg *config.Config
	log *slog.Logger
}

// NewDocGenerator builds a generator from runtime configuration.
func NewDocGenerator(cfg *config.Config, log *slog.Logger) *DocGenerator {
	return &DocGenerator{cfg: cfg, log: log}
}

var _ Generator = (*DocGenerator)(nil)

// Generate converts params.MarkdownContent into a DOCX document titled
// params.Title. Empty input is not an error: it yields one informational
// message and no attachment. Any rendering or serialization failure
// collapses into a single error message and no partial document is
// emitted.
func (g *DocGenerator) Generate(_ context.Context, params Params) []Message {
	start := time.Now()
	title := params.Title
	if title == "" {
		title = DefaultTitle
	}
	if params.MarkdownContent == "" {
		return []Message{TextMessage("No markdown content provided.")}
	}
	if max := g.cfg.MaxMarkdownBytes; max > 0 && int64(len(params.MarkdownContent)) > max {
		return g.fail(fmt.Errorf("markdown content is %d bytes, limit is %d", len(params.MarkdownContent), max))
	}

	doc, err := g.buildDocument(params.MarkdownContent, title)
	if err != nil {
		return g.fail(err)
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return g.fail(fmt.Errorf("serialize document: %w", err))
	}

	filename := strings.ReplaceAll(title, " ", "_") + ".docx"
	g.log.Info("document generated",
		"title", title,
		"markdown_bytes", len(params.MarkdownContent),
		"docx_bytes", buf.Len(),
		"duration", time.Since(start),
	)
	return []Message{
		TextMessage(fmt.Sprintf("Document '%s' generated successfully", title)),
		BlobMessage(buf.Bytes(), BlobMeta{MIMEType: MIMETypeDocx, Filename: filename}),
	}
}

func (g *DocGenerator) fail(err error) []Message {
	g.log.Error("conversion failed", "error", err)
	return []Message{ErrorMessage("Error converting markdown to DOCX: " + err.Error())}
}

func (g *DocGenerator) buildDocument(source, title string) (*wordml.Document, error) {
	rendered, err := renderHTML([]byte(stripMarker(source)))
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	body, err := parseBody(rendered)
	if err != nil {
		return nil, fmt.Errorf("parse rendered html: %w", err)
	}
	return Transcribe(body, title), nil
}

// GenerationInfo returns a Markdown summary of the accepted constructs,
// the output format, and the active configuration.
func (g *DocGenerator) GenerationInfo(_ context.Context) string {
	return fmt.Sprintf(`# Markdown to DOCX Generation Info

## Output
- Format: DOCX (%s)
- Returned as a base64 attachment named after the document title

## Accepted Markdown
- Headings h1-h6
- Paragraphs with bold, italic, and inline code
- Bulleted and numbered lists (one nesting level)
- Fenced code blocks with language hints
- Pipe tables
- Horizontal rules

## Filtering
- Chart markup and chart-related text (echarts, highcharts, d3, plotly and similar) is removed

## Configuration
- Max markdown input: %d MB`,
		MIMETypeDocx,
		g.cfg.MaxMarkdownMB(),
	)
}
