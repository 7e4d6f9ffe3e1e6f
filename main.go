package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docwright/md2docx/config"
	"github.com/docwright/md2docx/docgen"
)

// Server identity constants.
const (
	serverName    = "md2docx"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argMarkdownContent = "markdown_content"
	argTitle           = "title"
)

func main() {
	// stdout carries the MCP protocol, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	gen := docgen.NewDocGenerator(config.Load(), logger)

	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, gen)

	logger.Info("starting stdio server", "name", serverName, "version", serverVersion)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// registerTools binds MCP tool definitions to their handlers.
// It accepts the Generator interface so tests can inject a mock.
func registerTools(s *server.MCPServer, gen docgen.Generator) {
	// generate_docx — convert Markdown text to a DOCX attachment
	s.AddTool(
		mcp.NewTool("generate_docx",
			mcp.WithDescription("Convert Markdown text to a DOCX document. "+
				"Supports headings, paragraphs with bold/italic/inline code, lists, fenced code blocks, tables, and horizontal rules. "+
				"Chart markup (echarts, highcharts, d3, plotly and similar) is filtered out. "+
				"Returns a status message and the document as a base64 attachment."),
			mcp.WithString(argMarkdownContent,
				mcp.Required(),
				mcp.Description("Markdown source to convert"),
			),
			mcp.WithString(argTitle,
				mcp.Description("Document title; also names the attachment file"),
				mcp.DefaultString(docgen.DefaultTitle),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			content, _ := req.Params.Arguments[argMarkdownContent].(string)
			title, _ := req.Params.Arguments[argTitle].(string)
			msgs := gen.Generate(ctx, docgen.Params{MarkdownContent: content, Title: title})
			return toolResult(msgs), nil
		},
	)

	// get_generation_info — describe accepted Markdown and output format
	s.AddTool(
		mcp.NewTool("get_generation_info",
			mcp.WithDescription("Return the accepted Markdown constructs, the output format, and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(gen.GenerationInfo(ctx)), nil
		},
	)
}

// toolResult maps a generation's message sequence onto one MCP result:
// a failure becomes an error result, a lone text message stays text, a
// text-plus-attachment pair becomes a text content with an embedded
// blob resource.
func toolResult(msgs []docgen.Message) *mcp.CallToolResult {
	var text string
	for _, msg := range msgs {
		if msg.Kind != docgen.MessageText {
			continue
		}
		if msg.Err {
			return mcp.NewToolResultError(msg.Text)
		}
		text = msg.Text
		break
	}
	for _, msg := range msgs {
		if msg.Kind != docgen.MessageBlob {
			continue
		}
		return mcp.NewToolResultResource(text, mcp.BlobResourceContents{
			URI:      "attachment://" + msg.Meta.Filename,
			MIMEType: msg.Meta.MIMEType,
			Blob:     base64.StdEncoding.EncodeToString(msg.Blob),
		})
	}
	return mcp.NewToolResultText(text)
}
