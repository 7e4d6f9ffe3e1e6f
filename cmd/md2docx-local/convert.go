package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docwright/md2docx/config"
	"github.com/docwright/md2docx/docgen"
)

func convertCmd() *cobra.Command {
	var title string
	var outDir string

	cmd := &cobra.Command{
		Use:   "convert <markdown-file>",
		Short: "Convert a Markdown file to DOCX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			gen := docgen.NewDocGenerator(config.Load(), logger)
			msgs := gen.Generate(cmd.Context(), docgen.Params{
				MarkdownContent: string(source),
				Title:           title,
			})

			// Print each message the way a hosting runtime would relay
			// it, saving the attachment to disk.
			for _, msg := range msgs {
				switch msg.Kind {
				case docgen.MessageText:
					fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
				case docgen.MessageBlob:
					path := filepath.Join(outDir, msg.Meta.Filename)
					if err := os.WriteFile(path, msg.Blob, 0o644); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes, %s)\n", path, len(msg.Blob), msg.Meta.MIMEType)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", docgen.DefaultTitle, "document title; also names the output file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the generated document")
	return cmd
}
