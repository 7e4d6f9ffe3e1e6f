package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <docx-file>",
		Short: "Print the paragraph outline of a DOCX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			info, err := f.Stat()
			if err != nil {
				return err
			}

			doc, err := docx.Parse(f, info.Size())
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			other := 0
			for _, item := range doc.Document.Body.Items {
				para, ok := item.(*docx.Paragraph)
				if !ok {
					other++
					continue
				}
				style := "Normal"
				if para.Properties != nil && para.Properties.Style != nil {
					style = para.Properties.Style.Val
				}
				fmt.Fprintf(out, "[%s] %s\n", style, paragraphText(para))
			}
			if other > 0 {
				fmt.Fprintf(out, "(%d non-paragraph blocks)\n", other)
			}
			return nil
		},
	}
	return cmd
}

func paragraphText(para *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return sb.String()
}
