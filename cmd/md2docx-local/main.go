package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "md2docx-local",
		Short: "Run the Markdown to DOCX generator without a tool host",
	}

	root.AddCommand(convertCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
