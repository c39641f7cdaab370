// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/excerpts/internal/document"
)

func newTOCCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "toc file",
		Short: "Print the Markdown converted from a file's excerpts",
		Long: `Toc extracts the excerpts of a file and prints the converted Markdown to
stdout without writing any file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := document.TOC(args[0], app.cfg.Excerpt)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, strings.Join(lines, ""))
			return err
		},
	}
}

func newPathCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "path file",
		Short: "Print the Markdown file name that would be written for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.stdout, document.OutputPath(args[0], app.cfg.Excerpt))
			return nil
		},
	}
}
