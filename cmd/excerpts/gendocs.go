// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

func newDocsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-docs directory",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  excerpts gen-docs ./docs/cli
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if target == "" {
				return fmt.Errorf("target directory is required")
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			return cobradoc.GenMarkdownTree(root, target)
		},
	}
}
