// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/excerpts/internal/batch"
)

func newBatchCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "batch jobs.yaml",
		Short: "Excerpt every file listed in a YAML jobs file",
		Long: `Batch reads a YAML jobs file and writes one Markdown document per listed
file. Settings under "defaults" apply to every job; each job may override
comment_character, magic_character, prefix, postfix and output_path.
Relative paths resolve from the jobs file's directory.

  defaults:
    postfix: _doc
  jobs:
    - file: src/tool.py
    - file: src/report.R
      output_path: docs/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jf, err := batch.ReadJobsFile(args[0])
			if err != nil {
				return err
			}
			opts, err := app.documentOptions()
			if err != nil {
				return err
			}
			result := batch.Run(jf, app.cfg.Excerpt, app.stdout, opts...)
			if result.HasFailures() {
				return fmt.Errorf("batch: %d of %d jobs failed", result.Failed, result.Total())
			}
			return nil
		},
	}
}
