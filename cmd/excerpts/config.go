// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newConfigCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Config prints the configuration after merging defaults, the config file,
EXCERPTS_* environment variables and flags. The output is a valid
excerpts.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(app.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(app.cfg); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			return app.cfg.Validate()
		},
	}
}
