// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the excerpts CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/excerpts/internal/logging"
	"github.com/pdiddy/excerpts/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit statuses.
const (
	exitOK      = 0
	exitError   = 1
	exitNoDocs  = 2
	envPrefix   = "EXCERPTS"
	configName  = "excerpts"
	configXDGID = "excerpts"
)

// errNoDocumentation signals that a file held no excerpt content. It maps to
// exit status 2 rather than a crash.
var errNoDocumentation = errors.New("no documentation found")

// cliApp carries the state shared by every command of one invocation.
type cliApp struct {
	stdout  io.Writer
	stderr  io.Writer
	v       *viper.Viper
	cfgFile string
	cfg     types.Config
	log     zerolog.Logger
}

const rootLongDesc = `
excerpts extracts Markdown-style comments from a source file, converts them to
valid Markdown and optionally runs pandoc on the result.

An excerpt is a comment headed by one or more comment characters followed by
the magic character. The number of comment characters gives the Markdown
heading level; seven or more mark plain paragraph text. Since comment
characters differ between languages, both characters can be changed.

Try "excerpts example" for an example.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr, v: viper.New(), log: zerolog.Nop()}
	def := types.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "excerpts [flags] file",
		Short:         "Convert Markdown-style comments from a file to Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.excerpt(args[0])
		},
	}
	cmd.Version = version
	cmd.DisableAutoGenTag = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&app.cfgFile, "config", "", "config file (default: ./excerpts.yaml or ~/.config/excerpts/excerpts.yaml)")
	pflags.String("log-level", def.LogLevel, "log level: debug, info, warn, or error")
	pflags.StringP("comment", "c", def.Excerpt.CommentCharacter, "comment character")
	pflags.StringP("magic", "m", def.Excerpt.MagicCharacter, "magic character (empty: every comment is an excerpt)")
	pflags.StringP("prefix", "e", def.Excerpt.Prefix, "prefix added to the files created")
	pflags.StringP("postfix", "o", def.Excerpt.Postfix, "postfix added to the files created")
	pflags.StringP("output", "O", def.Excerpt.OutputPath, "output file name or output directory")
	pflags.BoolP("pandoc", "p", def.Render.Enabled, "render the Markdown file created")
	pflags.String("engine", string(def.Render.Engine), "renderer: pandoc or goldmark")
	pflags.StringSliceP("formats", "f", def.Render.Formats, "output formats to render (e.g. html,pdf,tex)")
	pflags.BoolP("latex", "l", def.Render.CompileLaTeX, "run texi2pdf on the tex file created via pandoc")
	pflags.Bool("number-sections", def.Render.Numbered, "number sections in rendered output")

	bindings := map[string]string{
		"log_level":            "log-level",
		"comment_character":    "comment",
		"magic_character":      "magic",
		"prefix":               "prefix",
		"postfix":              "postfix",
		"output_path":          "output",
		"render.enabled":       "pandoc",
		"render.engine":        "engine",
		"render.formats":       "formats",
		"render.compile_latex": "latex",
		"render.numbered":      "number-sections",
	}
	for key, name := range bindings {
		_ = app.v.BindPFlag(key, pflags.Lookup(name))
	}

	cmd.AddCommand(
		newTOCCmd(app),
		newPathCmd(app),
		newExampleCmd(),
		newBatchCmd(app),
		newConfigCmd(app),
		newDocsCmd(cmd),
		newVersionCmd(),
	)
	return cmd
}

// setup reads the configuration and builds the logger. Flags override the
// environment, which overrides the config file.
func (app *cliApp) setup() error {
	v := app.v
	if app.cfgFile != "" {
		v.SetConfigFile(app.cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configXDGID))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	app.cfg = cfg

	log, err := logging.New(app.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	app.log = log
	if used := v.ConfigFileUsed(); used != "" {
		app.log.Info().Str("file", used).Msg("using config file")
	}
	return nil
}

// run executes the CLI and returns the process exit status.
func run(argv []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoDocumentation):
		fmt.Fprintln(stderr, "excerpts:", err)
		return exitNoDocs
	default:
		fmt.Fprintln(stderr, "excerpts:", err)
		return exitError
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
