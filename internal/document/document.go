// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document extracts the excerpts of a source file, writes them as a
// Markdown document and optionally renders it.
//
// Writes are whole-file replacements through a temporary file in the
// destination directory. Running two invocations against the same output
// path at the same time is not guarded; callers must serialize them.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/excerpts/internal/excerpt"
	"github.com/pdiddy/excerpts/internal/pathspec"
	"github.com/pdiddy/excerpts/internal/render"
	"github.com/pdiddy/excerpts/pkg/types"
)

var (
	// ErrOutputWrite is returned when the Markdown file cannot be written.
	ErrOutputWrite = errors.New("cannot write output")

	// ErrOutputIsInput is returned when the output path resolves to the
	// input file.
	ErrOutputIsInput = errors.New("output path is the input file")
)

// Option configures an excerpt run.
type Option func(*runner)

// WithRenderer renders the written document with r.
func WithRenderer(r render.Renderer) Option {
	return func(rn *runner) { rn.renderer = r }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(rn *runner) { rn.log = log }
}

type runner struct {
	renderer render.Renderer
	log      zerolog.Logger
}

// TOC returns the Markdown lines for the excerpts of path without writing
// anything.
func TOC(path string, cfg types.ExcerptConfig) ([]string, error) {
	m, err := excerpt.NewMarker(cfg.CommentCharacter, cfg.MagicCharacter)
	if err != nil {
		return nil, err
	}
	return m.TOC(path)
}

// OutputPath returns where Excerpt writes the document for path.
func OutputPath(path string, cfg types.ExcerptConfig) string {
	return pathspec.ModifyPath(path, cfg.PathSpec(types.MarkdownExtension))
}

// Excerpt converts the excerpts of path into a Markdown document.
//
// When every converted line is blank the result has StatusEmpty, nothing is
// written and the error is nil. Otherwise the document is written to
// OutputPath and, with WithRenderer, rendered.
func Excerpt(path string, cfg types.ExcerptConfig, opts ...Option) (*types.Result, error) {
	rn := runner{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&rn)
	}

	lines, err := TOC(path, cfg)
	if err != nil {
		return nil, err
	}

	res := &types.Result{
		Input:  path,
		Output: OutputPath(path, cfg),
		Lines:  lines,
	}
	log := rn.log.With().Str("input", path).Str("output", res.Output).Logger()

	if excerpt.AllBlank(lines) {
		log.Warn().Int("lines", len(lines)).Msg("no documentation found")
		res.Status = types.StatusEmpty
		return res, nil
	}

	if err := checkDistinct(path, res.Output); err != nil {
		return nil, err
	}
	if err := writeLines(res.Output, lines); err != nil {
		return nil, err
	}
	log.Debug().Int("lines", len(lines)).Msg("wrote markdown")
	res.Status = types.StatusWritten

	if rn.renderer == nil {
		return res, nil
	}
	rendered, err := rn.renderer.Render(res.Output)
	res.Rendered = rendered
	if err != nil {
		return res, fmt.Errorf("%s: %w", rn.renderer.Name(), err)
	}
	res.Status = types.StatusRendered
	return res, nil
}

func checkDistinct(in, out string) error {
	absIn, err := filepath.Abs(in)
	if err != nil {
		return nil
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return nil
	}
	if absIn == absOut {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, out)
	}
	return nil
}

// writeLines replaces path with lines. The content goes to a temporary file
// in the same directory first, so a failure leaves any previous file as it
// was.
func writeLines(path string, lines []string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	for _, line := range lines {
		if _, err := tmp.WriteString(line); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: writing %s: %w", ErrOutputWrite, path, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrOutputWrite, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}
