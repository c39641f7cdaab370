// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/pdiddy/excerpts/internal/pathspec"
	"github.com/pdiddy/excerpts/pkg/types"
)

// Goldmark renders HTML in process. It needs no external program and
// supports only the html format.
type Goldmark struct {
	engine goldmark.Markdown
	log    zerolog.Logger
}

func newGoldmark(cfg types.RenderConfig, o options) (*Goldmark, error) {
	for _, format := range cfg.Formats {
		if ext := extensionFor(format); ext != "html" {
			return nil, fmt.Errorf("%w: goldmark renders html only, got %q", ErrUnsupportedFormat, format)
		}
	}
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote, extension.DefinitionList),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Goldmark{engine: engine, log: o.log}, nil
}

// NewGoldmark builds the in-process HTML renderer.
func NewGoldmark(cfg types.RenderConfig, opts ...Option) (*Goldmark, error) {
	return newGoldmark(cfg, buildOptions(opts))
}

func (g *Goldmark) Name() string { return string(types.EngineGoldmark) }

// Render writes mdPath converted to HTML next to it.
func (g *Goldmark) Render(mdPath string) ([]string, error) {
	src, err := os.ReadFile(mdPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", mdPath, err)
	}
	var buf bytes.Buffer
	if err := g.engine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	out := pathspec.ModifyPath(mdPath, types.OutputPathSpec{Extension: "html"})
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", out, err)
	}
	g.log.Info().Str("output", out).Msg("rendered")
	return []string{out}, nil
}
