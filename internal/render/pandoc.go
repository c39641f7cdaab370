// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/excerpts/internal/pathspec"
	"github.com/pdiddy/excerpts/internal/tool"
	"github.com/pdiddy/excerpts/pkg/types"
)

// Pandoc renders through the pandoc program and, for LaTeX output,
// optionally compiles the result with texi2pdf.
type Pandoc struct {
	pandoc   tool.Tool
	texi2pdf tool.Tool
	cfg      types.RenderConfig
	goos     string
	log      zerolog.Logger
}

func newPandoc(cfg types.RenderConfig, pandoc, texi2pdf tool.Tool, o options) *Pandoc {
	return &Pandoc{
		pandoc:   pandoc,
		texi2pdf: texi2pdf,
		cfg:      cfg,
		goos:     o.goos,
		log:      o.log,
	}
}

// NewPandoc builds a pandoc renderer from already detected programs.
// texi2pdf may be nil when cfg.CompileLaTeX is false.
func NewPandoc(cfg types.RenderConfig, pandoc, texi2pdf tool.Tool, opts ...Option) *Pandoc {
	return newPandoc(cfg, pandoc, texi2pdf, buildOptions(opts))
}

func (p *Pandoc) Name() string { return string(types.EnginePandoc) }

// Render runs pandoc once per format. LaTeX output is standalone (-s) so it
// can be compiled.
func (p *Pandoc) Render(mdPath string) ([]string, error) {
	var written []string
	for _, format := range p.cfg.Formats {
		ext := extensionFor(format)
		out := pathspec.ModifyPath(mdPath, types.OutputPathSpec{Extension: ext})

		args := p.flags(ext)
		args = append(args, mdPath, "-o", out)
		if err := p.pandoc.Run("", args...); err != nil {
			return written, fmt.Errorf("rendering %s to %s: %w", mdPath, out, err)
		}
		p.log.Info().Str("output", out).Msg("rendered")
		written = append(written, out)

		if ext == "tex" && p.cfg.CompileLaTeX {
			pdf, err := p.compile(out)
			if err != nil {
				return written, err
			}
			if pdf != "" {
				written = append(written, pdf)
			}
		}
	}
	return written, nil
}

func (p *Pandoc) flags(ext string) []string {
	var flags []string
	if ext == "tex" {
		flags = append(flags, "-s")
	}
	if p.cfg.Numbered {
		flags = append(flags, "-N")
	}
	return flags
}

// compile runs texi2pdf in the directory of texPath and returns the PDF
// path. Off POSIX systems it only logs where the tex file is.
func (p *Pandoc) compile(texPath string) (string, error) {
	if !isPOSIX(p.goos) || p.texi2pdf == nil {
		p.log.Warn().Str("file", texPath).Str("os", p.goos).
			Msg("not compiling LaTeX: consult your operating system's documentation to compile the tex file")
		return "", nil
	}
	dir, name := filepath.Split(texPath)
	if err := p.texi2pdf.Run(dir, "--batch", "--clean", name); err != nil {
		return "", fmt.Errorf("compiling %s: %w", texPath, err)
	}
	pdf := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	p.log.Info().Str("output", pdf).Msg("compiled")
	return pdf, nil
}
