// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a written Markdown document into HTML, PDF or LaTeX
// with pluggable backends.
package render

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/excerpts/internal/tool"
	"github.com/pdiddy/excerpts/pkg/types"
)

const (
	binPandoc   = "pandoc"
	binTexi2pdf = "texi2pdf"
)

// ErrUnsupportedFormat is returned when a backend cannot produce a format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Renderer renders a Markdown file. Different backends (pandoc, goldmark)
// implement this interface.
type Renderer interface {
	// Name returns the backend name.
	Name() string

	// Render reads the Markdown file at mdPath and writes one output per
	// configured format next to it. It returns the written paths.
	Render(mdPath string) ([]string, error)
}

// Option configures a renderer.
type Option func(*options)

type options struct {
	log   zerolog.Logger
	tools []tool.Option
	goos  string
}

// WithLogger sets the logger for the renderer and the programs it runs.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
		o.tools = append(o.tools, tool.WithLogger(log))
	}
}

// WithToolOptions passes options to every external program the renderer
// detects.
func WithToolOptions(opts ...tool.Option) Option {
	return func(o *options) { o.tools = append(o.tools, opts...) }
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop(), goos: runtime.GOOS}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New builds the renderer selected by cfg.Engine. The pandoc backend probes
// for pandoc, and for texi2pdf when cfg.CompileLaTeX is set on a POSIX
// system; missing programs yield an error wrapping tool.ErrToolMissing.
func New(cfg types.RenderConfig, opts ...Option) (Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	switch cfg.Engine {
	case types.EngineGoldmark:
		return newGoldmark(cfg, o)
	case types.EnginePandoc:
		pandoc, err := tool.Detect(binPandoc, o.tools...)
		if err != nil {
			return nil, err
		}
		var texi2pdf tool.Tool
		if cfg.CompileLaTeX && isPOSIX(o.goos) {
			if texi2pdf, err = tool.Detect(binTexi2pdf, o.tools...); err != nil {
				return nil, err
			}
		}
		return newPandoc(cfg, pandoc, texi2pdf, o), nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", types.ErrInvalidConfig, cfg.Engine)
	}
}

// formatExtensions maps format names to file extensions where they differ.
var formatExtensions = map[string]string{
	"latex":    "tex",
	"markdown": "md",
}

// extensionFor returns the file extension for a format name.
func extensionFor(format string) string {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if ext, ok := formatExtensions[f]; ok {
		return ext
	}
	return f
}

func isPOSIX(goos string) bool {
	return goos != "windows" && goos != "plan9"
}
