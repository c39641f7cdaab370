// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/pdiddy/excerpts/internal/document"
	"github.com/pdiddy/excerpts/internal/render"
	"github.com/pdiddy/excerpts/internal/tool"
)

// excerpt writes the Markdown document for file and renders it when asked.
func (app *cliApp) excerpt(file string) error {
	opts, err := app.documentOptions()
	if err != nil {
		return err
	}
	res, err := document.Excerpt(file, app.cfg.Excerpt, opts...)
	if res == nil {
		return err
	}
	if res.Empty() {
		return fmt.Errorf("%w in %s", errNoDocumentation, file)
	}
	fmt.Fprintf(app.stdout, "written: %s\n", res.Output)
	for _, r := range res.Rendered {
		fmt.Fprintf(app.stdout, "rendered: %s\n", r)
	}
	return err
}

// documentOptions builds the logger and, when rendering is enabled, the
// renderer for document.Excerpt.
func (app *cliApp) documentOptions() ([]document.Option, error) {
	opts := []document.Option{document.WithLogger(app.log)}
	if !app.cfg.Render.Enabled {
		return opts, nil
	}
	r, err := render.New(app.cfg.Render,
		render.WithLogger(app.log),
		render.WithToolOptions(tool.WithOutput(app.stderr)),
	)
	if err != nil {
		return nil, err
	}
	return append(opts, document.WithRenderer(r)), nil
}
