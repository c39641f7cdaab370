// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and result records shared by the
// excerpts packages and the CLI.
package types

// MarkdownExtension is the extension of the written document.
const MarkdownExtension = "md"

// OutputPathSpec describes how an output path is derived from an input path.
type OutputPathSpec struct {
	// Prefix is prepended to the input base name.
	Prefix string

	// Postfix is appended to the input base name.
	Postfix string

	// OutputPath is a full file name (used verbatim) or an existing
	// directory (used instead of the input's directory).
	OutputPath string

	// Extension overrides the input file's extension. A leading dot is
	// ignored. Empty keeps the input's extension.
	Extension string
}

// Status reports what an excerpt run produced.
type Status string

const (
	// StatusWritten means the Markdown file was written.
	StatusWritten Status = "written"

	// StatusRendered means the Markdown file was written and rendered.
	StatusRendered Status = "rendered"

	// StatusEmpty means no excerpt carried any content; nothing was written.
	StatusEmpty Status = "empty"
)

// Result holds the outcome of one excerpt run.
type Result struct {
	// Input is the source file that was scanned.
	Input string `json:"input" yaml:"input"`

	// Output is the Markdown file path. Set even when Status is empty so
	// callers can report where the document would have gone.
	Output string `json:"output" yaml:"output"`

	// Lines are the transcoded Markdown lines.
	Lines []string `json:"-" yaml:"-"`

	// Rendered lists the files produced by the renderer.
	Rendered []string `json:"rendered,omitempty" yaml:"rendered,omitempty"`

	// Status is the run outcome.
	Status Status `json:"status" yaml:"status"`
}

// Empty reports whether the run found nothing to document.
func (r Result) Empty() bool {
	return r.Status == StatusEmpty
}
