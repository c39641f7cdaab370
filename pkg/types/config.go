// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default configuration values.
const (
	DefaultCommentCharacter = "#"
	DefaultMagicCharacter   = "%"
	DefaultLogLevel         = "warn"
)

// ExcerptConfig holds the settings consumed by the extraction engine and the
// output path templater.
type ExcerptConfig struct {
	// CommentCharacter starts a comment in the source language (e.g. "#").
	CommentCharacter string `json:"comment_character" yaml:"comment_character" mapstructure:"comment_character"`

	// MagicCharacter marks a comment as an excerpt (e.g. "%"). An empty value
	// makes every comment line an excerpt.
	MagicCharacter string `json:"magic_character" yaml:"magic_character" mapstructure:"magic_character"`

	// Prefix is prepended to the output base name.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix"`

	// Postfix is appended to the output base name.
	Postfix string `json:"postfix,omitempty" yaml:"postfix,omitempty" mapstructure:"postfix"`

	// OutputPath is either a full output file name or an output directory.
	// Empty means the input file's directory.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty" mapstructure:"output_path"`
}

// DefaultExcerptConfig returns the configuration used when nothing is set.
func DefaultExcerptConfig() ExcerptConfig {
	return ExcerptConfig{
		CommentCharacter: DefaultCommentCharacter,
		MagicCharacter:   DefaultMagicCharacter,
	}
}

// PathSpec returns the output path template for cfg with the given extension.
func (c ExcerptConfig) PathSpec(extension string) OutputPathSpec {
	return OutputPathSpec{
		Prefix:     c.Prefix,
		Postfix:    c.Postfix,
		OutputPath: c.OutputPath,
		Extension:  extension,
	}
}

// Validate checks that the comment character is exactly one character, the
// magic character is at most one character, and the two differ.
func (c ExcerptConfig) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.CommentCharacter, validation.Required, validation.RuneLength(1, 1)),
		validation.Field(&c.MagicCharacter, validation.RuneLength(0, 1), validation.By(func(value any) error {
			if s, _ := value.(string); s != "" && s == c.CommentCharacter {
				return validation.NewError("excerpts.magic_character.same_as_comment", "must differ from the comment character")
			}
			return nil
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Engine identifies the backend that renders the Markdown document.
type Engine string

const (
	EnginePandoc   Engine = "pandoc"
	EngineGoldmark Engine = "goldmark"
)

// RenderConfig holds settings for the optional rendering step.
type RenderConfig struct {
	// Enabled turns rendering on after the Markdown file is written.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Engine selects the renderer backend: pandoc or goldmark.
	Engine Engine `json:"engine" yaml:"engine" mapstructure:"engine"`

	// Formats lists the output formats (e.g. "html", "pdf", "tex").
	Formats []string `json:"formats" yaml:"formats" mapstructure:"formats"`

	// CompileLaTeX runs texi2pdf on the tex file produced by pandoc.
	CompileLaTeX bool `json:"compile_latex" yaml:"compile_latex" mapstructure:"compile_latex"`

	// Numbered passes -N to pandoc so sections are numbered.
	Numbered bool `json:"numbered" yaml:"numbered" mapstructure:"numbered"`
}

// DefaultRenderConfig returns rendering disabled, pandoc, tex output.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Engine:   EnginePandoc,
		Formats:  []string{"tex"},
		Numbered: true,
	}
}

// Validate checks the engine name and, when rendering is enabled, that at
// least one non-empty format is requested.
func (c RenderConfig) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Engine, validation.Required, validation.In(EnginePandoc, EngineGoldmark)),
		validation.Field(&c.Formats,
			validation.When(c.Enabled, validation.Required),
			validation.Each(validation.Required),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Config groups every setting the CLI reads from flags, environment and the
// config file.
type Config struct {
	Excerpt  ExcerptConfig `json:"excerpt" yaml:",inline" mapstructure:",squash"`
	Render   RenderConfig  `json:"render" yaml:"render" mapstructure:"render"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the defaults for every section.
func DefaultConfig() Config {
	return Config{
		Excerpt:  DefaultExcerptConfig(),
		Render:   DefaultRenderConfig(),
		LogLevel: DefaultLogLevel,
	}
}

// Validate validates every section.
func (c Config) Validate() error {
	if err := c.Excerpt.Validate(); err != nil {
		return err
	}
	return c.Render.Validate()
}
