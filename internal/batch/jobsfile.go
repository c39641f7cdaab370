// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/excerpts/pkg/types"
)

// Settings are per-job overrides. A nil field inherits the value from the
// level above; an empty string is a real value (e.g. no magic character).
type Settings struct {
	CommentCharacter *string `yaml:"comment_character,omitempty"`
	MagicCharacter   *string `yaml:"magic_character,omitempty"`
	Prefix           *string `yaml:"prefix,omitempty"`
	Postfix          *string `yaml:"postfix,omitempty"`
	OutputPath       *string `yaml:"output_path,omitempty"`
}

// Job is one source file to excerpt.
type Job struct {
	File     string `yaml:"file"`
	Settings `yaml:",inline"`
}

// JobsFile is the on-disk list of files for a batch run.
type JobsFile struct {
	Defaults Settings `yaml:"defaults,omitempty"`
	Jobs     []Job    `yaml:"jobs"`

	// dir is the directory of the jobs file; relative paths resolve from it.
	dir string
}

// Apply returns base with every non-nil field of s copied over it.
func (s Settings) Apply(base types.ExcerptConfig) types.ExcerptConfig {
	if s.CommentCharacter != nil {
		base.CommentCharacter = *s.CommentCharacter
	}
	if s.MagicCharacter != nil {
		base.MagicCharacter = *s.MagicCharacter
	}
	if s.Prefix != nil {
		base.Prefix = *s.Prefix
	}
	if s.Postfix != nil {
		base.Postfix = *s.Postfix
	}
	if s.OutputPath != nil {
		base.OutputPath = *s.OutputPath
	}
	return base
}

// Config returns the configuration for job j: base, then the file's
// defaults, then the job's own settings. A relative output path resolves
// from the jobs file directory.
func (f *JobsFile) Config(j Job, base types.ExcerptConfig) types.ExcerptConfig {
	cfg := j.Settings.Apply(f.Defaults.Apply(base))
	if (f.Defaults.OutputPath != nil || j.OutputPath != nil) && cfg.OutputPath != "" {
		cfg.OutputPath = f.resolve(cfg.OutputPath)
	}
	return cfg
}

// Path returns the source path of job j.
func (f *JobsFile) Path(j Job) string {
	return f.resolve(j.File)
}

func (f *JobsFile) resolve(p string) string {
	if f.dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.dir, p)
}

// ReadJobsFile loads a jobs file from disk.
func ReadJobsFile(path string) (*JobsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	var jf JobsFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing jobs file: %w", err)
	}
	for i, j := range jf.Jobs {
		if j.File == "" {
			return nil, fmt.Errorf("parsing jobs file: job %d has no file", i+1)
		}
	}
	jf.dir = filepath.Dir(path)
	return &jf, nil
}

// WriteJobsFile saves jf as YAML.
func WriteJobsFile(path string, jf *JobsFile) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return fmt.Errorf("marshaling jobs file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
