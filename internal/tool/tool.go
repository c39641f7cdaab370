// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool detects and runs external programs such as pandoc and
// texi2pdf.
package tool

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// ErrToolMissing is returned when a required program is not installed.
var ErrToolMissing = errors.New("tool not installed")

// Tool is an external program the renderer can drive.
type Tool interface {
	// Name returns the program name (e.g. "pandoc").
	Name() string

	// Available reports whether the program can be launched.
	Available() bool

	// Run executes the program with args in dir and waits for it to exit.
	// An empty dir means the current directory.
	Run(dir string, args ...string) error
}

// executor abstracts process execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	Run(dir, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Run(dir, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Option configures a program.
type Option func(*program)

// WithOutput forwards the program's stdout and stderr to w. The default is
// os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(p *program) { p.out = w }
}

// WithLogger sets the logger used to trace invocations.
func WithLogger(log zerolog.Logger) Option {
	return func(p *program) { p.log = log }
}

// program implements Tool for one binary.
type program struct {
	bin  string
	exec executor
	out  io.Writer
	log  zerolog.Logger
}

func newProgram(bin string, exec executor, opts ...Option) *program {
	p := &program{bin: bin, exec: exec, out: os.Stderr, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *program) Name() string { return p.bin }

// Available launches the program with -h. Only a failure to launch counts;
// a non-zero exit status still means the program is installed.
func (p *program) Available() bool {
	if _, err := p.exec.LookPath(p.bin); err != nil {
		return false
	}
	err := p.exec.RunSilent(p.bin, "-h")
	var exitErr *exec.ExitError
	return err == nil || errors.As(err, &exitErr)
}

func (p *program) Run(dir string, args ...string) error {
	p.log.Debug().Str("dir", dir).Msgf("running %s %s", p.bin, strings.Join(args, " "))
	if err := p.exec.Run(dir, p.bin, args, p.out, p.out); err != nil {
		return fmt.Errorf("running %s: %w", p.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// New returns the named program without probing it.
func New(name string, opts ...Option) Tool {
	return newProgram(name, defaultExec, opts...)
}

// Detect returns the named program if it is installed, or an error wrapping
// ErrToolMissing.
func Detect(name string, opts ...Option) (Tool, error) {
	return detect(name, defaultExec, opts...)
}

func detect(name string, exec executor, opts ...Option) (Tool, error) {
	p := newProgram(name, exec, opts...)
	if !p.Available() {
		return nil, fmt.Errorf("%w: please install %s", ErrToolMissing, name)
	}
	return p, nil
}
