// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pathspec derives output file paths from input file paths.
package pathspec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/excerpts/pkg/types"
)

// ModifyPath returns the output path for input under spec.
//
// A spec.OutputPath that is not an existing directory is returned verbatim.
// Otherwise the result is dir/prefix+base+postfix.ext, where base is the
// input's base name without extension, ext is spec.Extension or the input's
// own extension, and dir is spec.OutputPath or the input's directory.
func ModifyPath(input string, spec types.OutputPathSpec) string {
	return modifyPath(input, spec, isDir)
}

func modifyPath(input string, spec types.OutputPathSpec, dirExists func(string) bool) string {
	if spec.OutputPath != "" && !dirExists(spec.OutputPath) {
		return spec.OutputPath
	}

	inExt := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), inExt)
	name := spec.Prefix + base + spec.Postfix

	ext := spec.Extension
	if ext == "" {
		ext = inExt
	}
	if ext = strings.TrimLeft(ext, "."); ext != "" {
		name += "." + ext
	}

	dir := spec.OutputPath
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
