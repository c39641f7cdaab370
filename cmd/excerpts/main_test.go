// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `#!/bin/sh
#% deploy.sh
#######% Copies the build to the server.
#######%
echo deploying
##% Options
`

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExcerptWritesMarkdown(t *testing.T) {
	src := writeScript(t, script)

	code, out, errOut := execute(t, "-o", "_doc", src)
	require.Equal(t, exitOK, code, errOut)

	want := filepath.Join(filepath.Dir(src), "deploy_doc.md")
	assert.Contains(t, out, "written: "+want)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "# deploy.sh\nCopies the build to the server.\n\n## Options\n", string(data))
}

func TestExcerptEmptyExitsTwo(t *testing.T) {
	src := writeScript(t, "#!/bin/sh\n# nothing to see\n#######%\n")

	code, _, errOut := execute(t, src)
	assert.Equal(t, exitNoDocs, code)
	assert.Contains(t, errOut, "no documentation found")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(src), "deploy.md"))
}

func TestExcerptMissingFile(t *testing.T) {
	code, _, errOut := execute(t, filepath.Join(t.TempDir(), "missing.sh"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "input not found")
}

func TestInvalidCommentCharacter(t *testing.T) {
	src := writeScript(t, script)
	code, _, errOut := execute(t, "-c", "//", src)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "invalid configuration")
}

func TestTOCCommand(t *testing.T) {
	src := writeScript(t, script)
	code, out, errOut := execute(t, "toc", src)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "# deploy.sh\nCopies the build to the server.\n\n## Options\n", out)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(src), "deploy.md"))
}

func TestTOCCustomCharacters(t *testing.T) {
	src := writeScript(t, "// a Go comment\n//! Title\n///////! Body.\n")
	code, out, errOut := execute(t, "toc", "-c", "/", "-m", "!", src)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "## Title\nBody.\n", out)
}

func TestPathCommand(t *testing.T) {
	code, out, _ := execute(t, "path", "-e", "p_", "-o", "_q", filepath.Join("dir", "name.ext"))
	require.Equal(t, exitOK, code)
	assert.Equal(t, filepath.Join("dir", "p_name_q.md")+"\n", out)
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("EXCERPTS_MAGIC_CHARACTER", "!")
	src := writeScript(t, "#! From env\n#% Not an excerpt now\n")

	code, out, errOut := execute(t, "toc", src)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "# From env\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "excerpts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prefix: doc_\npostfix: _v1\n"), 0o644))

	code, out, errOut := execute(t, "path", "--config", cfgPath, filepath.Join("src", "tool.py"))
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, filepath.Join("src", "doc_tool_v1.md")+"\n", out)

	code, out, errOut = execute(t, "path", "--config", cfgPath, "-e", "flag_", filepath.Join("src", "tool.py"))
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, filepath.Join("src", "flag_tool_v1.md")+"\n", out, "flags win over the config file")
}

func TestMissingConfigFile(t *testing.T) {
	code, _, errOut := execute(t, "path", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "a.py")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "reading config")
}

func TestConfigCommand(t *testing.T) {
	code, out, errOut := execute(t, "config", "-m", "!", "--engine", "goldmark")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "comment_character:")
	assert.Regexp(t, `magic_character: ['"]!['"]`, out)
	assert.Contains(t, out, "engine: goldmark")
	assert.Contains(t, out, "log_level: warn")
}

func TestExampleRoundTrip(t *testing.T) {
	code, example, _ := execute(t, "example")
	require.Equal(t, exitOK, code)

	src := writeScript(t, example)
	code, out, errOut := execute(t, "toc", src)
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "## *This* is an example markdown comment of heading level 2.\n")
	assert.Contains(t, out, "**This** is an example of a markdown paragraph")
	assert.Equal(t, "\n", out[len(out)-1:])
}

func TestGoldmarkRendering(t *testing.T) {
	src := writeScript(t, script)
	code, out, errOut := execute(t, "-p", "--engine", "goldmark", "-f", "html", src)
	require.Equal(t, exitOK, code, errOut)

	html := filepath.Join(filepath.Dir(src), "deploy.html")
	assert.Contains(t, out, "rendered: "+html)
	data, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h2 id=\"options\">Options</h2>")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sh"), []byte("#% A\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.sh"), []byte("#% B\n"), 0o644))
	jobs := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobs, []byte("defaults:\n  postfix: _doc\njobs:\n  - file: a.sh\n  - file: b.sh\n"), 0o644))

	code, out, errOut := execute(t, "batch", jobs)
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "Batch summary: 2 written, 0 empty, 0 failed (total: 2)")
	assert.FileExists(t, filepath.Join(dir, "a_doc.md"))
	assert.FileExists(t, filepath.Join(dir, "b_doc.md"))
}

func TestBatchCommandFailures(t *testing.T) {
	dir := t.TempDir()
	jobs := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobs, []byte("jobs:\n  - file: missing.sh\n"), 0o644))

	code, out, errOut := execute(t, "batch", jobs)
	assert.Equal(t, exitError, code)
	assert.Contains(t, out, "failed:")
	assert.Contains(t, errOut, "1 of 1 jobs failed")
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := execute(t, "--help")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "excerpts [flags] file")
	assert.Contains(t, out, "--magic")
	assert.Contains(t, out, "batch")

	code, out, _ = execute(t, "version")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "excerpts dev\n", out)
}

func TestNoArgumentsShowsHelp(t *testing.T) {
	code, out, _ := execute(t)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Usage:")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	code, _, errOut := execute(t, "gen-docs", tmp)
	require.Equal(t, exitOK, code, errOut)
	assert.FileExists(t, filepath.Join(tmp, "excerpts.md"))
	assert.FileExists(t, filepath.Join(tmp, "excerpts_toc.md"))
}
