// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package excerpt selects excerpt comments from source files and converts
// them to Markdown.
//
// An excerpt is a line that starts (after optional whitespace) with one or
// more comment characters immediately followed by the magic character:
//
//	##% A level two heading
//	#######% Body text. Seven or more comment characters mean "no heading".
//
// The number of comment characters gives the Markdown heading level.
package excerpt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/excerpts/pkg/types"
)

// bodyRunLength is the shortest comment-character run treated as body text.
// Markdown has six heading levels.
const bodyRunLength = 7

// Marker matches and transcodes excerpt lines for one comment/magic
// character pair. A Marker is immutable and safe for concurrent use.
type Marker struct {
	comment string
	magic   string
	line    *regexp.Regexp // excerpt predicate
	bodyRun *regexp.Regexp // runs of bodyRunLength or more comment characters
}

// NewMarker validates the character pair and compiles its patterns.
// Both characters are matched literally.
func NewMarker(comment, magic string) (*Marker, error) {
	cfg := types.ExcerptConfig{CommentCharacter: comment, MagicCharacter: magic}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := regexp.QuoteMeta(comment)
	line, err := regexp.Compile(`^\s*(?:` + c + `)+` + regexp.QuoteMeta(magic))
	if err != nil {
		return nil, fmt.Errorf("compiling excerpt pattern: %w", err)
	}
	bodyRun, err := regexp.Compile(fmt.Sprintf(`(?:%s){%d,}`, c, bodyRunLength))
	if err != nil {
		return nil, fmt.Errorf("compiling body pattern: %w", err)
	}
	return &Marker{comment: comment, magic: magic, line: line, bodyRun: bodyRun}, nil
}

// Comment returns the comment character.
func (m *Marker) Comment() string { return m.comment }

// Magic returns the magic character.
func (m *Marker) Magic() string { return m.magic }

// Match reports whether line is an excerpt.
func (m *Marker) Match(line string) bool {
	return m.line.MatchString(line)
}

// TranscodeLine converts one excerpt line to Markdown:
// leading whitespace is dropped, runs of seven or more comment characters
// are removed, remaining comment characters become '#', the first magic
// character is removed, and a line left without text becomes "\n".
func (m *Marker) TranscodeLine(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	line = m.bodyRun.ReplaceAllLiteralString(line, "")
	line = strings.ReplaceAll(line, m.comment, "#")
	if m.magic != "" {
		line = strings.Replace(line, m.magic, "", 1)
		line = strings.TrimLeft(line, " \t")
	}
	if isBlank(line) {
		return "\n"
	}
	return line
}

// Transcode converts every line with TranscodeLine. The result has the same
// length and order as lines.
func (m *Marker) Transcode(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = m.TranscodeLine(line)
	}
	return out
}

// isBlank reports whether line carries no text: it is empty, a single space,
// or a bare run of heading markers, once its terminator is ignored.
func isBlank(line string) bool {
	body := strings.TrimRight(line, "\r\n")
	if body == "" || body == " " {
		return true
	}
	return strings.TrimSpace(strings.TrimLeft(body, "#")) == ""
}

// AllBlank reports whether every transcoded line is a bare newline. An empty
// slice is all blank.
func AllBlank(lines []string) bool {
	for _, line := range lines {
		if line != "\n" {
			return false
		}
	}
	return true
}
