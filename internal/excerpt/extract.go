// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package excerpt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInputNotFound is returned when the source file cannot be opened.
var ErrInputNotFound = errors.New("input not found")

// Extract reads r to the end and returns the excerpt lines in input order,
// each with its original indentation and line terminator.
func (m *Marker) Extract(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var matched []string
	for {
		line, err := br.ReadString('\n')
		if line != "" && m.Match(line) {
			matched = append(matched, line)
		}
		if errors.Is(err, io.EOF) {
			return matched, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ExtractFile opens path and returns its excerpt lines. The error wraps
// ErrInputNotFound when the file cannot be opened.
func (m *Marker) ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	defer f.Close()

	lines, err := m.Extract(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// TOC extracts the excerpts of path and converts them to Markdown lines.
func (m *Marker) TOC(path string) ([]string, error) {
	lines, err := m.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return m.Transcode(lines), nil
}

// Extract is a convenience wrapper around NewMarker and Marker.Extract.
func Extract(r io.Reader, comment, magic string) ([]string, error) {
	m, err := NewMarker(comment, magic)
	if err != nil {
		return nil, err
	}
	return m.Extract(r)
}

// Transcode is a convenience wrapper around NewMarker and Marker.Transcode.
func Transcode(lines []string, comment, magic string) ([]string, error) {
	m, err := NewMarker(comment, magic)
	if err != nil {
		return nil, err
	}
	return m.Transcode(lines), nil
}

// TOC is a convenience wrapper around NewMarker and Marker.TOC.
func TOC(path, comment, magic string) ([]string, error) {
	m, err := NewMarker(comment, magic)
	if err != nil {
		return nil, err
	}
	return m.TOC(path)
}
