// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the excerpt pipeline over every file listed in a YAML
// jobs file.
package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/excerpts/internal/document"
	"github.com/pdiddy/excerpts/pkg/types"
)

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Written int
	Empty   int
	Failed  int
	Results []*types.Result
}

// Total returns the total number of jobs processed.
func (r BatchResult) Total() int {
	return r.Written + r.Empty + r.Failed
}

// HasFailures reports whether any job failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run processes the jobs in order, printing per-job status to w and
// returning a summary. A job whose output path was already produced by an
// earlier job in the same run fails.
func Run(jf *JobsFile, base types.ExcerptConfig, w io.Writer, opts ...document.Option) BatchResult {
	var result BatchResult
	seen := make(map[string]string)

	for _, job := range jf.Jobs {
		in := jf.Path(job)
		cfg := jf.Config(job, base)

		out := document.OutputPath(in, cfg)
		key, err := filepath.Abs(out)
		if err != nil {
			key = out
		}
		if prev, ok := seen[key]; ok {
			fmt.Fprintf(w, "failed:  %s (output %s already written by %s)\n", in, out, prev)
			result.Failed++
			continue
		}

		res, err := document.Excerpt(in, cfg, opts...)
		if res != nil && res.Status == types.StatusWritten {
			seen[key] = in
		}
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", in, err)
			result.Failed++
			continue
		}
		result.Results = append(result.Results, res)
		if res.Empty() {
			fmt.Fprintf(w, "empty:   %s (no documentation found)\n", in)
			result.Empty++
			continue
		}
		seen[key] = in
		fmt.Fprintf(w, "written: %s\n", res.Output)
		for _, r := range res.Rendered {
			fmt.Fprintf(w, "rendered: %s\n", r)
		}
		result.Written++
	}

	fmt.Fprintf(w, "\nBatch summary: %d written, %d empty, %d failed (total: %d)\n",
		result.Written, result.Empty, result.Failed, result.Total())
	return result
}
