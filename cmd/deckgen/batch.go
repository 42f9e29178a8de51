package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-deckgen/internal/config"
	"github.com/alnah/go-deckgen/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// job pairs an input file with the file it produces.
type job struct {
	InputPath  string
	OutputPath string
}

// jobResult holds the outcome of a single job.
type jobResult struct {
	job
	Outputs  []string // every file written, OutputPath first
	Err      error
	Duration time.Duration
}

// planJobs maps inputs to output paths. ext carries no leading dot.
//
// An output ending in .ext names the file of a single input. Otherwise the
// output (or the configured output directory) is a directory receiving one
// file per input; without either, files land next to their input. name
// overrides the base name derived from the input.
func planJobs(inputs []string, output, cfgDir, ext string, name func(input string) string) ([]job, error) {
	if strings.HasSuffix(strings.ToLower(output), "."+ext) {
		if len(inputs) > 1 {
			return nil, fmt.Errorf("%w: --output %s names a file but %d inputs were given", ErrInvalidFlag, output, len(inputs))
		}
		return []job{{InputPath: inputs[0], OutputPath: output}}, nil
	}

	dir := first(output, cfgDir)
	jobs := make([]job, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		base := fileutil.ReplaceExtension(filepath.Base(in), ext)
		if name != nil {
			if n := name(in); n != "" {
				base = n
			}
		}
		out := filepath.Join(filepath.Dir(in), base)
		if dir != "" {
			out = filepath.Join(dir, base)
		}
		if prev, dup := seen[out]; dup {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrInvalidFlag, prev, in, out)
		}
		seen[out] = in
		jobs[i] = job{InputPath: in, OutputPath: out}
	}
	return jobs, nil
}

// runJobs processes jobs with at most limit in flight. A failing job never
// stops the others; cancellation marks the remaining ones as failed.
func runJobs(ctx context.Context, jobs []job, limit int, now func() time.Time, fn func(context.Context, job) ([]string, error)) []jobResult {
	if now == nil {
		now = time.Now
	}
	results := make([]jobResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(1, min(limit, len(jobs))))
	for i, j := range jobs {
		g.Go(func() error {
			start := now()
			res := jobResult{job: j}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Outputs, res.Err = fn(ctx, j)
			}
			res.Duration = now().Sub(start)
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// reportResults prints one line per job and returns a batchError when any
// job failed.
func reportResults(results []jobResult, s *session) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
			if len(results) > 1 {
				fmt.Fprintf(s.env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}
		if s.quiet {
			continue
		}
		for _, out := range r.Outputs {
			fmt.Fprintf(s.env.Stdout, "Created %s\n", out)
		}
		s.log.Debug("job done", "input", r.InputPath, "duration", r.Duration.Round(time.Millisecond))
	}

	if !s.quiet && len(results) > 1 {
		fmt.Fprintf(s.env.Stdout, "\n%d succeeded, %d failed\n", len(results)-len(errs), len(errs))
	}
	if len(errs) == 0 {
		return nil
	}
	return &batchError{failed: len(errs), total: len(results), errs: errs}
}

// validateWorkers rejects worker counts outside the supported range.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: --workers must be between 0 and %d, got %d", ErrInvalidFlag, config.MaxWorkers, n)
	}
	return nil
}

// readInput reads the named file, or r when the name is empty or "-".
func readInput(name string, r io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(name) // #nosec G304 -- user-provided input path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
