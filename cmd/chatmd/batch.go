package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/hints"
	"golang.org/x/text/unicode/norm"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input found")
	ErrReadInput   = errors.New("failed to read input")
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrWriteOutput = errors.New("failed to write output")
)

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderJob holds everything shared by the files of one invocation.
// The engine is safe for concurrent use, so workers share it.
type renderJob struct {
	engine   chatmd.Engine
	document *chatmd.DocumentOptions // nil writes bare fragments
}

// render converts one message. title names the document when the
// configured title is empty.
func (j *renderJob) render(ctx context.Context, text, title string) (string, error) {
	fragment, err := j.engine.ToHTML(ctx, text)
	if err != nil {
		return "", err
	}
	if j.document == nil {
		return fragment, nil
	}

	opts := *j.document
	if opts.Title == "" {
		opts.Title = title
	}
	return chatmd.WrapDocument(ctx, fragment, opts)
}

// renderBatch processes files concurrently with a fixed number of workers.
// Results keep the order of files.
func renderBatch(ctx context.Context, job *renderJob, files []FileToRender, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	workers = max(1, min(workers, len(files)))
	results := make([]RenderResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = renderFile(ctx, job, files[i])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// renderFile reads, renders and writes a single file.
func renderFile(ctx context.Context, job *renderJob, f FileToRender) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided input
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		return result
	}

	html, err := job.render(ctx, fileutil.DecodeText(data), titleFromPath(f.InputPath))
	if err != nil {
		result.Err = err
		return result
	}

	result.Err = writeOutput(f.OutputPath, html)
	result.Duration = time.Since(start)
	return result
}

// writeOutput creates the parent directory and writes html atomically.
func writeOutput(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// titleFromPath returns the file name without directory or extension,
// in NFC form (macOS file systems hand back decomposed names).
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return norm.NFC.String(base[:len(base)-len(filepath.Ext(base))])
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Microsecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
