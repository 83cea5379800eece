package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chatmd/internal/config"
	"github.com/alnah/go-chatmd/internal/fileutil"
)

// outputExt is the extension of every rendered file.
const outputExt = "html"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs into files to render.
// Files must carry a source extension; directories are walked recursively
// and non-source files inside them are skipped. An input listed twice is
// rendered once.
func discoverFiles(inputs []string, outputDir string) ([]FileToRender, error) {
	var files []FileToRender
	seen := make(map[string]bool)

	add := func(path, baseDir string) error {
		clean := filepath.Clean(path)
		if seen[clean] {
			return nil
		}
		seen[clean] = true

		outPath, err := resolveOutputPath(path, outputDir, baseDir)
		if err != nil {
			return err
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateSourceExtension(input); err != nil {
				return nil, err
			}
			if err := add(input, ""); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsSource(path) {
				return nil
			}
			return add(path, input)
		})
		if err != nil {
			return nil, err
		}
	}

	if isOutputFile(outputDir) && len(files) > 1 {
		return nil, fmt.Errorf("%w: --output %s names a file but %d inputs were found", ErrUsage, outputDir, len(files))
	}

	return files, nil
}

// resolveOutputPath determines the HTML output path for a source file.
// Without an output directory the file lands next to its source. Files
// found under baseInputDir keep their relative directory under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, outputExt)
	}

	if isOutputFile(outputDir) {
		return outputDir, nil
	}

	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), outputExt)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}

// isOutputFile reports whether --output names a single HTML file.
func isOutputFile(output string) bool {
	return strings.HasSuffix(strings.ToLower(output), "."+outputExt)
}

// validateSourceExtension checks that an explicitly named file is chat markdown.
func validateSourceExtension(path string) error {
	if !fileutil.IsSource(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
