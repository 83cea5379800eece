package main

import (
	"errors"
	"os"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/config"
)

// Exit codes for the chatmd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All inputs rendered
	ExitGeneral = 1 // General/unexpected error, or some renders failed
	ExitUsage   = 2 // Invalid flags, config, or option values
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, chatmd.ErrUnknownEngine) ||
		errors.Is(err, chatmd.ErrUnknownHighlightStyle) ||
		errors.Is(err, chatmd.ErrInvalidSideChannelTag) ||
		errors.Is(err, chatmd.ErrStyleNotFound) ||
		errors.Is(err, chatmd.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
