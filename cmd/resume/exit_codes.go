package main

import (
	"errors"
	"os"

	resume "github.com/erd2/yershhhat"
)

// Exit codes for the resume command.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Arguments given
	ExitIO      = 3 // Output file cannot be created or written
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	// Browser errors (exit 4)
	if errors.Is(err, resume.ErrBrowserConnect) ||
		errors.Is(err, resume.ErrPageCreate) ||
		errors.Is(err, resume.ErrPageLoad) ||
		errors.Is(err, resume.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, resume.ErrWritePDF) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, os.ErrNotExist) {
		return ExitIO
	}

	return ExitGeneral
}
