// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/erd2/yershhhat/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("CI") != "true" {
		hints = append(hints, "set CI=true to run Chrome without sandbox")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint for page load timeouts.
func ForTimeout() string {
	return format("the browser may be starting slowly; retry or set ROD_BROWSER_BIN")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("run from a writable directory; the resume is written to the current directory")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
