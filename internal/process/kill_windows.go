//go:build windows

// Package process releases the headless browser launched for rendering.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates pid and its child processes with taskkill.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// /T kills the tree; launcher.Kill remains the fallback.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
