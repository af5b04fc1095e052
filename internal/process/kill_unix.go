//go:build !windows

// Package process releases the headless browser launched for rendering.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group of pid so that
// Chrome helper processes do not outlive the renderer.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
