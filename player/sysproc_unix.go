//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr puts the player in its own process group so an interrupt to
// twitchy does not also tear down a playback session the user wants to keep.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcess takes down the player and everything it spawned.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	// Negative pid targets the whole process group
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
