//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr is a no-op on Windows, which has no Unix process groups.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
