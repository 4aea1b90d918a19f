//go:build !windows

// proc_unix.go implements process-group management on POSIX systems.
// Children are placed in a new process group so a timeout kill reaches the
// whole tree, not just the immediate interpreter.
package executor

import (
	"os/exec"
	"syscall"
)

func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Negative PID signals the entire group.
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
