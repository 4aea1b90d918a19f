//go:build windows

// proc_windows.go implements process termination on Windows, where POSIX
// process groups are unavailable. Kill only reaches the immediate child;
// grandchildren spawned by the script may survive a timeout.
package executor

import "os/exec"

func setProcessGroup(cmd *exec.Cmd) {}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
