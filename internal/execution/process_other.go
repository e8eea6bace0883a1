//go:build !unix

package execution

import "os/exec"

// setProcessGroup is a no-op on platforms without process groups
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills the process directly
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
