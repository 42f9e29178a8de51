//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid.
// The browser launcher puts Chrome in its own group, so helpers die with it.
func KillTree(pid int) error {
	if pid <= 0 {
		return syscall.ESRCH
	}
	return syscall.Kill(-pid, syscall.SIGKILL)
}
