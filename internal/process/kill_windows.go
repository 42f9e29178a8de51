//go:build windows

package process

import (
	"errors"
	"os/exec"
	"strconv"
)

// KillTree force-terminates pid and its children with taskkill /F /T.
func KillTree(pid int) error {
	if pid <= 0 {
		return errors.New("invalid pid")
	}
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
