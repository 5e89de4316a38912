//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so terminal signals sent
// to forkit do not reach Fork
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
