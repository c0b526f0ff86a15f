//go:build windows

package open

import (
	"os/exec"
	"syscall"
)

// command 在 Windows 上通过 cmd start 打开文件
func command(path string) *exec.Cmd {
	cmd := exec.Command("cmd", "/c", "start", "", path)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: 0x08000000, // CREATE_NO_WINDOW
	}
	return cmd
}
