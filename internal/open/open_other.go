//go:build !windows

package open

import (
	"os/exec"
	"runtime"
)

// command 在非 Windows 平台上使用系统默认打开器
func command(path string) *exec.Cmd {
	if runtime.GOOS == "darwin" {
		return exec.Command("open", path)
	}
	return exec.Command("xdg-open", path)
}
