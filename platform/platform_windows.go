//go:build windows

package platform

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

// SteamRootCandidates returns install roots to probe, most likely first.
// The registry value is what the Steam installer writes, so it goes ahead
// of the fixed fallbacks.
func SteamRootCandidates() []string {
	candidates := []string{}

	key, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
	if err == nil {
		defer key.Close()
		steamPath, _, err := key.GetStringValue("SteamPath")
		if err == nil && steamPath != "" {
			candidates = append(candidates, steamPath)
		}
	}

	candidates = append(candidates,
		"C:\\Program Files (x86)\\Steam",
		"C:\\Program Files\\Steam",
	)

	return candidates
}

// SteamMarkerFile is the file whose presence confirms a candidate root.
func SteamMarkerFile() string {
	return "steam.exe"
}

func ExecutableSuffix() string {
	return ".exe"
}

func StripWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
