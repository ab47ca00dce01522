//go:build linux

package platform

import (
	"os"
	"os/exec"
	"path/filepath"
)

func SteamRootCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	return []string{
		filepath.Join(home, ".local/share/Steam"),
		filepath.Join(home, ".steam/steam"),
		filepath.Join(home, ".var/app/com.valvesoftware.Steam/.local/share/Steam"),
	}
}

// SteamMarkerFile is the file whose presence confirms a candidate root.
func SteamMarkerFile() string {
	return "steam.sh"
}

// Most Steam titles on Linux ship Windows binaries and run under Proton,
// so the resolver looks for .exe here too. Native builds are usually
// launched through Steam itself and rarely carry a suffix to match on.
func ExecutableSuffix() string {
	return ".exe"
}

func StripWindow(cmd *exec.Cmd) {
}
