//go:build darwin

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
		filepath.Join(home, "Library/Application Support/Steam"),
	}
}

// SteamMarkerFile is the file whose presence confirms a candidate root.
// The macOS data root has no executable of its own, so the steamapps
// directory stands in for one.
func SteamMarkerFile() string {
	return "steamapps"
}

// Titles that ship a bare Mach-O next to their assets usually mirror the
// Windows layout with an .exe alongside; proper .app bundles are launched
// through Steam itself.
func ExecutableSuffix() string {
	return ".exe"
}

func StripWindow(cmd *exec.Cmd) {
}
