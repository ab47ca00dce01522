package core

import (
	"fmt"
	"os"
	"path/filepath"

	"steamshelf/platform"
)

// FindSteamRoot probes the platform's well-known Steam install locations
// and accepts the first one containing the marker file.
func FindSteamRoot() (string, error) {
	return findSteamRoot(platform.SteamRootCandidates(), platform.SteamMarkerFile())
}

func findSteamRoot(candidates []string, marker string) (string, error) {
	for _, candidate := range candidates {
		file, err := os.Open(filepath.Join(candidate, marker))
		if err != nil {
			continue
		}
		file.Close()
		return candidate, nil
	}

	return "", fmt.Errorf("%w: probed %v locations", ErrRootNotFound, len(candidates))
}
