package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const ManifestPrefix = "appmanifest_"
const ManifestSuffix = ".acf"

// Title is one installed entry built from one appmanifest file.
type Title struct {
	AppId       uint64 `json:"appId"`
	Name        string `json:"name"`
	LibraryRoot string `json:"libraryRoot"`
	InstallDir  string `json:"installDir"`
	InstallPath string `json:"installPath"`
	SizeOnDisk  uint64 `json:"sizeOnDisk"`
	Executable  string `json:"executable,omitempty"`
	IconPath    string `json:"iconPath,omitempty"`
	HeroPath    string `json:"heroPath,omitempty"`
}

// Utility appids Steam installs alongside real games. Kept short on
// purpose: listing a utility as a game beats hiding a real game.
var utilityAppIds = map[uint64]bool{
	228980:  true, // Steamworks Common Redistributables
	1070560: true, // Steam Linux Runtime
	1391110: true, // Steam Linux Runtime - Soldier
	1628350: true, // Steam Linux Runtime - Sniper
	1493710: true, // Proton Experimental
}

// ParseAppManifest extracts one Title from appmanifest text. appid, name
// and installdir are required; SizeOnDisk defaults to zero when absent or
// unparsable.
func ParseAppManifest(content []byte, libraryRoot string) (*Title, error) {
	root, err := ParseVdf(content)
	if err != nil {
		return nil, err
	}

	appState, err := root.Child("AppState")
	if err != nil {
		return nil, fmt.Errorf("%w: missing AppState object", ErrInvalidManifest)
	}

	appIdStr, err := appState.ChildString("appid")
	if err != nil {
		return nil, fmt.Errorf("%w: missing appid", ErrInvalidManifest)
	}
	appId, err := strconv.ParseUint(appIdStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: appid %q is not an unsigned integer", ErrInvalidManifest, appIdStr)
	}

	name, err := appState.ChildString("name")
	if err != nil {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidManifest)
	}

	installDir, err := appState.ChildString("installdir")
	if err != nil {
		return nil, fmt.Errorf("%w: missing installdir", ErrInvalidManifest)
	}

	sizeOnDisk := uint64(0)
	if sizeStr, err := appState.ChildString("SizeOnDisk"); err == nil {
		if parsed, err := strconv.ParseUint(sizeStr, 10, 64); err == nil {
			sizeOnDisk = parsed
		}
	}

	return &Title{
		AppId:       appId,
		Name:        name,
		LibraryRoot: libraryRoot,
		InstallDir:  installDir,
		InstallPath: filepath.Join(libraryRoot, SteamAppsDir, CommonDir, installDir),
		SizeOnDisk:  sizeOnDisk,
	}, nil
}

// ScanLibraries reads every appmanifest in every library's steamapps
// directory. An unreadable library or an invalid manifest skips that
// library or title and the scan carries on.
func ScanLibraries(libraries []string) []*Title {
	titles := []*Title{}

	for _, library := range libraries {
		manifestDir := filepath.Join(library, SteamAppsDir)
		entries, err := os.ReadDir(manifestDir)
		if err != nil {
			WarningLogger.Printf("skipping library %v: %v", library, err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !strings.HasPrefix(name, ManifestPrefix) || !strings.HasSuffix(name, ManifestSuffix) {
				continue
			}

			manifestPath := filepath.Join(manifestDir, name)
			content, err := os.ReadFile(manifestPath)
			if err != nil {
				WarningLogger.Printf("skipping manifest %v: %v", manifestPath, err)
				continue
			}

			title, err := ParseAppManifest(content, library)
			if err != nil {
				WarningLogger.Printf("skipping manifest %v: %v", manifestPath, err)
				continue
			}

			if utilityAppIds[title.AppId] {
				InfoLogger.Printf("dropping utility entry %v (%v)", title.AppId, title.Name)
				continue
			}

			titles = append(titles, title)
		}
	}

	return titles
}
