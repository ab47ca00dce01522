package core

import (
	"os"
	"path/filepath"
)

const SteamAppsDir = "steamapps"
const LibraryFoldersFile = "libraryfolders.vdf"
const CommonDir = "common"

// EnumerateLibraries parses <steamRoot>/steamapps/libraryfolders.vdf and
// returns the library root paths in document order. Entries without a
// "path" value are metadata-only and skipped.
func EnumerateLibraries(steamRoot string) ([]string, error) {
	content, err := os.ReadFile(filepath.Join(steamRoot, SteamAppsDir, LibraryFoldersFile))
	if err != nil {
		return nil, err
	}

	return parseLibraryFolders(content)
}

func parseLibraryFolders(content []byte) ([]string, error) {
	root, err := ParseVdf(content)
	if err != nil {
		return nil, err
	}

	folders, err := root.Child("libraryfolders")
	if err != nil {
		return nil, err
	}

	libraries := []string{}
	for _, entry := range folders.Children {
		path, err := entry.ChildString("path")
		if err != nil {
			continue
		}
		libraries = append(libraries, path)
	}

	return libraries, nil
}
