package core

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type UserPrefs struct {
	ApiKey    string `json:"apiKey"`
	CacheRoot string `json:"cacheRoot"`
}

func getPrefsDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, APP_NAME), nil
}

func getPrefsPath() (string, error) {
	dir, err := getPrefsDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "steamshelf_prefs.json"), nil
}

func readUserPrefs() (*UserPrefs, error) {
	prefs := &UserPrefs{}
	path, err := getPrefsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(data, prefs)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func GetCurrentUserPrefsOrDefault() *UserPrefs {
	prefs, err := readUserPrefs()
	if err != nil {
		prefs = &UserPrefs{}
	}

	return prefs
}

func CommitUserPrefs(prefs *UserPrefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	path, err := getPrefsPath()
	if err != nil {
		return err
	}

	dir, err := getPrefsDir()
	if err != nil {
		return err
	}

	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, os.ModePerm)
}

// GetArtServiceKey prefers the environment, then the prefs file. An empty
// result means art resolution is skipped, not that the scan fails.
func GetArtServiceKey() string {
	if key := os.Getenv(ArtServiceKeyEnv); key != "" {
		return key
	}

	return GetCurrentUserPrefsOrDefault().ApiKey
}

func GetArtCacheRoot() string {
	if root := GetCurrentUserPrefsOrDefault().CacheRoot; root != "" {
		return root
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", APP_NAME, "artcache")
	}

	return filepath.Join(cacheDir, APP_NAME, "artcache")
}
