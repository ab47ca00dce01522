package core

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const exampleManifest = `"AppState"
{
	"appid"		"440"
	"Universe"	"1"
	"name"		"Example"
	"StateFlags"	"4"
	"installdir"	"Example"
	"SizeOnDisk"	"123456"
}
`

func TestParseAppManifest(t *testing.T) {
	title, err := ParseAppManifest([]byte(exampleManifest), "/mnt/games")
	assert.NoError(t, err, "Parsing a well-formed manifest should not return an error")
	assert.Equal(t, uint64(440), title.AppId, "AppId should be parsed as an unsigned integer")
	assert.Equal(t, "Example", title.Name)
	assert.Equal(t, "Example", title.InstallDir)
	assert.Equal(t, uint64(123456), title.SizeOnDisk)
	assert.Equal(t, filepath.Join("/mnt/games", "steamapps", "common", "Example"), title.InstallPath,
		"Install path should be derived from library root, common dir and installdir")
	assert.Empty(t, title.Executable, "A freshly scanned title has no resolved executable")
}

func TestParseAppManifest_RequiredFields(t *testing.T) {
	for _, doc := range []string{
		`"AppState" { "name" "Example" "installdir" "Example" }`,
		`"AppState" { "appid" "440" "installdir" "Example" }`,
		`"AppState" { "appid" "440" "name" "Example" }`,
		`"AppState" { "appid" "notanumber" "name" "Example" "installdir" "Example" }`,
		`"Wrapper" { "appid" "440" }`,
	} {
		_, err := ParseAppManifest([]byte(doc), "/mnt/games")
		assert.ErrorIs(t, err, ErrInvalidManifest, "Manifest %q should be rejected", doc)
	}
}

func TestParseAppManifest_OptionalSizeDefaultsToZero(t *testing.T) {
	title, err := ParseAppManifest([]byte(`"AppState" { "appid" "440" "name" "Example" "installdir" "Example" }`), "/lib")
	assert.NoError(t, err, "A missing SizeOnDisk should not be an error")
	assert.Equal(t, uint64(0), title.SizeOnDisk, "A missing SizeOnDisk should default to zero")

	title, err = ParseAppManifest([]byte(`"AppState" { "appid" "440" "name" "Example" "installdir" "Example" "SizeOnDisk" "garbage" }`), "/lib")
	assert.NoError(t, err, "An unparsable SizeOnDisk should not be an error")
	assert.Equal(t, uint64(0), title.SizeOnDisk, "An unparsable SizeOnDisk should default to zero")
}

func writeManifest(t *testing.T, library string, appId uint64, name string) {
	t.Helper()
	dir := filepath.Join(library, SteamAppsDir)
	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(t, err)

	content := fmt.Sprintf(`"AppState"
{
	"appid"		"%v"
	"name"		"%v"
	"installdir"	"%v"
	"SizeOnDisk"	"1000"
}
`, appId, name, name)
	err = os.WriteFile(filepath.Join(dir, fmt.Sprintf("appmanifest_%v.acf", appId)), []byte(content), os.ModePerm)
	assert.NoError(t, err)
}

func TestScanLibraries(t *testing.T) {
	library := t.TempDir()
	writeManifest(t, library, 440, "Example")
	writeManifest(t, library, 620, "Portal 2")

	// Denylisted utility entry, otherwise well-formed.
	writeManifest(t, library, 228980, "Steamworks Common Redistributables")

	manifestDir := filepath.Join(library, SteamAppsDir)

	// Invalid manifest and unrelated clutter are skipped without failing.
	err := os.WriteFile(filepath.Join(manifestDir, "appmanifest_777.acf"), []byte(`"AppState" { "appid" "777" }`), os.ModePerm)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(manifestDir, "notes.txt"), []byte("not a manifest"), os.ModePerm)
	assert.NoError(t, err)
	err = os.MkdirAll(filepath.Join(manifestDir, "appmanifest_fake.acf.d"), os.ModePerm)
	assert.NoError(t, err)

	titles := ScanLibraries([]string{library})
	assert.Len(t, titles, 2, "Only real, well-formed games should survive the scan")

	ids := []uint64{}
	for _, title := range titles {
		ids = append(ids, title.AppId)
		assert.Equal(t, library, title.LibraryRoot)
	}
	assert.ElementsMatch(t, []uint64{440, 620}, ids, "The denylisted and invalid entries should be dropped")
}

func TestScanLibraries_UnreadableLibraryIsSkipped(t *testing.T) {
	library := t.TempDir()
	writeManifest(t, library, 440, "Example")

	titles := ScanLibraries([]string{"/does/not/exist", library})
	assert.Len(t, titles, 1, "An unreadable library should not abort the scan")
	assert.Equal(t, uint64(440), titles[0].AppId)
}
