package core

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drainChannels(t *testing.T) *ChannelProvider {
	t.Helper()
	channels := MakeDefaultChannelProvider()
	go func() {
		for range channels.Logs {
		}
	}()
	t.Cleanup(func() { close(channels.Logs) })
	return channels
}

func TestBuildCatalogFromRoot(t *testing.T) {
	steamRoot := t.TempDir()
	library := t.TempDir()

	writeLibraryFolders(t, steamRoot, fmt.Sprintf(`"libraryfolders"
{
	"0"
	{
		"path"		"%v"
	}
}
`, library))

	// One title with a findable executable, one with an empty install dir.
	writeManifest(t, library, 440, "Example")
	writeManifest(t, library, 620, "Portal 2")
	writeSizedFile(t, filepath.Join(library, SteamAppsDir, CommonDir, "Example", "Example.exe"), 2048)

	catalog, err := BuildCatalogFromRoot(steamRoot, nil, drainChannels(t))
	assert.NoError(t, err, "A readable root with one library should build")

	assert.Len(t, catalog.Resolved, 1, "The title with an executable should land in the resolved list")
	assert.Len(t, catalog.Unresolved, 1, "The title without one should land in the unresolved list")

	resolved := catalog.Resolved[0]
	assert.Equal(t, uint64(440), resolved.AppId)
	assert.Equal(t, filepath.Join(library, SteamAppsDir, CommonDir, "Example", "Example.exe"), resolved.Executable)
	assert.Equal(t, filepath.Join(library, SteamAppsDir, CommonDir, "Example"), resolved.InstallPath)

	unresolved := catalog.Unresolved[0]
	assert.Equal(t, uint64(620), unresolved.AppId)
	assert.Empty(t, unresolved.Executable)
	assert.Empty(t, unresolved.IconPath, "With a nil art manager no art is attached")
}

func TestBuildCatalogFromRoot_MissingLibraryList(t *testing.T) {
	_, err := BuildCatalogFromRoot(t.TempDir(), nil, drainChannels(t))
	assert.Error(t, err, "A root without libraryfolders.vdf is a terminal failure")
}

func TestBuildCatalogFromRoot_WithArtCache(t *testing.T) {
	fake := newFakeArtService(t)
	steamRoot := t.TempDir()
	library := t.TempDir()
	cacheRoot := t.TempDir()

	writeLibraryFolders(t, steamRoot, fmt.Sprintf(`"libraryfolders"
{
	"0"
	{
		"path"		"%v"
	}
}
`, library))
	writeManifest(t, library, 440, "Example")
	writeSizedFile(t, filepath.Join(library, SteamAppsDir, CommonDir, "Example", "Example.exe"), 2048)

	art := NewArtCacheManager(cacheRoot, fake.server.URL, "test-key")
	catalog, err := BuildCatalogFromRoot(steamRoot, art, drainChannels(t))
	assert.NoError(t, err)

	assert.Len(t, catalog.Resolved, 1)
	title := catalog.Resolved[0]
	assert.Equal(t, filepath.Join(cacheRoot, IconArtKind, "440.png"), title.IconPath,
		"Fetched icon art should be attached to the title")
	assert.Equal(t, filepath.Join(cacheRoot, HeroArtKind, "440.jpg"), title.HeroPath,
		"Fetched hero art should be attached to the title")
}
