package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const DefaultArtServiceURL = "https://www.steamgriddb.com/api/v2"
const ArtServiceKeyEnv = "STEAMGRIDDB_API_KEY"

const IconArtKind = "icons"
const HeroArtKind = "heroes"

var acceptedArtExtensions = []string{".png", ".jpg", ".jpeg"}

// ArtPaths holds whatever art is on disk for one title. Either or both
// may be empty; missing art is not an error.
type ArtPaths struct {
	IconPath string
	HeroPath string
}

type ArtCacheManager struct {
	cacheRoot  string
	serviceURL string
	// api carries the bearer credential; download stays anonymous so the
	// credential never reaches the image CDN.
	api      *http.Client
	download *http.Client
	hasKey   bool
}

func NewArtCacheManager(cacheRoot string, serviceURL string, apiKey string) *ArtCacheManager {
	manager := &ArtCacheManager{
		cacheRoot:  cacheRoot,
		serviceURL: serviceURL,
		download:   &http.Client{Timeout: 60 * time.Second},
		hasKey:     apiKey != "",
	}

	if manager.hasKey {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
		manager.api = oauth2.NewClient(context.Background(), source)
		manager.api.Timeout = 30 * time.Second
	}

	return manager
}

func MakeDefaultArtCacheManager() *ArtCacheManager {
	return NewArtCacheManager(GetArtCacheRoot(), DefaultArtServiceURL, GetArtServiceKey())
}

// FetchAndCache returns the on-disk art for a title, fetching and caching
// it first when missing. Every sub-step may fail on its own; the worst
// case is a title with no art, never an error.
func (m *ArtCacheManager) FetchAndCache(appId uint64) ArtPaths {
	paths := m.cacheLookup(appId)
	if paths.IconPath != "" || paths.HeroPath != "" {
		return paths
	}

	if !m.hasKey {
		return ArtPaths{}
	}

	gameId, err := m.resolveGameId(appId)
	if err != nil {
		WarningLogger.Printf("art lookup for %v failed: %v", appId, err)
		return ArtPaths{}
	}

	for _, kind := range []string{IconArtKind, HeroArtKind} {
		artURL, err := m.topArtworkURL(kind, gameId)
		if err != nil {
			WarningLogger.Printf("no %v for %v (remote id %v): %v", kind, appId, gameId, err)
			continue
		}

		dest := filepath.Join(m.cacheRoot, kind, fmt.Sprintf("%v%v", appId, extensionFromURL(artURL)))
		if err := m.downloadToFile(artURL, dest); err != nil {
			WarningLogger.Printf("downloading %v for %v failed: %v", kind, appId, err)
		}
	}

	// Report what is verifiably on disk, not what was requested.
	return m.cacheLookup(appId)
}

func (m *ArtCacheManager) cacheLookup(appId uint64) ArtPaths {
	return ArtPaths{
		IconPath: m.cachedFile(IconArtKind, appId),
		HeroPath: m.cachedFile(HeroArtKind, appId),
	}
}

// cachedFile recomputes the cache path from the title id. The layout
// <cacheRoot>/<kind>/<id>.<ext> is a persisted contract shared with every
// consumer of the cache.
func (m *ArtCacheManager) cachedFile(kind string, appId uint64) string {
	for _, ext := range acceptedArtExtensions {
		candidate := filepath.Join(m.cacheRoot, kind, fmt.Sprintf("%v%v", appId, ext))
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

type artServiceEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type artServiceGame struct {
	Id int64 `json:"id"`
}

type artServiceImage struct {
	Url string `json:"url"`
}

// resolveGameId maps a Steam appid to the art service's own game id.
func (m *ArtCacheManager) resolveGameId(appId uint64) (int64, error) {
	data, err := m.getEnvelope(fmt.Sprintf("%v/games/steam/%v", m.serviceURL, appId))
	if err != nil {
		return 0, err
	}

	game := artServiceGame{}
	if err := json.Unmarshal(data, &game); err != nil {
		return 0, err
	}
	if game.Id == 0 {
		return 0, fmt.Errorf("%w: no game id for appid %v", ErrMissingData, appId)
	}

	return game.Id, nil
}

// topArtworkURL asks for the ranked artwork list of one kind and keeps the
// top entry.
func (m *ArtCacheManager) topArtworkURL(kind string, gameId int64) (string, error) {
	data, err := m.getEnvelope(fmt.Sprintf("%v/%v/game/%v", m.serviceURL, kind, gameId))
	if err != nil {
		return "", err
	}

	images := []artServiceImage{}
	if err := json.Unmarshal(data, &images); err != nil {
		return "", err
	}
	if len(images) == 0 || images[0].Url == "" {
		return "", fmt.Errorf("%w: empty %v list", ErrMissingData, kind)
	}

	return images[0].Url, nil
}

func (m *ArtCacheManager) getEnvelope(requestURL string) (json.RawMessage, error) {
	resp, err := m.api.Get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %v from %v", ErrBadStatus, resp.Status, requestURL)
	}

	envelope := artServiceEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%w: service reported failure for %v", ErrBadStatus, requestURL)
	}

	return envelope.Data, nil
}

func (m *ArtCacheManager) downloadToFile(artURL string, dest string) error {
	resp, err := m.download.Get(artURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %v from %v", ErrBadStatus, resp.Status, artURL)
	}

	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return err
	}

	// Stream into a temp file and rename only on success, so a transport
	// error mid-download never leaves a truncated image at the cache path
	// (cache entries are permanent once written).
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return err
	}

	_, err = io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), dest)
}

// extensionFromURL derives the cache file extension from the URL's
// trailing path segment, defaulting to .png.
func extensionFromURL(artURL string) string {
	parsed, err := url.Parse(artURL)
	if err != nil {
		return ".png"
	}

	ext := strings.ToLower(path.Ext(path.Base(parsed.Path)))
	for _, accepted := range acceptedArtExtensions {
		if ext == accepted {
			return ext
		}
	}

	return ".png"
}
