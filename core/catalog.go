package core

// CatalogResult splits the scanned titles by whether a launch executable
// was resolved. Unresolved titles are still worth surfacing; the split is
// disjoint and ordered by enumeration.
type CatalogResult struct {
	Resolved   []*Title `json:"resolved"`
	Unresolved []*Title `json:"unresolved"`
}

// BuildCatalog runs the whole pipeline: locate the Steam root, enumerate
// libraries, scan manifests, then resolve an executable and fetch art per
// title. Per-title failures degrade that one title; only a missing root or
// an unreadable library list fails the build. Pass a nil art manager to
// skip the art stage.
func BuildCatalog(art *ArtCacheManager, channels *ChannelProvider) (*CatalogResult, error) {
	steamRoot, err := FindSteamRoot()
	if err != nil {
		return nil, err
	}
	LogMessage(channels.Logs, "Found Steam root at %v", steamRoot)

	return BuildCatalogFromRoot(steamRoot, art, channels)
}

// BuildCatalogFromRoot runs the pipeline against an already-located root.
func BuildCatalogFromRoot(steamRoot string, art *ArtCacheManager, channels *ChannelProvider) (*CatalogResult, error) {
	libraries, err := EnumerateLibraries(steamRoot)
	if err != nil {
		return nil, err
	}
	LogMessage(channels.Logs, "Enumerated %v library folders", len(libraries))

	titles := ScanLibraries(libraries)
	LogMessage(channels.Logs, "Scanned %v installed titles", len(titles))

	result := &CatalogResult{
		Resolved:   []*Title{},
		Unresolved: []*Title{},
	}

	for _, title := range titles {
		executable, err := ResolveExecutable(title)
		if err != nil {
			WarningLogger.Printf("no executable for %v (%v): %v", title.Name, title.AppId, err)
			result.Unresolved = append(result.Unresolved, title)
		} else {
			title.Executable = executable
			result.Resolved = append(result.Resolved, title)
		}

		if art != nil {
			paths := art.FetchAndCache(title.AppId)
			title.IconPath = paths.IconPath
			title.HeroPath = paths.HeroPath
		}

		LogMessage(channels.Logs, "Catalogued %v (%v)", title.Name, title.AppId)
	}

	return result, nil
}
