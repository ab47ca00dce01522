package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"strconv"

	"github.com/jessevdk/go-flags"

	"steamshelf/core"
	"steamshelf/platform"
)

type Options struct {
	PrintCatalog []bool   `short:"p" long:"print-catalog" description:"Print the scanned catalog as JSON"`
	Launch       []string `short:"g" long:"launch" description:"Scan, then launch the resolved executable for the given appid"`
	NoArt        []bool   `short:"n" long:"no-art" description:"Skip fetching icon/hero art from the remote service"`
	SetApiKey    []string `short:"k" long:"set-api-key" description:"Persist an art service API key. The STEAMGRIDDB_API_KEY environment variable takes precedence."`
	SetCacheRoot []string `short:"r" long:"set-cache-root" description:"Persist a custom art cache directory"`
	LogLocation  []string `short:"l" long:"log-location" description:"Specifies path to logfile. Defaults to User's Cache Dir / steamshelf.log"`
	Version      []bool   `short:"V" long:"version" description:"Print version and exit"`
}

func main() {
	ops := &Options{}
	_, err := flags.Parse(ops)
	if err != nil {
		log.Fatal(err)
	}

	if len(ops.Version) > 0 {
		fmt.Println(core.APP_NAME + " " + core.VersionRevision)
		return
	}

	if len(ops.LogLocation) > 0 {
		err = core.InitLoggingWithPath(ops.LogLocation[0])
	} else {
		err = core.InitLoggingWithDefaultPath()
	}
	if err != nil {
		fmt.Println(err)
	}

	if len(ops.SetApiKey) > 0 || len(ops.SetCacheRoot) > 0 {
		prefs := core.GetCurrentUserPrefsOrDefault()
		if len(ops.SetApiKey) > 0 {
			prefs.ApiKey = ops.SetApiKey[0]
		}
		if len(ops.SetCacheRoot) > 0 {
			prefs.CacheRoot = ops.SetCacheRoot[0]
		}
		if err := core.CommitUserPrefs(prefs); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Preferences saved")
		return
	}

	var art *core.ArtCacheManager
	if len(ops.NoArt) == 0 || !ops.NoArt[0] {
		art = core.MakeDefaultArtCacheManager()
	}

	channels := core.MakeDefaultChannelProvider()
	go core.ConsoleLogger(channels.Logs)

	catalog, err := core.BuildCatalog(art, channels)
	channels.Logs <- core.Message{Finished: true}
	if err != nil {
		log.Fatal(err)
	}

	if len(ops.Launch) > 0 {
		if err := launchTitle(catalog, ops.Launch[0]); err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(ops.PrintCatalog) > 0 && ops.PrintCatalog[0] {
		marshaled, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(marshaled))
		return
	}

	printSummary(catalog)
}

func printSummary(catalog *core.CatalogResult) {
	fmt.Printf("%v titles with a resolved executable:\n", len(catalog.Resolved))
	for _, title := range catalog.Resolved {
		fmt.Printf("  %v\t%v\t%v\n", title.AppId, title.Name, title.Executable)
	}

	fmt.Printf("%v titles without a resolved executable:\n", len(catalog.Unresolved))
	for _, title := range catalog.Unresolved {
		fmt.Printf("  %v\t%v\n", title.AppId, title.Name)
	}
}

// launchTitle spawns the resolved executable with the install directory as
// its working directory. Launch is a thin boundary: no validation that the
// executable actually runs.
func launchTitle(catalog *core.CatalogResult, appIdStr string) error {
	appId, err := strconv.ParseUint(appIdStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid appid %q: %w", appIdStr, err)
	}

	for _, title := range catalog.Resolved {
		if title.AppId != appId {
			continue
		}

		cmd := exec.Command(title.Executable)
		cmd.Dir = title.InstallPath
		platform.StripWindow(cmd)

		fmt.Printf("Launching %v (%v)\n", title.Name, title.Executable)
		return cmd.Start()
	}

	return fmt.Errorf("appid %v has no resolved executable", appId)
}
