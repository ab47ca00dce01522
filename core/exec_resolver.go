package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"steamshelf/platform"
)

// The walk is capped so symlink cycles or deeply nested asset trees cannot
// run away.
const maxWalkDepth = 5

// Size stops contributing past this many megabytes so one oversized file
// cannot win on bulk alone.
const maxScoredMegabytes = 500

var goodNameKeywords = []string{"win64", "shipping", "game", "client"}
var goodPathKeywords = []string{"win64", "binaries", "bin", "x64"}
var badPathKeywords = []string{"redist", "tools", "support"}
var badNameKeywords = []string{"crash", "unins", "setup", "install", "report", "error", "config"}

// ResolveExecutable walks the title's install directory and returns the
// best-scoring launch candidate. Best-effort: the heuristic picks a single
// plausible guess, it does not verify the file runs.
func ResolveExecutable(title *Title) (string, error) {
	return resolveExecutableIn(title.InstallPath, title.InstallDir, platform.ExecutableSuffix())
}

func resolveExecutableIn(installPath string, installDir string, suffix string) (string, error) {
	bestPath := ""
	bestScore := int64(0)
	found := false

	walkExecutables(installPath, suffix, 0, func(path string, size int64) {
		score := scoreCandidate(path, size, installDir, suffix)
		// Strict comparison keeps the first-seen candidate on ties.
		if !found || score > bestScore {
			bestPath = path
			bestScore = score
			found = true
		}
	})

	if !found {
		return "", fmt.Errorf("%w: no %v candidate under %v", ErrExecutableNotResolved, suffix, installPath)
	}

	return bestPath, nil
}

// walkExecutables does a depth-first walk, reporting files with the
// executable suffix. A subdirectory that cannot be read yields no
// candidates; siblings are still visited.
func walkExecutables(dir string, suffix string, depth int, visit func(path string, size int64)) {
	if depth > maxWalkDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth > 0 {
			WarningLogger.Printf("skipping unreadable directory %v: %v", dir, err)
		}
		return
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			walkExecutables(full, suffix, depth+1, visit)
			continue
		}

		if !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		visit(full, info.Size())
	}
}

// scoreCandidate is an additive heuristic over tunable constants, not a
// statistical model. Larger is more likely to be the real launch target.
func scoreCandidate(path string, size int64, installDir string, suffix string) int64 {
	lowerPath := strings.ToLower(path)
	lowerBase := strings.ToLower(filepath.Base(path))
	baseName := strings.TrimSuffix(lowerBase, suffix)

	megabytes := size / (1024 * 1024)
	if megabytes > maxScoredMegabytes {
		megabytes = maxScoredMegabytes
	}
	score := 2 * megabytes

	if installDir != "" && strings.Contains(baseName, strings.ToLower(installDir)) {
		score += 300
	}

	for _, keyword := range goodNameKeywords {
		if strings.Contains(baseName, keyword) {
			score += 80
		}
	}
	for _, keyword := range goodPathKeywords {
		if strings.Contains(lowerPath, keyword) {
			score += 120
		}
	}
	for _, keyword := range badPathKeywords {
		if strings.Contains(lowerPath, keyword) {
			score -= 200
		}
	}
	for _, keyword := range badNameKeywords {
		if strings.Contains(baseName, keyword) {
			score -= 400
		}
	}

	return score
}
