package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/naoray/ds/internal/dsfile"
	"github.com/naoray/ds/internal/utils"
)

// Discover returns the document paths to load, lowest priority first:
// globally configured files in their configured order, then local documents
// from farthest ancestor to the working directory itself. Configured
// patterns that match nothing are skipped.
func Discover(cfg *GlobalConfig, ws dsfile.Workspace) ([]string, error) {
	var paths []string

	for _, pattern := range cfg.Files {
		expanded, err := utils.ExpandTilde(pattern, ws.Home)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		matches, err := filepath.Glob(expanded)
		if err != nil {
			return nil, fmt.Errorf("globbing %q: %w", pattern, err)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if isRegularFile(match) {
				paths = append(paths, match)
			}
		}
	}

	locals, err := discoverLocal(cfg.Resolution, ws)
	if err != nil {
		return nil, err
	}
	paths = append(paths, locals...)

	return dedupe(paths), nil
}

func discoverLocal(mode string, ws dsfile.Workspace) ([]string, error) {
	switch mode {
	case ResolutionCurrentFolder:
		return localIn(ws.Dir), nil

	case ResolutionRecursive, "":
		var dirs []string
		dir := ws.Dir
		for {
			dirs = append(dirs, dir)
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
		slices.Reverse(dirs)

		var paths []string
		for _, d := range dirs {
			paths = append(paths, localIn(d)...)
		}
		return paths, nil

	case ResolutionGitRoot:
		var paths []string
		if ws.RepoRoot != "" && ws.RepoRoot != ws.Dir {
			paths = append(paths, localIn(ws.RepoRoot)...)
		}
		return append(paths, localIn(ws.Dir)...), nil

	default:
		return nil, fmt.Errorf("unknown resolution mode %q", mode)
	}
}

// localIn returns the first recognized document name present in dir.
func localIn(dir string) []string {
	for _, name := range LocalFileNames {
		path := filepath.Join(dir, name)
		if isRegularFile(path) {
			return []string{path}
		}
	}
	return nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// dedupe drops repeated paths, keeping the highest-priority occurrence.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		if seen[paths[i]] {
			continue
		}
		seen[paths[i]] = true
		out = append(out, paths[i])
	}
	slices.Reverse(out)
	return out
}
