// Package utils provides path helpers shared by scope checking, env
// materialization and the runner. The home directory is always passed in
// explicitly so tests can run against synthetic directories.
package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces a leading ~ or ~/ with the given home directory.
// Paths without the shorthand are returned unchanged.
func ExpandTilde(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", fmt.Errorf("expanding %q: home directory unknown", path)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// CollapseTilde replaces the home directory prefix with ~ for display.
func CollapseTilde(path, home string) string {
	if home == "" || !WithinRoot(home, path) {
		return path
	}
	if path == home {
		return "~"
	}
	rel, err := filepath.Rel(home, path)
	if err != nil {
		return path
	}
	return "~/" + filepath.ToSlash(rel)
}

// FileRelative resolves rel against the directory containing docPath.
func FileRelative(docPath, rel string) string {
	dir := filepath.Dir(docPath)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, rel)
}

// ResolveAgainst expands the tilde shorthand and absolutizes input. Relative
// paths are anchored at the directory of the document that declared them.
func ResolveAgainst(input, docPath, home string) (string, error) {
	expanded, err := ExpandTilde(input, home)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) {
		expanded = FileRelative(docPath, expanded)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", input, err)
	}
	return filepath.Clean(abs), nil
}

// WithinRoot reports whether child is parent itself or a path inside it.
func WithinRoot(parent, child string) bool {
	if parent == "" {
		return false
	}
	if parent == child {
		return true
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
