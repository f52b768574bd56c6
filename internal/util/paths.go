package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the per-user data directory for app, honoring
// XDG_DATA_HOME. Falls back to a directory next to the binary when no
// home directory can be resolved.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported session reports land: a folder named after
// the app inside the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), strings.ToUpper(app[:1])+app[1:])
}

// documentsDir resolves the documents directory the way xdg-user-dirs
// does: environment override first, then ~/.config/user-dirs.dirs, then
// plain ~/Documents.
func documentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return resolveHomeRefs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := lookupUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return resolveHomeRefs(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// lookupUserDir scans a user-dirs.dirs file for key and returns its value
// with surrounding quotes removed, or "" when the key is absent.
func lookupUserDir(data, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.Trim(line[len(prefix):], `"`)
		}
	}
	return ""
}

// resolveHomeRefs substitutes the $HOME references user-dirs.dirs values
// use. An unresolvable home collapses to an empty prefix rather than
// leaving the literal variable in the path.
func resolveHomeRefs(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
