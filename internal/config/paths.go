package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultConfigDir  = "configs"
	DefaultConfigFile = "config.json"
)

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir, DefaultConfigFile)
}

func SearchDirs() []string {
	return uniqueDirs([]string{
		".",
		DefaultConfigDir,
	})
}

// FindDefault returns the first existing default config file, or "" when
// none is present. Used when no -config flag is given.
func FindDefault() string {
	for _, dir := range SearchDirs() {
		path := filepath.Join(dir, DefaultConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func uniqueDirs(dirs []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		normalized := strings.ToLower(filepath.Clean(trimmed))
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
