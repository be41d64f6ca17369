package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves where the sqlite store lives. A non-empty override wins.
func DataDir(app, override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return expandHome(override)
	}
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ConfigDir is where the optional TOML config file is looked up.
func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}

// ExportsDir is where exported poster files are written: the exports
// folder under reportsDir, or under Documents/<APP> when reportsDir is empty.
func ExportsDir(app, reportsDir string) string {
	root := filepath.Join(DocumentsDir(), strings.ToUpper(app))
	if reportsDir = strings.TrimSpace(reportsDir); reportsDir != "" {
		root = expandHome(reportsDir)
	}
	return filepath.Join(root, "exports")
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	configPath := filepath.Join(home, ".config", "user-dirs.dirs")
	if data, err := os.ReadFile(configPath); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, key+"=") {
			continue
		}
		value := strings.TrimPrefix(line, key+"=")
		return strings.Trim(value, "\"")
	}
	return ""
}

func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if strings.HasPrefix(path, "~/") && home != "" {
		return filepath.Join(home, path[2:])
	}
	if !strings.Contains(path, "$HOME") {
		return path
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
