package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirPrefersOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))
	if got := DataDir("vv", dir); got != dir {
		t.Fatalf("DataDir = %q, want override %q", got, dir)
	}
	if got := DataDir("vv", ""); got != filepath.Join(dir, "xdg", "vv") {
		t.Fatalf("DataDir = %q, want XDG path", got)
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := ConfigDir("vv"); got != filepath.Join(dir, "vv") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestExportsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", dir)
	if got := ExportsDir("vv", ""); got != filepath.Join(dir, "VV", "exports") {
		t.Fatalf("ExportsDir = %q", got)
	}
	if got := ExportsDir("vv", "/tmp/out"); got != filepath.Join("/tmp/out", "exports") {
		t.Fatalf("ExportsDir override = %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
