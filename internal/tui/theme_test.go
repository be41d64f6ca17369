package tui

import (
	"sort"
	"testing"
)

func TestThemeNamesSorted(t *testing.T) {
	names := ThemeNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}
	if len(names) != len(Themes) {
		t.Fatalf("expected %d names, got %d", len(Themes), len(names))
	}
}

func TestThemeFor(t *testing.T) {
	if th, ok := ThemeFor("dracula"); !ok || th.Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
	if th, ok := ThemeFor("missing"); ok || th.Name != "Default" {
		t.Fatalf("expected default fallback for unknown theme")
	}
}

func TestNextThemeNameCycles(t *testing.T) {
	names := ThemeNames()
	current := names[0]
	seen := map[string]bool{}
	for range names {
		seen[current] = true
		current = nextThemeName(current)
	}
	if current != names[0] || len(seen) != len(names) {
		t.Fatalf("expected a full cycle through themes")
	}
	if nextThemeName("unknown") != names[0] {
		t.Fatalf("expected unknown theme to restart the cycle")
	}
}
