package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Heading     lipgloss.Style
	Text        lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Input       lipgloss.Style
	PosterLight lipgloss.Style
	PosterDark  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(0, 1),
		Border:      lipgloss.Color("63"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		PosterLight: lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")).Padding(1, 2),
		PosterDark:  lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")).Padding(1, 2),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(0, 1),
		Border:      lipgloss.Color("62"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		PosterLight: lipgloss.NewStyle().Background(lipgloss.Color("253")).Foreground(lipgloss.Color("236")).Padding(1, 2),
		PosterDark:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("253")).Padding(1, 2),
	},
	"contrast": {
		Name:        "High contrast",
		Base:        lipgloss.NewStyle().Margin(0, 1),
		Border:      lipgloss.Color("15"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Underline(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1),
		PosterLight: lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")).Padding(1, 2),
		PosterDark:  lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15")).Padding(1, 2),
	},
}

// ThemeNames returns the registered theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeFor looks up a theme, falling back to the default one.
func ThemeFor(name string) (Theme, bool) {
	if t, ok := Themes[name]; ok {
		return t, true
	}
	return Themes["default"], false
}

func nextThemeName(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
