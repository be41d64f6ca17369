package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	"github.com/charmbracelet/lipgloss"
)

const fallbackWidth = 100

var navLabelKeys = map[navigation.View]string{
	navigation.Landing:    "nav.landing",
	navigation.Editor:     "nav.editor",
	navigation.RubricView: "nav.rubric",
	navigation.Jury:       "nav.jury",
	navigation.Present:    "nav.present",
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.state.CurrentView() {
	case navigation.Landing:
		body = m.renderLanding()
	case navigation.Editor:
		body = m.renderEditor()
	case navigation.RubricView:
		body = m.renderRubric()
	case navigation.Jury:
		body = m.renderJury()
	case navigation.Present:
		body = m.renderPresent()
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	))
}

func (m MainModel) viewWidth() int {
	if m.width <= 0 {
		return fallbackWidth
	}
	return m.width
}

func (m MainModel) compact() bool {
	return m.viewWidth() < config.CompactModeThreshold
}

func (m MainModel) renderHeader() string {
	title := fmt.Sprintf("VV %s v%s", m.tr.T("app.title"), versionLabel())
	var tabs []string
	current := m.state.CurrentView()
	for i, view := range navigation.Views() {
		label := fmt.Sprintf("%d %s", i+1, m.tr.T(navLabelKeys[view]))
		if view == current {
			tabs = append(tabs, m.theme.Focused.Render("["+label+"]"))
		} else {
			tabs = append(tabs, m.theme.Dim.Render(" "+label+" "))
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Header.Render(title)+"  "+m.theme.Dim.Render(m.tr.T("app.subtitle")),
		strings.Join(tabs, " "),
	)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	inner := m.viewWidth() - lipgloss.Width(frame.Render(""))
	if inner < 1 {
		inner = 1
	}
	return frame.Width(inner).Render(content)
}

func (m MainModel) renderFooter() string {
	var content string
	switch {
	case m.gotoView.active:
		content = m.theme.Focused.Render(m.tr.T("status.goto")) + m.gotoView.input.View()
	case m.statusMessage != "":
		style := m.theme.Success
		if m.statusIsError {
			style = m.theme.Error
		}
		content = style.Render(truncateLabel(m.statusMessage, config.StatusMaxWidth))
	default:
		help := m.keys.HelpForView(m.state.CurrentView(), m.tr.T)
		content = m.theme.Dim.Render(help)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	inner := m.viewWidth() - lipgloss.Width(frame.Render(""))
	if inner < 1 {
		inner = 1
	}
	return frame.Width(inner).Render(content)
}

// panel boxes a section of a view.
func (m MainModel) panel(width int, lines ...string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// columns lays panels side by side, or stacks them on narrow terminals.
func (m MainModel) columns(left, right string) string {
	if m.compact() {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m MainModel) marker(selected bool) string {
	if selected {
		return m.theme.Focused.Render("> ")
	}
	return "  "
}
