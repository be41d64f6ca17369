package tui

import (
	"github.com/akyairhashvil/vocesvisuales/internal/poster"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func moveEditorFocus(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.editor.focus = util.Wrap(m.editor.focus, delta, 0, len(editorSections))
		return m, nil, true
	}
}

func handleEditorEdit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.editor.editing = true
	if m.editor.focus == 0 {
		return m, m.editor.title.Focus(), true
	}
	return m, m.editor.sections[m.editor.focus-1].Focus(), true
}

func (m *MainModel) blurEditor() {
	m.editor.editing = false
	m.editor.title.Blur()
	for i := range m.editor.sections {
		m.editor.sections[i].Blur()
	}
}

// updateEditorInput feeds a key to the focused widget and writes its value
// back to the poster.
func (m MainModel) updateEditorInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if msg.Type == tea.KeyEsc || (m.editor.focus == 0 && msg.Type == tea.KeyEnter) {
		m.blurEditor()
		return m, nil
	}
	var cmd tea.Cmd
	if m.editor.focus == 0 {
		m.editor.title, cmd = m.editor.title.Update(msg)
		m.commitField(poster.FieldTitle, m.editor.title.Value())
		return m, cmd
	}
	i := m.editor.focus - 1
	m.editor.sections[i], cmd = m.editor.sections[i].Update(msg)
	m.commitField(editorSections[i], m.editor.sections[i].Value())
	return m, cmd
}

func (m *MainModel) commitField(field poster.Field, value string) {
	if err := m.state.UpdatePosterField(field, value); err != nil {
		m.setStatusError(m.tr.T("status.error", err))
	}
}

func handleBackgroundToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := poster.BackgroundDark
	if m.state.Background() == poster.BackgroundDark {
		next = poster.BackgroundLight
	}
	m.commitField(poster.FieldBackground, string(next))
	return m, nil, true
}

func handleFontCycle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	idx := 0
	for i, f := range poster.Fonts {
		if f == m.state.Font() {
			idx = i
			break
		}
	}
	next := poster.Fonts[util.Wrap(idx, 1, 0, len(poster.Fonts)-1)]
	m.commitField(poster.FieldFont, string(next))
	return m, nil, true
}
