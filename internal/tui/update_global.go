package tui

import (
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/i18n"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func handleGotoPrompt(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.gotoView.active = true
	m.gotoView.input.Reset()
	return m, m.gotoView.input.Focus(), true
}

func (m MainModel) updateGotoInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeGoto()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.gotoView.input.Value())
		m.closeGoto()
		if err := m.state.ChangeViewByName(name); err != nil {
			m.setStatusError(m.tr.T("status.error", err))
			return m, nil
		}
		m.statusMessage = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.gotoView.input, cmd = m.gotoView.input.Update(msg)
	return m, cmd
}

func (m *MainModel) closeGoto() {
	m.gotoView.active = false
	m.gotoView.input.Blur()
}

func handleThemeCycle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	name := nextThemeName(m.themeKey)
	m.applyTheme(name)
	m.setStatus(m.tr.T("status.theme", m.theme.Name))
	m.putSetting(config.SettingTheme, name)
	return m, nil, true
}

func handleLocaleToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setLocale(m.tr.Next())
	m.setStatus(m.tr.T("status.locale", m.tr.Locale()))
	m.putSetting(config.SettingLocale, m.tr.Locale())
	return m, nil, true
}

func (m *MainModel) setLocale(tr *i18n.Translator) {
	m.tr = tr
	m.editor.title.Placeholder = tr.T("editor.title_placeholder")
	m.jury.comments.Placeholder = tr.T("jury.comments_placeholder")
}

// handleResetAll starts a fresh poster and rubric. Snapshots this session
// already recorded are discarded so a later resume does not bring them back.
func handleResetAll(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.state.ResetAll()
	m.syncEditorFromState()
	m.rubricCursor = 0
	m.jury.cursor = 0
	m.jury.comments.Reset()
	m.dropSetting(config.SettingJuryDraft)
	m.hasExported = false

	var discarded int64
	if m.store != nil {
		n, err := m.store.DeleteSessionSnapshots(m.ctx, m.state.ID())
		if err != nil {
			util.LogError("discard session snapshots", err)
			m.setStatusError(m.tr.T("status.error", err))
			return m, nil, true
		}
		discarded = n
	}
	m.setStatus(m.tr.T("status.reset_all", discarded))
	return m, nil, true
}
