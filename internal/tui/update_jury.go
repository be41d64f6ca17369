package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func moveJuryCursor(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if len(m.criteria) == 0 {
			return m, nil, true
		}
		m.jury.cursor = util.Clamp(m.jury.cursor+delta, 0, len(m.criteria)-1)
		return m, nil, true
	}
}

// cycleJuryScore steps the selected score and wraps past the bounds, like
// a select box.
func cycleJuryScore(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		ref, ok := m.criterionAt(m.jury.cursor)
		if !ok {
			return m, nil, true
		}
		current, err := m.state.Score(ref.category, ref.criterion)
		if err != nil {
			m.setStatusError(m.tr.T("status.error", err))
			return m, nil, true
		}
		m.setScore(ref, util.Wrap(int(current), delta, int(rubric.MinScore), int(rubric.MaxScore)))
		return m, nil, true
	}
}

func handleCommentsFocus(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, m.jury.comments.Focus(), true
}

func (m MainModel) updateCommentsInput(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.jury.comments.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.jury.comments, cmd = m.jury.comments.Update(msg)
	return m, cmd
}

func handleJurySend(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	text := strings.TrimSpace(m.jury.comments.Value())
	if text == "" {
		m.setStatusError(m.tr.T("jury.empty"))
		return m, nil, true
	}
	m.jury.comments.Reset()
	m.setStatus(m.tr.T("jury.sent", utf8.RuneCountInString(text)))
	m.dropSetting(config.SettingJuryDraft)
	return m, nil, true
}

func handleJuryDraft(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setStatus(m.tr.T("jury.draft_saved"))
	m.putSetting(config.SettingJuryDraft, m.jury.comments.Value())
	return m, nil, true
}
