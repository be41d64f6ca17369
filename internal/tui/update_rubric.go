package tui

import (
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func moveRubricCursor(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if len(m.criteria) == 0 {
			return m, nil, true
		}
		m.rubricCursor = util.Clamp(m.rubricCursor+delta, 0, len(m.criteria)-1)
		return m, nil, true
	}
}

// adjustRubricScore steps the selected score and stops at the bounds.
func adjustRubricScore(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		ref, ok := m.criterionAt(m.rubricCursor)
		if !ok {
			return m, nil, true
		}
		current, err := m.state.Score(ref.category, ref.criterion)
		if err != nil {
			m.setStatusError(m.tr.T("status.error", err))
			return m, nil, true
		}
		next := util.Clamp(int(current)+delta, int(rubric.MinScore), int(rubric.MaxScore))
		m.setScore(ref, next)
		return m, nil, true
	}
}

func handleRubricDigit(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	ref, ok := m.criterionAt(m.rubricCursor)
	if !ok {
		return m, nil, true
	}
	if err := m.state.SetScoreText(ref.category, ref.criterion, key); err != nil {
		m.setStatusError(m.tr.T("status.error", err))
	}
	return m, nil, true
}

func handleRubricReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.state.ResetRubric()
	m.setStatus(m.tr.T("rubric.reset_done"))
	return m, nil, true
}

// handleRubricReport only acknowledges the request; no document is produced.
func handleRubricReport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setStatus(m.tr.T("rubric.report_done"))
	return m, nil, true
}

func (m MainModel) criterionAt(i int) (criterionRef, bool) {
	if i < 0 || i >= len(m.criteria) {
		return criterionRef{}, false
	}
	return m.criteria[i], true
}

func (m *MainModel) setScore(ref criterionRef, value int) {
	if err := m.state.SetScore(ref.category, ref.criterion, value); err != nil {
		m.setStatusError(m.tr.T("status.error", err))
	}
}
