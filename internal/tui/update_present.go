package tui

import (
	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// handleRecorderToggle starts or stops the rehearsal stopwatch. No audio
// is captured.
func handleRecorderToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.present.recording {
		m.present.recording = false
		m.setStatus(m.tr.T("present.stopped"))
		return m, m.present.watch.Stop(), true
	}
	m.present.recording = true
	m.setStatus(m.tr.T("present.started"))
	return m, m.present.watch.Start(), true
}

func handleRecorderReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.present.recording = false
	return m, tea.Sequence(m.present.watch.Stop(), m.present.watch.Reset()), true
}

func adjustPace(direction int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.present.pace = util.Clamp(m.present.pace+direction*config.PaceStep, config.PaceMin, config.PaceMax)
		return m, nil, true
	}
}

func handleRecommendation(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setStatus(m.tr.T("present.recommendation"))
	return m, nil, true
}
