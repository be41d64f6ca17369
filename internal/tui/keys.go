package tui

import (
	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
)

// alwaysActiveKeys reach the registry even while an input has focus.
var alwaysActiveKeys = map[string]bool{
	"ctrl+c": true,
	"ctrl+s": true,
}

func defaultKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	registerGlobalKeys(r)
	registerLandingKeys(r)
	registerEditorKeys(r)
	registerRubricKeys(r)
	registerJuryKeys(r)
	registerPresentKeys(r)
	return r
}

func registerGlobalKeys(r *HandlerRegistry) {
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "help.quit"})
	r.Register(KeyBinding{Key: "ctrl+s", Handler: handleExport, Description: "help.export"})
	for i, view := range navigation.Views() {
		b := KeyBinding{Key: string(rune('1' + i)), Handler: switchToView(view)}
		if i == 0 {
			b.Description = "help.views"
			b.HelpKey = "1-5"
		}
		r.Register(b)
	}
	r.Register(KeyBinding{Key: "tab", Handler: cycleView(1), Description: "help.cycle", HelpKey: "tab"})
	r.Register(KeyBinding{Key: "shift+tab", Handler: cycleView(-1)})
	r.Register(KeyBinding{Key: "g", Handler: handleGotoPrompt, Description: "help.goto"})
	r.Register(KeyBinding{Key: "t", Handler: handleThemeCycle, Description: "help.theme"})
	r.Register(KeyBinding{Key: "L", Handler: handleLocaleToggle, Description: "help.locale"})
}

func registerLandingKeys(r *HandlerRegistry) {
	views := []navigation.View{navigation.Landing}
	r.Register(KeyBinding{Key: "e", Handler: switchToView(navigation.Editor), Description: "help.editor", Views: views})
	r.Register(KeyBinding{Key: "r", Handler: switchToView(navigation.RubricView), Description: "help.rubric", Views: views})
	r.Register(KeyBinding{Key: "N", Handler: handleResetAll, Description: "help.reset_all", Views: views})
}

func registerEditorKeys(r *HandlerRegistry) {
	views := []navigation.View{navigation.Editor}
	r.Register(KeyBinding{Key: "down", Handler: moveEditorFocus(1), Description: "help.move", HelpKey: "↑/↓", Views: views})
	r.Register(KeyBinding{Key: "j", Handler: moveEditorFocus(1), Views: views})
	r.Register(KeyBinding{Key: "up", Handler: moveEditorFocus(-1), Views: views})
	r.Register(KeyBinding{Key: "k", Handler: moveEditorFocus(-1), Views: views})
	r.Register(KeyBinding{Key: "enter", Handler: handleEditorEdit, Description: "help.edit", Views: views})
	r.Register(KeyBinding{Key: "b", Handler: handleBackgroundToggle, Description: "help.bg", Views: views})
	r.Register(KeyBinding{Key: "f", Handler: handleFontCycle, Description: "help.font", Views: views})
}

func registerRubricKeys(r *HandlerRegistry) {
	views := []navigation.View{navigation.RubricView}
	r.Register(KeyBinding{Key: "down", Handler: moveRubricCursor(1), Description: "help.move", HelpKey: "↑/↓", Views: views})
	r.Register(KeyBinding{Key: "j", Handler: moveRubricCursor(1), Views: views})
	r.Register(KeyBinding{Key: "up", Handler: moveRubricCursor(-1), Views: views})
	r.Register(KeyBinding{Key: "k", Handler: moveRubricCursor(-1), Views: views})
	r.Register(KeyBinding{Key: "right", Handler: adjustRubricScore(1), Description: "help.adjust", HelpKey: "←/→", Views: views})
	r.Register(KeyBinding{Key: "l", Handler: adjustRubricScore(1), Views: views})
	r.Register(KeyBinding{Key: "left", Handler: adjustRubricScore(-1), Views: views})
	r.Register(KeyBinding{Key: "h", Handler: adjustRubricScore(-1), Views: views})
	// Digits shadow the global view keys while scoring.
	for d := '0'; d <= '3'; d++ {
		b := KeyBinding{Key: string(d), Handler: handleRubricDigit, Views: views, Priority: 10}
		if d == '0' {
			b.Description = "help.set"
			b.HelpKey = "0-3"
		}
		r.Register(b)
	}
	r.Register(KeyBinding{Key: "x", Handler: handleRubricReset, Description: "help.reset", Views: views})
	r.Register(KeyBinding{Key: "R", Handler: handleRubricReport, Description: "help.report", Views: views})
}

func registerJuryKeys(r *HandlerRegistry) {
	views := []navigation.View{navigation.Jury}
	r.Register(KeyBinding{Key: "down", Handler: moveJuryCursor(1), Description: "help.move", HelpKey: "↑/↓", Views: views})
	r.Register(KeyBinding{Key: "j", Handler: moveJuryCursor(1), Views: views})
	r.Register(KeyBinding{Key: "up", Handler: moveJuryCursor(-1), Views: views})
	r.Register(KeyBinding{Key: "k", Handler: moveJuryCursor(-1), Views: views})
	r.Register(KeyBinding{Key: "right", Handler: cycleJuryScore(1), Description: "help.cycle_val", HelpKey: "←/→", Views: views})
	r.Register(KeyBinding{Key: " ", Handler: cycleJuryScore(1), Views: views})
	r.Register(KeyBinding{Key: "left", Handler: cycleJuryScore(-1), Views: views})
	r.Register(KeyBinding{Key: "c", Handler: handleCommentsFocus, Description: "help.comments", Views: views})
	r.Register(KeyBinding{Key: "enter", Handler: handleJurySend, Description: "help.send", Views: views})
	r.Register(KeyBinding{Key: "d", Handler: handleJuryDraft, Description: "help.draft", Views: views})
}

func registerPresentKeys(r *HandlerRegistry) {
	views := []navigation.View{navigation.Present}
	r.Register(KeyBinding{Key: "r", Handler: handleRecorderToggle, Description: "help.record", Views: views})
	r.Register(KeyBinding{Key: "x", Handler: handleRecorderReset, Description: "help.reset", Views: views})
	r.Register(KeyBinding{Key: "right", Handler: adjustPace(1), Description: "help.pace", HelpKey: "←/→", Views: views})
	r.Register(KeyBinding{Key: "+", Handler: adjustPace(1), Views: views})
	r.Register(KeyBinding{Key: "left", Handler: adjustPace(-1), Views: views})
	r.Register(KeyBinding{Key: "-", Handler: adjustPace(-1), Views: views})
	r.Register(KeyBinding{Key: "enter", Handler: handleRecommendation, Description: "help.recommend", Views: views})
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

func handleExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.startExport()
	return next, cmd, true
}

func switchToView(view navigation.View) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.changeView(view)
		return m, nil, true
	}
}

func cycleView(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		views := navigation.Views()
		next := (int(m.state.CurrentView()) + delta + len(views)) % len(views)
		m.changeView(views[next])
		return m, nil, true
	}
}

func (m *MainModel) changeView(view navigation.View) {
	if err := m.state.ChangeView(view); err != nil {
		m.setStatusError(m.tr.T("status.error", err))
		return
	}
	m.statusMessage = ""
}
