package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case exportDoneMsg:
		return m.handleExportDone(msg), nil
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd
	}
	return m.forwardToWidgets(msg)
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	key := msg.String()
	if alwaysActiveKeys[key] {
		if next, cmd, handled := m.keys.Handle(m, key); handled {
			return next, cmd
		}
	}
	switch {
	case m.gotoView.active:
		return m.updateGotoInput(msg)
	case m.editor.editing:
		return m.updateEditorInput(msg)
	case m.jury.comments.Focused():
		return m.updateCommentsInput(msg)
	}
	if msg.Type == tea.KeyEsc {
		m.statusMessage = ""
		return m, nil
	}
	next, cmd, _ := m.keys.Handle(m, key)
	return next, cmd
}

// forwardToWidgets routes ticks and blinks to the widgets that own them.
func (m MainModel) forwardToWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.present.watch, cmd = m.present.watch.Update(msg)
	cmds = append(cmds, cmd)

	switch {
	case m.gotoView.active:
		m.gotoView.input, cmd = m.gotoView.input.Update(msg)
		cmds = append(cmds, cmd)
	case m.editor.editing && m.editor.focus == 0:
		m.editor.title, cmd = m.editor.title.Update(msg)
		cmds = append(cmds, cmd)
	case m.editor.editing:
		i := m.editor.focus - 1
		m.editor.sections[i], cmd = m.editor.sections[i].Update(msg)
		cmds = append(cmds, cmd)
	case m.jury.comments.Focused():
		m.jury.comments, cmd = m.jury.comments.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
