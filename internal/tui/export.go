package tui

import (
	"context"

	"github.com/akyairhashvil/vocesvisuales/internal/export"
	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type exportDoneMsg struct {
	artifact export.Artifact
	rubric   models.RubricSnapshot
	err      error
}

// exportCmd runs the exporter off the update loop. snap is taken before the
// command is built, so later edits never reach the exporter.
func exportCmd(ctx context.Context, exporter export.Exporter, snap models.Snapshot) tea.Cmd {
	return func() tea.Msg {
		artifact, err := exporter.Export(ctx, snap)
		return exportDoneMsg{artifact: artifact, rubric: snap.Rubric, err: err}
	}
}

func (m MainModel) startExport() (MainModel, tea.Cmd) {
	if m.exporter == nil {
		m.setStatusError(m.tr.T("status.no_exporter"))
		return m, nil
	}
	return m, exportCmd(m.ctx, m.exporter, m.state.Snapshot())
}

func (m MainModel) handleExportDone(msg exportDoneMsg) MainModel {
	if msg.err != nil {
		util.LogError("export", msg.err)
		m.setStatusError(m.tr.T("status.export_failed", msg.err))
		return m
	}
	m.exported = msg.rubric
	m.hasExported = true
	m.setStatus(m.tr.T("status.exported", msg.artifact.Location))
	return m
}
