package tui

import (
	"fmt"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/poster"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) renderLanding() string {
	welcome := m.panel(0,
		m.theme.Heading.Render(m.tr.T("landing.welcome")),
		"",
		m.theme.Text.Render(m.tr.T("landing.intro")),
	)

	rawTitle, _ := m.state.PosterField(poster.FieldTitle)
	title := m.theme.Text.Render(rawTitle)
	if rawTitle == "" {
		title = m.theme.Dim.Render(m.tr.T("landing.untitled"))
	}
	intro, _ := m.state.Preview(poster.FieldIntroduction, config.LandingPreviewLength)
	introLine := m.theme.Text.Render(intro)
	if intro == "" {
		introLine = m.theme.Dim.Render(m.tr.T("landing.empty"))
	}
	status := m.panel(0,
		m.theme.Heading.Render(m.tr.T("landing.state")),
		"",
		m.theme.Highlight.Render(m.tr.T("landing.title"))+" "+title,
		m.theme.Highlight.Render(m.tr.T("landing.introduction"))+" "+introLine,
		m.theme.Highlight.Render(m.tr.T("landing.score", m.state.Total(), m.state.MaxTotal())),
		m.theme.Dim.Render(m.tr.T("landing.started", m.state.StartedAt().Local().Format("15:04"))),
	)
	return m.columns(welcome, status)
}

var sectionLabelKeys = map[poster.Field]string{
	poster.FieldIntroduction: "editor.introduction",
	poster.FieldMethodology:  "editor.methodology",
	poster.FieldResults:      "editor.results",
	poster.FieldReferences:   "editor.references",
}

func (m MainModel) renderEditor() string {
	lines := []string{m.theme.Heading.Render(m.tr.T("editor.heading")), ""}

	lines = append(lines, m.marker(m.editor.focus == 0)+m.theme.Highlight.Render(m.tr.T("editor.title", config.TitleWordGuideline)))
	lines = append(lines, m.editor.title.View())
	words := m.state.TitleWordCount()
	wordStyle := m.theme.Dim
	if words > config.TitleWordGuideline {
		wordStyle = m.theme.Warning
	}
	lines = append(lines, wordStyle.Render(m.tr.T("editor.words", words)))

	for i, field := range editorSections {
		lines = append(lines, "", m.marker(m.editor.focus == i+1)+m.theme.Highlight.Render(m.tr.T(sectionLabelKeys[field])))
		lines = append(lines, m.editor.sections[i].View())
		if field == poster.FieldIntroduction {
			lines = append(lines, m.theme.Dim.Render(m.tr.T("editor.introduction_hint")))
		}
	}
	form := m.panel(0, lines...)
	return m.columns(form, m.renderPosterPreview())
}

func (m MainModel) renderPosterPreview() string {
	bg := m.state.Background()
	font := m.state.Font()

	title, _ := m.state.PosterField(poster.FieldTitle)
	if title == "" {
		title = m.tr.T("editor.preview_title")
	}
	intro, _ := m.state.Preview(poster.FieldIntroduction, config.EditorPreviewLength)
	if intro == "" {
		intro = m.tr.T("editor.preview_intro")
	}

	style := m.theme.PosterLight
	if bg == poster.BackgroundDark {
		style = m.theme.PosterDark
	}
	style = fontStyle(style, font).Width(config.PreviewWidth)
	card := style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		intro,
	))

	return m.panel(config.PreviewWidth+4,
		m.theme.Heading.Render(m.tr.T("editor.design")),
		m.tr.T("editor.background", m.tr.T("background."+string(bg))),
		m.tr.T("editor.font", m.tr.T("font."+string(font))),
		"",
		m.theme.Heading.Render(m.tr.T("editor.preview")),
		card,
	)
}

// fontStyle approximates the font family in a terminal.
func fontStyle(style lipgloss.Style, font poster.Font) lipgloss.Style {
	switch font {
	case poster.FontSerif:
		return style.Italic(true)
	case poster.FontMono:
		return style.Faint(true)
	default:
		return style
	}
}

func (m MainModel) renderRubric() string {
	lines := []string{
		m.theme.Heading.Render(m.tr.T("rubric.heading")),
		m.theme.Dim.Render(m.tr.T("rubric.hint")),
	}
	idx := 0
	for _, cat := range m.state.Schema().Categories() {
		lines = append(lines, "", m.theme.Header.Render(cat.Label))
		labelWidth := criterionLabelWidth(cat)
		for _, crit := range cat.Criteria {
			score, _ := m.state.Score(cat.Key, crit.Key)
			row := fmt.Sprintf("%-*s %s  %s", labelWidth, crit.Label, scoreBar(score), m.tr.T("rubric.points", int(score)))
			line := m.marker(idx == m.rubricCursor) + m.styleRow(idx == m.rubricCursor).Render(row)
			if prev, ok := m.exportedScore(cat.Key, crit.Key); ok && prev != int(score) {
				line += " " + m.theme.Warning.Render(m.tr.T("rubric.changed", prev))
			}
			lines = append(lines, line)
			idx++
		}
		subtotal, _ := m.state.CategoryTotal(cat.Key)
		lines = append(lines, m.theme.Dim.Render("  "+m.tr.T("rubric.subtotal", subtotal, len(cat.Criteria)*int(rubric.MaxScore))))
	}
	lines = append(lines, "", m.theme.Focused.Render(m.tr.T("rubric.total", m.state.Total(), m.state.MaxTotal())))
	return m.panel(0, lines...)
}

func (m MainModel) renderJury() string {
	form := []string{
		m.theme.Heading.Render(m.tr.T("jury.heading")),
		m.theme.Dim.Render(m.tr.T("jury.hint")),
		"",
		m.theme.Highlight.Render(m.tr.T("jury.form")),
	}
	idx := 0
	for _, cat := range m.state.Schema().Categories() {
		form = append(form, "", m.theme.Header.Render(cat.Label))
		labelWidth := criterionLabelWidth(cat)
		for _, crit := range cat.Criteria {
			score, _ := m.state.Score(cat.Key, crit.Key)
			row := fmt.Sprintf("%-*s [ %d ]", labelWidth, crit.Label, int(score))
			form = append(form, m.marker(idx == m.jury.cursor)+m.styleRow(idx == m.jury.cursor).Render(row))
			idx++
		}
	}
	comments := m.panel(0,
		m.theme.Heading.Render(m.tr.T("jury.comments")),
		m.jury.comments.View(),
	)
	return m.columns(m.panel(0, form...), comments)
}

func (m MainModel) renderPresent() string {
	elapsed := formatElapsed(m.present.watch.Elapsed())
	var recorderState string
	switch {
	case m.present.recording:
		recorderState = m.theme.Error.Render("● " + m.tr.T("present.recording", elapsed))
	case m.present.watch.Elapsed() > 0:
		recorderState = m.theme.Warning.Render(m.tr.T("present.paused", elapsed))
	default:
		recorderState = m.theme.Dim.Render(m.tr.T("present.idle"))
	}
	recorder := m.panel(0,
		m.theme.Heading.Render(m.tr.T("present.heading")),
		m.theme.Dim.Render(m.tr.T("present.hint")),
		"",
		m.theme.Highlight.Render(m.tr.T("present.recorder")),
		recorderState,
		"",
		m.tr.T("present.pace", m.present.pace),
		fmt.Sprintf("%d %s %d", config.PaceMin, paceBar(m.present.pace), config.PaceMax),
	)

	feedback := []string{m.theme.Heading.Render(m.tr.T("present.feedback"))}
	for i := 1; i <= 4; i++ {
		feedback = append(feedback, "• "+m.tr.T(fmt.Sprintf("present.feedback.%d", i)))
	}
	return m.columns(recorder, m.panel(0, feedback...))
}

func (m MainModel) styleRow(selected bool) lipgloss.Style {
	if selected {
		return m.theme.Focused
	}
	return m.theme.Text
}

func criterionLabelWidth(cat rubric.Category) int {
	width := 0
	for _, crit := range cat.Criteria {
		if w := lipgloss.Width(crit.Label); w > width {
			width = w
		}
	}
	return width
}

// exportedScore is the score a criterion had in the last export.
func (m MainModel) exportedScore(category, criterion string) (int, bool) {
	if !m.hasExported {
		return 0, false
	}
	return m.exported.Lookup(category, criterion)
}
