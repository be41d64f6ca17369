package tui

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/vocesvisuales/internal/config"
	"github.com/akyairhashvil/vocesvisuales/internal/database"
	"github.com/akyairhashvil/vocesvisuales/internal/export"
	"github.com/akyairhashvil/vocesvisuales/internal/i18n"
	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/poster"
	"github.com/akyairhashvil/vocesvisuales/internal/session"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editorSections are the multi-line poster sections, in editing order.
var editorSections = []poster.Field{
	poster.FieldIntroduction,
	poster.FieldMethodology,
	poster.FieldResults,
	poster.FieldReferences,
}

type editorState struct {
	title    textinput.Model
	sections []textarea.Model
	focus    int // 0 is the title, 1.. index sections
	editing  bool
}

// criterionRef locates one rubric row.
type criterionRef struct {
	category      string
	categoryLabel string
	criterion     string
	label         string
}

type juryState struct {
	cursor   int
	comments textarea.Model
}

type presentState struct {
	watch     stopwatch.Model
	recording bool
	pace      int
}

type gotoState struct {
	active bool
	input  textinput.Model
}

// Options carries the collaborators of the program.
type Options struct {
	Exporter export.Exporter
	Store    Store
	Locale   string
	Theme    string
}

// MainModel is the root bubbletea model. It reads and mutates the session
// state and hands snapshots to the exporter.
type MainModel struct {
	ctx      context.Context
	state    *session.State
	exporter export.Exporter
	store    Store
	tr       *i18n.Translator
	theme    Theme
	themeKey string
	keys     *HandlerRegistry

	criteria     []criterionRef
	rubricCursor int
	editor       editorState
	jury         juryState
	present      presentState
	gotoView     gotoState

	// rubric as of the last successful export
	exported    models.RubricSnapshot
	hasExported bool

	statusMessage string
	statusIsError bool
	quitting      bool
	width, height int
}

func NewMainModel(ctx context.Context, state *session.State, opts Options) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := MainModel{
		ctx:      ctx,
		state:    state,
		exporter: opts.Exporter,
		store:    opts.Store,
		tr:       i18n.New(opts.Locale),
		keys:     defaultKeyRegistry(),
	}
	m.applyTheme(opts.Theme)
	m.criteria = flattenCriteria(state)

	ti := textinput.New()
	ti.Placeholder = m.tr.T("editor.title_placeholder")
	ti.Width = config.EditorInputWidth
	m.editor.title = ti
	for range editorSections {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.SetWidth(config.EditorInputWidth)
		ta.SetHeight(config.EditorAreaHeight)
		m.editor.sections = append(m.editor.sections, ta)
	}
	m.syncEditorFromState()

	comments := textarea.New()
	comments.ShowLineNumbers = false
	comments.Placeholder = m.tr.T("jury.comments_placeholder")
	comments.SetWidth(config.EditorInputWidth)
	comments.SetHeight(config.CommentsHeight)
	if draft, ok := m.getSetting(config.SettingJuryDraft); ok {
		comments.SetValue(draft)
	}
	m.jury.comments = comments

	m.present.watch = stopwatch.NewWithInterval(time.Second)
	m.present.pace = config.PaceDefault

	gi := textinput.New()
	gi.Placeholder = "landing | editor | rubric | jury | present"
	gi.Width = 30
	m.gotoView.input = gi
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func flattenCriteria(state *session.State) []criterionRef {
	var out []criterionRef
	for _, cat := range state.Schema().Categories() {
		for _, crit := range cat.Criteria {
			out = append(out, criterionRef{
				category:      cat.Key,
				categoryLabel: cat.Label,
				criterion:     crit.Key,
				label:         crit.Label,
			})
		}
	}
	return out
}

// syncEditorFromState loads the widgets from the poster, used at start and
// after a restore.
func (m *MainModel) syncEditorFromState() {
	if title, err := m.state.PosterField(poster.FieldTitle); err == nil {
		m.editor.title.SetValue(title)
	}
	for i, field := range editorSections {
		if value, err := m.state.PosterField(field); err == nil {
			m.editor.sections[i].SetValue(value)
		}
	}
}

func (m *MainModel) applyTheme(name string) {
	if name == "" {
		name = config.DefaultTheme
	}
	theme, ok := ThemeFor(name)
	if !ok {
		name = config.DefaultTheme
	}
	m.theme = theme
	m.themeKey = name
}

func (m MainModel) inputFocused() bool {
	return m.gotoView.active || m.editor.editing || m.jury.comments.Focused()
}

func (m *MainModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *MainModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m MainModel) getSetting(key string) (string, bool) {
	if m.store == nil {
		return "", false
	}
	return m.store.GetSetting(m.ctx, key)
}

func (m *MainModel) putSetting(key, value string) {
	if m.store == nil {
		return
	}
	if err := m.store.SetSetting(m.ctx, key, value); err != nil {
		util.LogError("save setting "+key, err)
		m.setStatusError(m.tr.T("status.error", err))
	}
}

// dropSetting removes key; a key that was never stored is not an error.
func (m *MainModel) dropSetting(key string) {
	if m.store == nil {
		return
	}
	if err := m.store.DeleteSetting(m.ctx, key); err != nil && !errors.Is(err, database.ErrNotFound) {
		util.LogError("delete setting "+key, err)
		m.setStatusError(m.tr.T("status.error", err))
	}
}

// Locale returns the active interface locale.
func (m MainModel) Locale() string { return m.tr.Locale() }
