package tui

import (
	"context"
	"testing"

	"github.com/akyairhashvil/vocesvisuales/internal/database"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/akyairhashvil/vocesvisuales/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

type memoryStore struct {
	values    map[string]string
	snapshots map[string]int64
	err       error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, snapshots: map[string]int64{}}
}

func (s *memoryStore) GetSetting(ctx context.Context, key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memoryStore) SetSetting(ctx context.Context, key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = value
	return nil
}

func (s *memoryStore) DeleteSetting(ctx context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.values[key]; !ok {
		return database.ErrNotFound
	}
	delete(s.values, key)
	return nil
}

func (s *memoryStore) DeleteSessionSnapshots(ctx context.Context, sessionID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := s.snapshots[sessionID]
	delete(s.snapshots, sessionID)
	return n, nil
}

func setupTestModel(t *testing.T, opts Options) MainModel {
	t.Helper()
	state, err := session.New(rubric.ReferenceSchema())
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	m := NewMainModel(context.Background(), state, opts)
	m.width = 120
	m.height = 40
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func sendKeys(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(MainModel)
	}
	return m, cmd
}

func typeText(t *testing.T, m MainModel, text string) MainModel {
	t.Helper()
	for _, r := range text {
		m, _ = sendKeys(t, m, string(r))
	}
	return m
}
