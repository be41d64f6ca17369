package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string // catalog key; empty hides the binding from help
	HelpKey     string // shown instead of Key when set
	Views       []navigation.View
	Priority    int
}

func (b KeyBinding) AppliesToView(view navigation.View) bool {
	if len(b.Views) == 0 {
		return true
	}
	for _, v := range b.Views {
		if v == view {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	view := m.state.CurrentView()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToView(view) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(view navigation.View) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(view) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForView lists the bindings reachable in view. A key shadowed by a
// higher priority binding is listed once, under the shadowing binding.
func (r *HandlerRegistry) HelpForView(view navigation.View, translate func(string, ...any) string) string {
	bindings := r.GetBindingsForView(view)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		if b.Description == "" {
			continue
		}
		label := b.Key
		if b.HelpKey != "" {
			label = b.HelpKey
		}
		desc := b.Description
		if translate != nil {
			desc = translate(desc)
		}
		parts = append(parts, "["+label+"]"+desc)
	}
	return strings.Join(parts, "|")
}
