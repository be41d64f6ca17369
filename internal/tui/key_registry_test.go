package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingAppliesToView(t *testing.T) {
	global := KeyBinding{Key: "q"}
	if !global.AppliesToView(navigation.Present) {
		t.Fatalf("expected binding without views to apply everywhere")
	}
	scoped := KeyBinding{Key: "x", Views: []navigation.View{navigation.RubricView}}
	if scoped.AppliesToView(navigation.Jury) || !scoped.AppliesToView(navigation.RubricView) {
		t.Fatalf("expected scoped binding to apply to rubric only")
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var hit string
	r.Register(KeyBinding{Key: "a", Handler: func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		hit = "low"
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "a", Priority: 5, Handler: func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		hit = "high"
		return m, nil, true
	}})
	m := setupTestModel(t, Options{})
	if _, _, handled := r.Handle(m, "a"); !handled || hit != "high" {
		t.Fatalf("expected high priority handler, got %q", hit)
	}
	if _, _, handled := r.Handle(m, "z"); handled {
		t.Fatalf("expected unknown key to be unhandled")
	}
}

func TestRegistryFallsThroughUnhandled(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "a", Priority: 5, Handler: func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		return m, nil, false
	}})
	r.Register(KeyBinding{Key: "a", Handler: func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		m.statusMessage = "fallback"
		return m, nil, true
	}})
	next, _, handled := r.Handle(setupTestModel(t, Options{}), "a")
	if !handled || next.statusMessage != "fallback" {
		t.Fatalf("expected fallback handler to run")
	}
}

func TestHelpForView(t *testing.T) {
	r := defaultKeyRegistry()
	landing := r.HelpForView(navigation.Landing, nil)
	for _, want := range []string{"[1-5]help.views", "[ctrl+s]help.export", "[e]help.editor", "[g]help.goto"} {
		if !strings.Contains(landing, want) {
			t.Fatalf("expected landing help to contain %q, got %q", want, landing)
		}
	}
	rubricHelp := r.HelpForView(navigation.RubricView, nil)
	if !strings.Contains(rubricHelp, "[0-3]help.set") {
		t.Fatalf("expected digit help in rubric view, got %q", rubricHelp)
	}
	if strings.Contains(rubricHelp, "[1-5]") {
		t.Fatalf("expected shadowed view keys to be hidden in rubric help, got %q", rubricHelp)
	}
	if strings.Contains(rubricHelp, "[e]") {
		t.Fatalf("expected landing-only keys to be hidden, got %q", rubricHelp)
	}

	m := setupTestModel(t, Options{})
	translated := r.HelpForView(navigation.Landing, m.tr.T)
	if !strings.Contains(translated, "[ctrl+s]Exportar") {
		t.Fatalf("expected translated help, got %q", translated)
	}
}
