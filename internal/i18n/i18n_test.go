package i18n

import (
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "es"},
		{"es", "es"},
		{"es-MX", "es"},
		{"es_MX.UTF-8", "es"},
		{"en", "en"},
		{"en-GB", "en"},
		{"fr", "es"},
		{"not a locale!", "es"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.in).String(); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	es := New("es")
	if got := es.T("nav.editor"); got != "Crear cartel" {
		t.Fatalf("expected Crear cartel, got %q", got)
	}
	if got := es.T("landing.score", 31, 36); got != "Puntuación (estimada): 31 / 36" {
		t.Fatalf("unexpected score label %q", got)
	}
	en := New("en-US")
	if got := en.T("landing.untitled"); got != "(untitled)" {
		t.Fatalf("expected (untitled), got %q", got)
	}
	if got := en.T("missing.key"); got != "missing.key" {
		t.Fatalf("expected missing key to render as itself, got %q", got)
	}
	var nilTr *Translator
	if got := nilTr.T("nav.jury"); got != "nav.jury" {
		t.Fatalf("expected nil translator to echo key, got %q", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range messagesES {
		if _, ok := messagesEN[key]; !ok {
			t.Fatalf("english catalog missing %q", key)
		}
	}
	for key := range messagesEN {
		if _, ok := messagesES[key]; !ok {
			t.Fatalf("spanish catalog missing %q", key)
		}
	}
}

func TestNextCyclesLocales(t *testing.T) {
	tr := New("es")
	next := tr.Next()
	if next.Locale() != "en" {
		t.Fatalf("expected en after es, got %s", next.Locale())
	}
	if next.Next().Locale() != "es" {
		t.Fatalf("expected cycle back to es")
	}
	if len(Supported()) != 2 {
		t.Fatalf("expected two supported locales, got %v", Supported())
	}
}
