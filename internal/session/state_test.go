package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	"github.com/akyairhashvil/vocesvisuales/internal/poster"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/google/uuid"
)

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New(rubric.ReferenceSchema())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s := newState(t)
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID(), err)
	}
	if s.StartedAt().IsZero() {
		t.Fatalf("expected start time")
	}
	if s.CurrentView() != navigation.Landing {
		t.Fatalf("initial view = %v", s.CurrentView())
	}
	if s.Total() != 36 || s.MaxTotal() != 36 {
		t.Fatalf("Total/Max = %d/%d", s.Total(), s.MaxTotal())
	}
	if other := newState(t); other.ID() == s.ID() {
		t.Fatalf("sessions share an id")
	}
}

func TestNewRejectsEmptySchema(t *testing.T) {
	if _, err := New(rubric.Schema{}); !errors.Is(err, rubric.ErrInvalidSchema) {
		t.Fatalf("err = %v, want ErrInvalidSchema", err)
	}
}

func TestMutationSurface(t *testing.T) {
	s := newState(t)
	if err := s.UpdatePosterField(poster.FieldTitle, "  Hola   mundo  "); err != nil {
		t.Fatalf("UpdatePosterField failed: %v", err)
	}
	if s.TitleWordCount() != 2 {
		t.Fatalf("TitleWordCount = %d", s.TitleWordCount())
	}
	if err := s.UpdatePosterField(poster.FieldBackground, "dark"); err != nil {
		t.Fatalf("background failed: %v", err)
	}
	if s.Background() != poster.BackgroundDark || s.Font() != poster.FontSans {
		t.Fatalf("styles = %s/%s", s.Background(), s.Font())
	}
	if err := s.SetScore("estructura", "titulo", 0); err != nil {
		t.Fatalf("SetScore failed: %v", err)
	}
	if err := s.SetScoreText("exposicion", "ritmo", "1"); err != nil {
		t.Fatalf("SetScoreText failed: %v", err)
	}
	if s.Total() != 31 {
		t.Fatalf("Total = %d, want 31", s.Total())
	}
	if got, _ := s.CategoryTotal("estructura"); got != 12 {
		t.Fatalf("CategoryTotal = %d, want 12", got)
	}
	if err := s.ChangeView(navigation.Jury); err != nil {
		t.Fatalf("ChangeView failed: %v", err)
	}
	if err := s.ChangeViewByName("present"); err != nil {
		t.Fatalf("ChangeViewByName failed: %v", err)
	}
	if s.CurrentView() != navigation.Present {
		t.Fatalf("view = %v", s.CurrentView())
	}
	if p, _ := s.Preview(poster.FieldTitle, 4); p != "  Ho..." {
		t.Fatalf("Preview = %q", p)
	}
}

func TestErrorsAreDistinguishable(t *testing.T) {
	s := newState(t)
	before := s.Snapshot()
	view := s.CurrentView()

	if err := s.SetScore("x", "y", 1); !errors.Is(err, rubric.ErrInvalidCriterion) {
		t.Fatalf("err = %v", err)
	}
	if err := s.SetScore("diseño", "fondo", 5); !errors.Is(err, rubric.ErrOutOfRange) {
		t.Fatalf("err = %v", err)
	}
	if err := s.UpdatePosterField("color", "red"); !errors.Is(err, poster.ErrInvalidField) {
		t.Fatalf("err = %v", err)
	}
	if err := s.ChangeView(navigation.View(7)); !errors.Is(err, navigation.ErrInvalidView) {
		t.Fatalf("err = %v", err)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) || view != s.CurrentView() {
		t.Fatalf("failed operations changed state")
	}
}

func TestResets(t *testing.T) {
	s := newState(t)
	_ = s.UpdatePosterField(poster.FieldTitle, "x")
	_ = s.SetScore("diseño", "fondo", 0)

	s.ResetRubric()
	if s.Total() != 36 {
		t.Fatalf("ResetRubric left total %d", s.Total())
	}
	if v, _ := s.PosterField(poster.FieldTitle); v != "x" {
		t.Fatalf("ResetRubric touched the poster")
	}

	_ = s.SetScore("diseño", "fondo", 0)
	s.ResetAll()
	if s.Total() != 36 {
		t.Fatalf("ResetAll left total %d", s.Total())
	}
	if v, _ := s.PosterField(poster.FieldTitle); v != "" {
		t.Fatalf("ResetAll left title %q", v)
	}

	_ = s.UpdatePosterField(poster.FieldTitle, "y")
	s.ClearPoster()
	if v, _ := s.PosterField(poster.FieldTitle); v != "" {
		t.Fatalf("ClearPoster left title %q", v)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newState(t)
	_ = s.UpdatePosterField(poster.FieldTitle, "Antes")
	snap := s.Snapshot()
	keep := snap.Clone()

	_ = s.UpdatePosterField(poster.FieldTitle, "Después")
	_ = s.SetScore("diseño", "fondo", 0)
	s.ResetAll()
	_ = s.SetScore("exposicion", "ritmo", 1)

	if !reflect.DeepEqual(snap, keep) {
		t.Fatalf("snapshot changed after mutation:\n got %+v\nwant %+v", snap, keep)
	}
}

func TestRestore(t *testing.T) {
	src := newState(t)
	_ = src.UpdatePosterField(poster.FieldResults, "R")
	_ = src.UpdatePosterField(poster.FieldFont, "mono")
	_ = src.SetScore("exposicion", "volumen", 2)
	snap := src.Snapshot()

	dst := newState(t)
	if err := dst.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !reflect.DeepEqual(dst.Snapshot(), snap) {
		t.Fatalf("restored state differs")
	}
}

func TestRestoreValidatesBothHalves(t *testing.T) {
	s := newState(t)
	_ = s.UpdatePosterField(poster.FieldTitle, "keep")
	before := s.Snapshot()

	bad := before.Clone()
	bad.Poster.Title = "new"
	bad.Rubric.Categories[0].Criteria[0].Score = 8
	if err := s.Restore(bad); !errors.Is(err, rubric.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatalf("poster half applied despite rubric failure")
	}

	bad = before.Clone()
	bad.Poster.Background = "purple"
	if err := s.Restore(bad); !errors.Is(err, poster.ErrInvalidField) {
		t.Fatalf("err = %v, want ErrInvalidField", err)
	}
}
