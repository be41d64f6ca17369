package rubric

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
)

func newReference(t *testing.T) *Model {
	t.Helper()
	m, err := New(ReferenceSchema())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func forEachCriterion(s Schema, fn func(cat, crit string)) {
	for _, cat := range s.Categories() {
		for _, c := range cat.Criteria {
			fn(cat.Key, c.Key)
		}
	}
}

func TestReferenceSchemaShape(t *testing.T) {
	s := ReferenceSchema()
	if s.CriterionCount() != 12 {
		t.Fatalf("CriterionCount = %d, want 12", s.CriterionCount())
	}
	if s.MaxTotal() != 36 {
		t.Fatalf("MaxTotal = %d, want 36", s.MaxTotal())
	}
	if s.Default() != 3 {
		t.Fatalf("Default = %d, want 3", s.Default())
	}
	cats := s.Categories()
	if len(cats) != 3 || cats[0].Key != "diseño" || cats[2].Key != "exposicion" {
		t.Fatalf("unexpected categories %+v", cats)
	}
}

func TestNewStartsAtDefault(t *testing.T) {
	m := newReference(t)
	if m.Total() != 36 {
		t.Fatalf("Total = %d, want 36", m.Total())
	}
}

func TestSetScoreBounds(t *testing.T) {
	m := newReference(t)
	forEachCriterion(m.Schema(), func(cat, crit string) {
		for v := 0; v <= 3; v++ {
			if err := m.SetScore(cat, crit, v); err != nil {
				t.Fatalf("SetScore(%s,%s,%d) failed: %v", cat, crit, v, err)
			}
			got, err := m.Score(cat, crit)
			if err != nil || int(got) != v {
				t.Fatalf("Score(%s,%s) = %d, %v; want %d", cat, crit, got, err, v)
			}
		}
		for _, v := range []int{-1, 4, 100, -100} {
			before, _ := m.Score(cat, crit)
			err := m.SetScore(cat, crit, v)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("SetScore(%d) err = %v, want ErrOutOfRange", v, err)
			}
			after, _ := m.Score(cat, crit)
			if after != before {
				t.Fatalf("score changed after rejected write: %d -> %d", before, after)
			}
		}
	})
}

func TestSetScoreInvalidCriterion(t *testing.T) {
	m := newReference(t)
	cases := []struct{ cat, crit string }{
		{"diseño", "ritmo"},
		{"nope", "fondo"},
		{"", ""},
	}
	for _, tc := range cases {
		if err := m.SetScore(tc.cat, tc.crit, 1); !errors.Is(err, ErrInvalidCriterion) {
			t.Fatalf("SetScore(%q,%q) err = %v, want ErrInvalidCriterion", tc.cat, tc.crit, err)
		}
		if _, err := m.Score(tc.cat, tc.crit); !errors.Is(err, ErrInvalidCriterion) {
			t.Fatalf("Score(%q,%q) err = %v, want ErrInvalidCriterion", tc.cat, tc.crit, err)
		}
	}
	if m.Total() != 36 {
		t.Fatalf("rejected writes changed total to %d", m.Total())
	}
}

func TestInvalidCriterionBeforeRange(t *testing.T) {
	m := newReference(t)
	if err := m.SetScore("diseño", "nope", 9); !errors.Is(err, ErrInvalidCriterion) {
		t.Fatalf("err = %v, want ErrInvalidCriterion", err)
	}
}

func TestErrorSuggestsCloseKey(t *testing.T) {
	m := newReference(t)
	err := m.SetScore("diseño", "fondoo", 1)
	if err == nil || !strings.Contains(err.Error(), `"fondo"`) {
		t.Fatalf("expected suggestion in %v", err)
	}
	err = m.SetScore("estructur", "titulo", 1)
	if err == nil || !strings.Contains(err.Error(), `"estructura"`) {
		t.Fatalf("expected category suggestion in %v", err)
	}
}

func TestKeysAreNormalized(t *testing.T) {
	m := newReference(t)
	decomposed := "disen\u0303o"
	if err := m.SetScore(decomposed, "fondo", 1); err != nil {
		t.Fatalf("decomposed key rejected: %v", err)
	}
	if got, _ := m.Score("diseño", "fondo"); got != 1 {
		t.Fatalf("Score = %d, want 1", got)
	}
}

func TestSetScoreText(t *testing.T) {
	m := newReference(t)
	if err := m.SetScoreText("exposicion", "ritmo", " 2 "); err != nil {
		t.Fatalf("SetScoreText failed: %v", err)
	}
	if got, _ := m.Score("exposicion", "ritmo"); got != 2 {
		t.Fatalf("Score = %d, want 2", got)
	}
	if err := m.SetScoreText("exposicion", "ritmo", "dos"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if err := m.SetScoreText("exposicion", "ritmo", "7"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if err := m.SetScoreText("exposicion", "tempo", "1"); !errors.Is(err, ErrInvalidCriterion) {
		t.Fatalf("err = %v, want ErrInvalidCriterion", err)
	}
}

func TestTotalMatchesSum(t *testing.T) {
	m := newReference(t)
	values := []int{0, 1, 2, 3, 3, 2, 1, 0, 1, 1, 2, 3}
	i := 0
	forEachCriterion(m.Schema(), func(cat, crit string) {
		if err := m.SetScore(cat, crit, values[i]); err != nil {
			t.Fatalf("SetScore failed: %v", err)
		}
		i++
	})
	sum := 0
	forEachCriterion(m.Schema(), func(cat, crit string) {
		s, _ := m.Score(cat, crit)
		sum += int(s)
	})
	if m.Total() != sum || sum != 19 {
		t.Fatalf("Total = %d, sum = %d, want 19", m.Total(), sum)
	}
}

func TestTotalExtremes(t *testing.T) {
	m := newReference(t)
	forEachCriterion(m.Schema(), func(cat, crit string) { _ = m.SetScore(cat, crit, 0) })
	if m.Total() != 0 {
		t.Fatalf("Total = %d, want 0", m.Total())
	}
	forEachCriterion(m.Schema(), func(cat, crit string) { _ = m.SetScore(cat, crit, 3) })
	if m.Total() != 36 {
		t.Fatalf("Total = %d, want 36", m.Total())
	}
}

func TestCategoryTotal(t *testing.T) {
	m := newReference(t)
	_ = m.SetScore("diseño", "fondo", 0)
	got, err := m.CategoryTotal("diseño")
	if err != nil || got != 6 {
		t.Fatalf("CategoryTotal = %d, %v; want 6", got, err)
	}
	if _, err := m.CategoryTotal("otro"); !errors.Is(err, ErrInvalidCriterion) {
		t.Fatalf("err = %v, want ErrInvalidCriterion", err)
	}
}

func TestResetIdempotent(t *testing.T) {
	m := newReference(t)
	_ = m.SetScore("diseño", "fondo", 0)
	_ = m.SetScore("exposicion", "ritmo", 1)
	m.Reset()
	once := m.Snapshot()
	m.Reset()
	if !reflect.DeepEqual(once, m.Snapshot()) {
		t.Fatalf("second reset changed state")
	}
	if m.Total() != 36 {
		t.Fatalf("Total after reset = %d, want 36", m.Total())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	m := newReference(t)
	snap := m.Snapshot()
	_ = m.SetScore("diseño", "fondo", 0)
	if v, _ := snap.Lookup("diseño", "fondo"); v != 3 {
		t.Fatalf("snapshot observed later write: %d", v)
	}
	snap.Categories[0].Criteria[0].Score = 1
	if got, _ := m.Score("diseño", "fondo"); got != 0 {
		t.Fatalf("editing snapshot changed model: %d", got)
	}
}

func TestRestore(t *testing.T) {
	m := newReference(t)
	_ = m.SetScore("estructura", "titulo", 1)
	snap := m.Snapshot()

	other := newReference(t)
	if err := other.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if other.Total() != 34 {
		t.Fatalf("Total = %d, want 34", other.Total())
	}
}

func TestRestoreIsAtomic(t *testing.T) {
	m := newReference(t)
	bad := m.Snapshot()
	bad.Categories[0].Criteria[0].Score = 0
	bad.Categories[2].Criteria[3].Score = 9

	if err := m.Restore(bad); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if got, _ := m.Score("diseño", "fondo"); got != 3 {
		t.Fatalf("partial restore applied: %d", got)
	}

	partial := models.RubricSnapshot{Categories: []models.CategoryScores{
		{Key: "diseño", Criteria: []models.CriterionScore{{Key: "fondo", Score: 0}}},
	}}
	if err := m.Restore(partial); !errors.Is(err, ErrInvalidCriterion) {
		t.Fatalf("err = %v, want ErrInvalidCriterion", err)
	}

	dup := m.Snapshot()
	dup.Categories[0].Criteria[1].Key = "fondo"
	if err := m.Restore(dup); !errors.Is(err, ErrInvalidCriterion) {
		t.Fatalf("err = %v, want ErrInvalidCriterion for duplicate", err)
	}
	if m.Total() != 36 {
		t.Fatalf("failed restores changed total to %d", m.Total())
	}
}

func TestNewSchemaValidation(t *testing.T) {
	crit := []Criterion{{Key: "a"}}
	cases := []struct {
		name string
		def  Score
		cats []Category
	}{
		{"bad default", 4, []Category{{Key: "x", Criteria: crit}}},
		{"no categories", 3, nil},
		{"empty category key", 3, []Category{{Key: " ", Criteria: crit}}},
		{"no criteria", 3, []Category{{Key: "x"}}},
		{"duplicate category", 3, []Category{{Key: "x", Criteria: crit}, {Key: "x", Criteria: crit}}},
		{"duplicate criterion", 3, []Category{{Key: "x", Criteria: []Criterion{{Key: "a"}, {Key: "a"}}}}},
		{"empty criterion", 3, []Category{{Key: "x", Criteria: []Criterion{{Key: ""}}}}},
		{"control in category", 3, []Category{{Key: "a\x00b", Criteria: crit}}},
		{"control in criterion", 3, []Category{{Key: "x", Criteria: []Criterion{{Key: "b\tc"}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSchema(tc.def, tc.cats...); !errors.Is(err, ErrInvalidSchema) {
				t.Fatalf("err = %v, want ErrInvalidSchema", err)
			}
		})
	}
}

func TestIndexKeepsPairsApart(t *testing.T) {
	s := Schema{def: 3, categories: []Category{
		{Key: "a\x00b", Criteria: []Criterion{{Key: "c"}}},
		{Key: "a", Criteria: []Criterion{{Key: "b\x00c"}}},
	}}
	m, err := New(s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := m.SetScore("a\x00b", "c", 0); err != nil {
		t.Fatalf("SetScore failed: %v", err)
	}
	if got, _ := m.Score("a", "b\x00c"); got != 3 {
		t.Fatalf("a/b\\x00c = %d, want untouched 3", got)
	}
	if m.Total() != 3 {
		t.Fatalf("Total = %d, want 3", m.Total())
	}
}

func TestCustomSchema(t *testing.T) {
	s, err := NewSchema(0, Category{Key: "único", Criteria: []Criterion{{Key: "a"}, {Key: "b", Label: "Bee"}}})
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
	m, err := New(s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.Total() != 0 || m.MaxTotal() != 6 {
		t.Fatalf("Total/Max = %d/%d, want 0/6", m.Total(), m.MaxTotal())
	}
	if got := s.Categories()[0].Criteria[0].Label; got != "a" {
		t.Fatalf("label fallback = %q, want key", got)
	}
}

func TestNewRejectsZeroSchema(t *testing.T) {
	if _, err := New(Schema{}); !errors.Is(err, ErrInvalidSchema) {
		t.Fatalf("err = %v, want ErrInvalidSchema", err)
	}
}
