// Package rubric implements the poster scoring rubric: a fixed schema of
// categories and criteria, each rated with a bounded integer score.
package rubric

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Score is a single criterion rating.
type Score int

const (
	MinScore Score = 0
	MaxScore Score = 3
)

// Valid reports whether s lies in [MinScore, MaxScore].
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Criterion names one evaluation dimension.
type Criterion struct {
	Key   string
	Label string
}

// Category groups criteria under a heading.
type Category struct {
	Key      string
	Label    string
	Criteria []Criterion
}

// Schema is the immutable shape of a rubric.
type Schema struct {
	categories []Category
	def        Score
}

var ErrInvalidSchema = errors.New("invalid rubric schema")

// NewSchema validates and freezes a rubric shape.
func NewSchema(def Score, categories ...Category) (Schema, error) {
	if !def.Valid() {
		return Schema{}, fmt.Errorf("%w: default score %d outside [%d,%d]", ErrInvalidSchema, def, MinScore, MaxScore)
	}
	if len(categories) == 0 {
		return Schema{}, fmt.Errorf("%w: no categories", ErrInvalidSchema)
	}
	seenCat := make(map[string]bool, len(categories))
	frozen := make([]Category, 0, len(categories))
	for _, cat := range categories {
		key := normalizeKey(cat.Key)
		if key == "" {
			return Schema{}, fmt.Errorf("%w: empty category key", ErrInvalidSchema)
		}
		if hasControl(key) {
			return Schema{}, fmt.Errorf("%w: control character in category %q", ErrInvalidSchema, key)
		}
		if seenCat[key] {
			return Schema{}, fmt.Errorf("%w: duplicate category %q", ErrInvalidSchema, key)
		}
		seenCat[key] = true
		if len(cat.Criteria) == 0 {
			return Schema{}, fmt.Errorf("%w: category %q has no criteria", ErrInvalidSchema, key)
		}
		seenCrit := make(map[string]bool, len(cat.Criteria))
		crits := make([]Criterion, 0, len(cat.Criteria))
		for _, c := range cat.Criteria {
			ck := normalizeKey(c.Key)
			if ck == "" {
				return Schema{}, fmt.Errorf("%w: empty criterion key in %q", ErrInvalidSchema, key)
			}
			if hasControl(ck) {
				return Schema{}, fmt.Errorf("%w: control character in criterion %q", ErrInvalidSchema, ck)
			}
			if seenCrit[ck] {
				return Schema{}, fmt.Errorf("%w: duplicate criterion %q in %q", ErrInvalidSchema, ck, key)
			}
			seenCrit[ck] = true
			crits = append(crits, Criterion{Key: ck, Label: labelOr(c.Label, ck)})
		}
		frozen = append(frozen, Category{Key: key, Label: labelOr(cat.Label, key), Criteria: crits})
	}
	return Schema{categories: frozen, def: def}, nil
}

// ReferenceSchema is the contest rubric: 12 criteria, default 3, max 36.
func ReferenceSchema() Schema {
	s, err := NewSchema(3,
		Category{Key: "diseño", Label: "I. Diseño y formato", Criteria: []Criterion{
			{Key: "fondo", Label: "Fondo y contraste"},
			{Key: "tipografia", Label: "Tipografía y claridad"},
			{Key: "sintesis", Label: "Síntesis y redacción"},
		}},
		Category{Key: "estructura", Label: "II. Estructura y contenido", Criteria: []Criterion{
			{Key: "titulo", Label: "Título"},
			{Key: "introduccion", Label: "Introducción"},
			{Key: "metodologia", Label: "Metodología"},
			{Key: "resultados", Label: "Resultados"},
			{Key: "referencias", Label: "Referencias"},
		}},
		Category{Key: "exposicion", Label: "III. Exposición oral", Criteria: []Criterion{
			{Key: "dominio", Label: "Dominio del tema"},
			{Key: "volumen", Label: "Volumen y tono"},
			{Key: "diccion", Label: "Claridad y dicción"},
			{Key: "ritmo", Label: "Ritmo y pausas"},
		}},
	)
	if err != nil {
		panic(err)
	}
	return s
}

// Categories returns a copy of the schema's categories in order.
func (s Schema) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, cat := range s.categories {
		out[i] = Category{Key: cat.Key, Label: cat.Label, Criteria: append([]Criterion(nil), cat.Criteria...)}
	}
	return out
}

// Default is the score every criterion takes on reset.
func (s Schema) Default() Score { return s.def }

// CriterionCount is N, the number of criteria across all categories.
func (s Schema) CriterionCount() int {
	n := 0
	for _, cat := range s.categories {
		n += len(cat.Criteria)
	}
	return n
}

// MaxTotal is the highest reachable total, MaxScore * N.
func (s Schema) MaxTotal() int {
	return int(MaxScore) * s.CriterionCount()
}

func (s Schema) categoryKeys() []string {
	keys := make([]string, len(s.categories))
	for i, cat := range s.categories {
		keys[i] = cat.Key
	}
	return keys
}

func normalizeKey(key string) string {
	return norm.NFC.String(strings.TrimSpace(key))
}

func hasControl(key string) bool {
	return strings.IndexFunc(key, unicode.IsControl) >= 0
}

func labelOr(label, fallback string) string {
	if strings.TrimSpace(label) == "" {
		return fallback
	}
	return label
}
