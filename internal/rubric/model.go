package rubric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
)

type position struct {
	cat, crit int
}

// Model holds the live scores for one schema. It is not safe for
// concurrent use; a session owns exactly one.
type Model struct {
	schema Schema
	scores [][]Score
	index  map[pairKey]position
}

// New builds a model with every criterion at the schema default.
func New(schema Schema) (*Model, error) {
	if schema.CriterionCount() == 0 {
		return nil, fmt.Errorf("%w: empty schema", ErrInvalidSchema)
	}
	m := &Model{schema: schema, index: make(map[pairKey]position, schema.CriterionCount())}
	for i, cat := range schema.categories {
		for j, c := range cat.Criteria {
			m.index[indexKey(cat.Key, c.Key)] = position{cat: i, crit: j}
		}
	}
	m.scores = m.defaults()
	return m, nil
}

// Schema returns the shape the model was built with.
func (m *Model) Schema() Schema { return m.schema }

// SetScore assigns value to a criterion. Values outside [0,3] are rejected,
// not clamped, and leave the model unchanged.
func (m *Model) SetScore(category, criterion string, value int) error {
	pos, err := m.locate(category, criterion)
	if err != nil {
		return err
	}
	s := Score(value)
	if !s.Valid() {
		return fmt.Errorf("%w: %d for %s/%s, want %d..%d", ErrOutOfRange, value, category, criterion, MinScore, MaxScore)
	}
	m.scores[pos.cat][pos.crit] = s
	return nil
}

// SetScoreText coerces raw to an integer before calling SetScore.
func (m *Model) SetScoreText(category, criterion, raw string) error {
	if _, err := m.locate(category, criterion); err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrOutOfRange, raw)
	}
	return m.SetScore(category, criterion, v)
}

// Score returns the current rating of a criterion.
func (m *Model) Score(category, criterion string) (Score, error) {
	pos, err := m.locate(category, criterion)
	if err != nil {
		return 0, err
	}
	return m.scores[pos.cat][pos.crit], nil
}

// Total sums every criterion. It is recomputed on each call.
func (m *Model) Total() int {
	sum := 0
	for _, row := range m.scores {
		for _, s := range row {
			sum += int(s)
		}
	}
	return sum
}

// CategoryTotal sums the criteria of one category.
func (m *Model) CategoryTotal(category string) (int, error) {
	key := normalizeKey(category)
	for i, cat := range m.schema.categories {
		if cat.Key != key {
			continue
		}
		sum := 0
		for _, s := range m.scores[i] {
			sum += int(s)
		}
		return sum, nil
	}
	return 0, fmt.Errorf("%w: unknown category %q%s", ErrInvalidCriterion, category, util.DidYouMean(key, m.schema.categoryKeys()))
}

// MaxTotal is the schema's upper bound for Total.
func (m *Model) MaxTotal() int { return m.schema.MaxTotal() }

// Reset puts every criterion back to the schema default in one step.
func (m *Model) Reset() {
	m.scores = m.defaults()
}

// Snapshot returns a detached, ordered copy of the scores.
func (m *Model) Snapshot() models.RubricSnapshot {
	out := models.RubricSnapshot{Categories: make([]models.CategoryScores, len(m.schema.categories))}
	for i, cat := range m.schema.categories {
		crits := make([]models.CriterionScore, len(cat.Criteria))
		for j, c := range cat.Criteria {
			crits[j] = models.CriterionScore{Key: c.Key, Score: int(m.scores[i][j])}
		}
		out.Categories[i] = models.CategoryScores{Key: cat.Key, Criteria: crits}
	}
	return out
}

// Restore loads scores from a snapshot taken against the same schema.
// The snapshot must cover every criterion exactly once; otherwise the
// model is left untouched.
func (m *Model) Restore(snap models.RubricSnapshot) error {
	next := m.defaults()
	seen := make(map[position]bool, m.schema.CriterionCount())
	for _, cat := range snap.Categories {
		for _, c := range cat.Criteria {
			pos, err := m.locate(cat.Key, c.Key)
			if err != nil {
				return err
			}
			if seen[pos] {
				return fmt.Errorf("%w: %s/%s appears twice", ErrInvalidCriterion, cat.Key, c.Key)
			}
			seen[pos] = true
			s := Score(c.Score)
			if !s.Valid() {
				return fmt.Errorf("%w: %d for %s/%s", ErrOutOfRange, c.Score, cat.Key, c.Key)
			}
			next[pos.cat][pos.crit] = s
		}
	}
	if len(seen) != m.schema.CriterionCount() {
		return fmt.Errorf("%w: snapshot covers %d of %d criteria", ErrInvalidCriterion, len(seen), m.schema.CriterionCount())
	}
	m.scores = next
	return nil
}

func (m *Model) defaults() [][]Score {
	out := make([][]Score, len(m.schema.categories))
	for i, cat := range m.schema.categories {
		row := make([]Score, len(cat.Criteria))
		for j := range row {
			row[j] = m.schema.def
		}
		out[i] = row
	}
	return out
}

func (m *Model) locate(category, criterion string) (position, error) {
	cat, crit := normalizeKey(category), normalizeKey(criterion)
	if pos, ok := m.index[indexKey(cat, crit)]; ok {
		return pos, nil
	}
	for _, c := range m.schema.categories {
		if c.Key != cat {
			continue
		}
		keys := make([]string, len(c.Criteria))
		for i, k := range c.Criteria {
			keys[i] = k.Key
		}
		return position{}, fmt.Errorf("%w: %s/%s%s", ErrInvalidCriterion, category, criterion, util.DidYouMean(crit, keys))
	}
	return position{}, fmt.Errorf("%w: unknown category %q%s", ErrInvalidCriterion, category, util.DidYouMean(cat, m.schema.categoryKeys()))
}

type pairKey struct {
	category, criterion string
}

func indexKey(category, criterion string) pairKey {
	return pairKey{category: category, criterion: criterion}
}
