// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
)

// SnapshotBuilder provides fluent API for creating test snapshots.
type SnapshotBuilder struct {
	snap models.Snapshot
}

// NewSnapshot starts from an empty poster and the reference rubric at its
// default scores.
func NewSnapshot() *SnapshotBuilder {
	m, err := rubric.New(rubric.ReferenceSchema())
	if err != nil {
		panic(err)
	}
	return &SnapshotBuilder{
		snap: models.Snapshot{
			Poster: models.PosterSnapshot{Background: "light", Font: "sans"},
			Rubric: m.Snapshot(),
		},
	}
}

func (b *SnapshotBuilder) WithTitle(title string) *SnapshotBuilder {
	b.snap.Poster.Title = title
	return b
}

func (b *SnapshotBuilder) WithIntroduction(text string) *SnapshotBuilder {
	b.snap.Poster.Introduction = text
	return b
}

func (b *SnapshotBuilder) WithStyle(background, font string) *SnapshotBuilder {
	b.snap.Poster.Background = background
	b.snap.Poster.Font = font
	return b
}

// WithScore overwrites one criterion; unknown pairs are ignored.
func (b *SnapshotBuilder) WithScore(category, criterion string, score int) *SnapshotBuilder {
	for i, cat := range b.snap.Rubric.Categories {
		if cat.Key != category {
			continue
		}
		for j, c := range cat.Criteria {
			if c.Key == criterion {
				b.snap.Rubric.Categories[i].Criteria[j].Score = score
			}
		}
	}
	return b
}

// WithAllScores sets every criterion to score.
func (b *SnapshotBuilder) WithAllScores(score int) *SnapshotBuilder {
	for i, cat := range b.snap.Rubric.Categories {
		for j := range cat.Criteria {
			b.snap.Rubric.Categories[i].Criteria[j].Score = score
		}
	}
	return b
}

func (b *SnapshotBuilder) Build() models.Snapshot {
	return b.snap.Clone()
}
