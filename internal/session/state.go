// Package session composes the poster, the rubric and the view selector
// into the single state a user session owns.
package session

import (
	"time"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/navigation"
	"github.com/akyairhashvil/vocesvisuales/internal/poster"
	"github.com/akyairhashvil/vocesvisuales/internal/rubric"
	"github.com/google/uuid"
)

// State is created at session start and dropped at session end. It must
// not be shared between sessions, and it is not safe for concurrent use.
type State struct {
	id        string
	startedAt time.Time
	poster    *poster.Document
	rubric    *rubric.Model
	views     *navigation.Controller
}

// New starts a session on the given rubric schema.
func New(schema rubric.Schema) (*State, error) {
	r, err := rubric.New(schema)
	if err != nil {
		return nil, err
	}
	return &State{
		id:        uuid.NewString(),
		startedAt: time.Now(),
		poster:    poster.New(),
		rubric:    r,
		views:     navigation.NewController(),
	}, nil
}

func (s *State) ID() string           { return s.id }
func (s *State) StartedAt() time.Time { return s.startedAt }

// Poster

func (s *State) UpdatePosterField(field poster.Field, value string) error {
	return s.poster.UpdateField(field, value)
}

func (s *State) PosterField(field poster.Field) (string, error) {
	return s.poster.Field(field)
}

func (s *State) TitleWordCount() int { return s.poster.TitleWordCount() }

func (s *State) Preview(field poster.Field, maxLength int) (string, error) {
	return s.poster.TruncatedPreview(field, maxLength)
}

func (s *State) Background() poster.Background { return s.poster.Background() }
func (s *State) Font() poster.Font             { return s.poster.Font() }

// ClearPoster empties the poster. It cannot fail.
func (s *State) ClearPoster() { s.poster.Clear() }

// Rubric

func (s *State) SetScore(category, criterion string, value int) error {
	return s.rubric.SetScore(category, criterion, value)
}

func (s *State) SetScoreText(category, criterion, raw string) error {
	return s.rubric.SetScoreText(category, criterion, raw)
}

func (s *State) Score(category, criterion string) (rubric.Score, error) {
	return s.rubric.Score(category, criterion)
}

func (s *State) Total() int    { return s.rubric.Total() }
func (s *State) MaxTotal() int { return s.rubric.MaxTotal() }

func (s *State) CategoryTotal(category string) (int, error) {
	return s.rubric.CategoryTotal(category)
}

func (s *State) Schema() rubric.Schema { return s.rubric.Schema() }

// ResetRubric restores every criterion to its default. It cannot fail.
func (s *State) ResetRubric() { s.rubric.Reset() }

// ResetAll clears the poster and resets the rubric. Both halves are
// infallible, so no caller can observe one without the other.
func (s *State) ResetAll() {
	s.poster.Clear()
	s.rubric.Reset()
}

// Views

func (s *State) ChangeView(target navigation.View) error {
	return s.views.ChangeView(target)
}

func (s *State) ChangeViewByName(name string) error {
	return s.views.ChangeViewByName(name)
}

func (s *State) CurrentView() navigation.View { return s.views.Current() }

// Snapshot copies the poster and rubric for export. Later mutations of
// the session never reach a returned snapshot.
func (s *State) Snapshot() models.Snapshot {
	return models.Snapshot{
		Poster: s.poster.Snapshot(),
		Rubric: s.rubric.Snapshot(),
	}
}

// Restore loads a previously exported snapshot. Both halves are validated
// on scratch copies before either is applied.
func (s *State) Restore(snap models.Snapshot) error {
	p := poster.New()
	if err := p.Restore(snap.Poster); err != nil {
		return err
	}
	r, err := rubric.New(s.rubric.Schema())
	if err != nil {
		return err
	}
	if err := r.Restore(snap.Rubric); err != nil {
		return err
	}
	s.poster, s.rubric = p, r
	return nil
}
