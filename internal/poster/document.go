// Package poster holds the authored poster: five free-text sections and
// two style selections.
package poster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/models"
	"github.com/akyairhashvil/vocesvisuales/internal/util"
)

var ErrInvalidField = errors.New("invalid poster field")

// Field names a poster field.
type Field string

const (
	FieldTitle        Field = "title"
	FieldIntroduction Field = "introduction"
	FieldMethodology  Field = "methodology"
	FieldResults      Field = "results"
	FieldReferences   Field = "references"
	FieldBackground   Field = "background"
	FieldFont         Field = "font"
)

// TextFields lists the free-text sections in editing order.
var TextFields = []Field{FieldTitle, FieldIntroduction, FieldMethodology, FieldResults, FieldReferences}

var fieldAliases = map[string]Field{
	"bgcolor": FieldBackground,
}

func allFields() []string {
	out := make([]string, 0, len(TextFields)+2)
	for _, f := range TextFields {
		out = append(out, string(f))
	}
	return append(out, string(FieldBackground), string(FieldFont))
}

// ParseField resolves a field name, case-insensitively.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	for _, f := range allFields() {
		if key == f {
			return Field(f), nil
		}
	}
	return "", fmt.Errorf("%w: %q%s", ErrInvalidField, name, util.DidYouMean(key, allFields()))
}

// Background is the poster background variant.
type Background string

const (
	BackgroundLight Background = "light"
	BackgroundDark  Background = "dark"
)

// Backgrounds lists the accepted variants.
var Backgrounds = []Background{BackgroundLight, BackgroundDark}

// Font is the poster font family variant.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
)

// Fonts lists the accepted variants.
var Fonts = []Font{FontSans, FontSerif, FontMono}

func parseBackground(v string) (Background, error) {
	for _, b := range Backgrounds {
		if string(b) == v {
			return b, nil
		}
	}
	names := make([]string, len(Backgrounds))
	for i, b := range Backgrounds {
		names[i] = string(b)
	}
	return "", fmt.Errorf("%w: unknown background %q%s", ErrInvalidField, v, util.DidYouMean(v, names))
}

func parseFont(v string) (Font, error) {
	for _, f := range Fonts {
		if string(f) == v {
			return f, nil
		}
	}
	names := make([]string, len(Fonts))
	for i, f := range Fonts {
		names[i] = string(f)
	}
	return "", fmt.Errorf("%w: unknown font %q%s", ErrInvalidField, v, util.DidYouMean(v, names))
}

// Document is the mutable poster. Fields are independent of each other.
type Document struct {
	title        string
	introduction string
	methodology  string
	results      string
	references   string
	background   Background
	font         Font
}

// New returns an empty poster with a light background and sans font.
func New() *Document {
	return &Document{background: BackgroundLight, font: FontSans}
}

// UpdateField sets one field. Style fields only take their listed variants.
func (d *Document) UpdateField(field Field, value string) error {
	switch field {
	case FieldTitle:
		d.title = value
	case FieldIntroduction:
		d.introduction = value
	case FieldMethodology:
		d.methodology = value
	case FieldResults:
		d.results = value
	case FieldReferences:
		d.references = value
	case FieldBackground:
		b, err := parseBackground(value)
		if err != nil {
			return err
		}
		d.background = b
	case FieldFont:
		f, err := parseFont(value)
		if err != nil {
			return err
		}
		d.font = f
	default:
		// aliases and mixed case resolve to a canonical field
		f, err := ParseField(string(field))
		if err != nil {
			return err
		}
		return d.UpdateField(f, value)
	}
	return nil
}

// Field reads one field's current value.
func (d *Document) Field(field Field) (string, error) {
	switch field {
	case FieldTitle:
		return d.title, nil
	case FieldIntroduction:
		return d.introduction, nil
	case FieldMethodology:
		return d.methodology, nil
	case FieldResults:
		return d.results, nil
	case FieldReferences:
		return d.references, nil
	case FieldBackground:
		return string(d.background), nil
	case FieldFont:
		return string(d.font), nil
	}
	f, err := ParseField(string(field))
	if err != nil {
		return "", err
	}
	return d.Field(f)
}

func (d *Document) Title() string          { return d.title }
func (d *Document) Background() Background { return d.background }
func (d *Document) Font() Font             { return d.font }

// TitleWordCount counts whitespace-separated words in the title.
func (d *Document) TitleWordCount() int {
	return WordCount(d.title)
}

// WordCount counts non-empty tokens after splitting on whitespace runs.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// TruncatedPreview returns a field cut to maxLength characters, with "..."
// appended only when something was cut.
func (d *Document) TruncatedPreview(field Field, maxLength int) (string, error) {
	v, err := d.Field(field)
	if err != nil {
		return "", err
	}
	return Truncate(v, maxLength), nil
}

// Truncate cuts s to maxLength runes and marks the cut with "...".
func Truncate(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + "..."
}

// Clear empties every text field and restores the default styles.
func (d *Document) Clear() {
	*d = *New()
}

// Snapshot returns a detached copy of the document.
func (d *Document) Snapshot() models.PosterSnapshot {
	return models.PosterSnapshot{
		Title:        d.title,
		Introduction: d.introduction,
		Methodology:  d.methodology,
		Results:      d.results,
		References:   d.references,
		Background:   string(d.background),
		Font:         string(d.font),
	}
}

// Restore replaces the document with a snapshot after validating its
// style variants. Empty style values fall back to the defaults.
func (d *Document) Restore(snap models.PosterSnapshot) error {
	next := New()
	if snap.Background != "" {
		b, err := parseBackground(snap.Background)
		if err != nil {
			return err
		}
		next.background = b
	}
	if snap.Font != "" {
		f, err := parseFont(snap.Font)
		if err != nil {
			return err
		}
		next.font = f
	}
	next.title = snap.Title
	next.introduction = snap.Introduction
	next.methodology = snap.Methodology
	next.results = snap.Results
	next.references = snap.References
	*d = *next
	return nil
}
