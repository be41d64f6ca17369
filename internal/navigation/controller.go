// Package navigation selects which editing or evaluation surface is active.
// Every view can be reached from every other view; there is no ordering.
package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/vocesvisuales/internal/util"
)

var ErrInvalidView = errors.New("invalid view")

// View identifies a surface.
type View int

const (
	Landing View = iota
	Editor
	RubricView
	Jury
	Present
)

var viewNames = [...]string{
	Landing:    "landing",
	Editor:     "editor",
	RubricView: "rubric",
	Jury:       "jury",
	Present:    "present",
}

// Views lists every view in navigation order.
func Views() []View {
	return []View{Landing, Editor, RubricView, Jury, Present}
}

// Valid reports whether v is one of the five views.
func (v View) Valid() bool {
	return v >= Landing && v <= Present
}

func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("view(%d)", int(v))
	}
	return viewNames[v]
}

// ParseView resolves a view by name, case-insensitively.
func ParseView(name string) (View, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range viewNames {
		if n == key {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q%s", ErrInvalidView, name, util.DidYouMean(key, viewNames[:]))
}

// Controller tracks the current view. Its zero value starts on Landing.
type Controller struct {
	current View
}

func NewController() *Controller {
	return &Controller{current: Landing}
}

// ChangeView moves to target. Only unknown views are rejected.
func (c *Controller) ChangeView(target View) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidView, int(target))
	}
	c.current = target
	return nil
}

// ChangeViewByName resolves name and moves to it.
func (c *Controller) ChangeViewByName(name string) error {
	v, err := ParseView(name)
	if err != nil {
		return err
	}
	return c.ChangeView(v)
}

// Current returns the active view.
func (c *Controller) Current() View {
	return c.current
}
