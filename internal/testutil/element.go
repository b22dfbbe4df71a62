// Package testutil holds shared helpers for constructing snapshot trees
// concisely in tests.
package testutil

import (
	"time"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
)

// Elem builds a snapshot element with the given geometry and style.
func Elem(tag string, x, y, w, h float64, css map[string]string, children ...*snapshot.Element) *snapshot.Element {
	if css == nil {
		css = map[string]string{}
	}
	return &snapshot.Element{
		Tag:      tag,
		Style:    css,
		Box:      &snapshot.Box{X: x, Y: y, W: w, H: h},
		Children: children,
	}
}

// WithText attaches direct text runs to an element.
func WithText(el *snapshot.Element, texts ...string) *snapshot.Element {
	for _, t := range texts {
		el.Texts = append(el.Texts, snapshot.TextRun{Text: t, Pos: len(el.Children)})
	}
	return el
}

// Snap wraps a root element in a deterministic snapshot envelope.
func Snap(root *snapshot.Element) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Source:     "test://fixture",
		CapturedAt: time.Unix(0, 0).UTC(),
		Viewport:   ir.Viewport{Width: 1280, Height: 800},
		Root:       root,
	}
}
