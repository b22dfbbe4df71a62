// Package style resolves per-element computed-style snapshots into the
// structured visual attributes of the layer model: fills, stroke, effects,
// corner radius, and text style.
//
// The input is a flat property-to-string map of already-resolved computed
// CSS values handed in by the style/geometry provider. No cascade happens
// here.
package style

import (
	"strconv"
	"strings"
)

// Computed is one element's computed-style map.
type Computed map[string]string

// Get retrieves a property, falling back if absent or empty.
func (c Computed) Get(prop, fallback string) string {
	if v, ok := c[prop]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Px parses a pixel-valued property ("12px" or bare "12"), falling back on
// anything unparsable. Computed styles deliver absolute lengths in px.
func (c Computed) Px(prop string, fallback float64) float64 {
	v := c.Get(prop, "")
	if v == "" {
		return fallback
	}
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Float parses a unitless numeric property.
func (c Computed) Float(prop string, fallback float64) float64 {
	v := c.Get(prop, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Display is the resolved display mode of an element.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
	DisplayInlineGrid
	DisplayTable
	DisplayTableRow
	DisplayTableCell
	DisplayListItem
	DisplayNone
)

// DisplayMode maps the display property to the closed Display enum.
func (c Computed) DisplayMode() Display {
	switch c.Get("display", "block") {
	case "none":
		return DisplayNone
	case "inline":
		return DisplayInline
	case "inline-block":
		return DisplayInlineBlock
	case "flex":
		return DisplayFlex
	case "inline-flex":
		return DisplayInlineFlex
	case "grid":
		return DisplayGrid
	case "inline-grid":
		return DisplayInlineGrid
	case "table":
		return DisplayTable
	case "table-row", "table-row-group", "table-header-group", "table-footer-group":
		return DisplayTableRow
	case "table-cell":
		return DisplayTableCell
	case "list-item":
		return DisplayListItem
	default:
		return DisplayBlock
	}
}

// IsBlockLike reports display modes that stack children vertically the way
// block flow does.
func (d Display) IsBlockLike() bool {
	switch d {
	case DisplayBlock, DisplayTable, DisplayTableRow, DisplayTableCell, DisplayListItem:
		return true
	}
	return false
}

// Position is the resolved position property.
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

// PositionMode maps the position property to the closed Position enum.
func (c Computed) PositionMode() Position {
	switch c.Get("position", "static") {
	case "relative":
		return PositionRelative
	case "absolute":
		return PositionAbsolute
	case "fixed":
		return PositionFixed
	case "sticky":
		return PositionSticky
	default:
		return PositionStatic
	}
}

// InFlow reports whether the element participates in normal flow layout.
func (p Position) InFlow() bool {
	return p != PositionAbsolute && p != PositionFixed
}

// Opacity returns resolved opacity clamped to [0,1].
func (c Computed) Opacity() float64 {
	o := c.Float("opacity", 1)
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// IsVisible reports whether the element is visually rendered at all:
// display none, visibility hidden/collapse, and zero opacity all hide it.
func (c Computed) IsVisible() bool {
	if c.DisplayMode() == DisplayNone {
		return false
	}
	switch c.Get("visibility", "visible") {
	case "hidden", "collapse":
		return false
	}
	return c.Opacity() > 0
}

// ClipsContent reports whether overflow clips children.
func (c Computed) ClipsContent() bool {
	switch c.Get("overflow", "visible") {
	case "hidden", "clip", "scroll", "auto":
		return true
	}
	return false
}

// ZIndex resolves the z-index property; non-positioned elements and "auto"
// resolve to 0.
func (c Computed) ZIndex() int {
	v := c.Get("z-index", "auto")
	if v == "auto" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
