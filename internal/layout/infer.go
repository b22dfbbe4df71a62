// Package layout infers auto-layout descriptions from declared style and
// measured geometry: per-container mode selection, gap/spacing inference
// with wrapper-frame synthesis, cross-axis centering detection, and
// fixed/sticky repositioning.
//
// The numeric thresholds here are empirically tuned policy constants, not
// invariants. They are carried in Config so they can be recalibrated per
// target rendering engine instead of being baked in.
package layout

import (
	"strings"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/style"
)

// Config carries the heuristic tuning values.
type Config struct {
	// GapTolerance is the spread (in layout units) within which measured
	// gaps count as uniform, and within which a CSS gap is trusted over
	// the measured average.
	GapTolerance float64 `yaml:"gap_tolerance"`

	// CenterTolerance is how far a child's x may sit from the exact
	// centered offset and still count as centered.
	CenterTolerance float64 `yaml:"center_tolerance"`

	// FullWidthEpsilon excludes children within this distance of filling
	// the container's content width from centering detection.
	FullWidthEpsilon float64 `yaml:"full_width_epsilon"`

	// FullWidthRatio excludes children occupying at least this share of
	// the content width from centering detection.
	FullWidthRatio float64 `yaml:"full_width_ratio"`

	// FixedTopTolerance decides whether a fixed/sticky child counts as
	// anchored to the top of its container.
	FixedTopTolerance float64 `yaml:"fixed_top_tolerance"`

	// ElevatedZIndex is the floor z-index assigned to repositioned
	// fixed/sticky children so they stack above flow content.
	ElevatedZIndex int `yaml:"elevated_z_index"`
}

// DefaultConfig returns the tuning calibrated against Chromium rendering.
func DefaultConfig() Config {
	return Config{
		GapTolerance:      4,
		CenterTolerance:   8,
		FullWidthEpsilon:  2,
		FullWidthRatio:    0.9,
		FixedTopTolerance: 8,
		ElevatedZIndex:    1000,
	}
}

// Source records which CSS layout system produced a container's
// auto-layout, because the gap post-pass trusts flex/grid CSS gaps but
// never block flow (which has no gap property).
type Source int

const (
	SourceNone Source = iota
	SourceFlexGrid
	SourceBlock
	SourceInline
)

// Infer selects the auto-layout mode for one container from its computed
// style. It runs once per container, before children recurse into gap
// inference. Absolutely and fixed positioned containers never receive
// auto-layout.
func Infer(c style.Computed) (*ir.AutoLayoutConfig, Source) {
	switch c.PositionMode() {
	case style.PositionAbsolute, style.PositionFixed:
		return nil, SourceNone
	}

	al := &ir.AutoLayoutConfig{
		Direction:     ir.Vertical,
		PrimaryAlign:  ir.AlignMin,
		CrossAlign:    ir.AlignMin,
		PaddingTop:    c.Px("padding-top", 0),
		PaddingRight:  c.Px("padding-right", 0),
		PaddingBottom: c.Px("padding-bottom", 0),
		PaddingLeft:   c.Px("padding-left", 0),
		PrimarySizing: ir.SizingFixed,
		CrossSizing:   ir.SizingFixed,
	}

	switch c.DisplayMode() {
	case style.DisplayGrid, style.DisplayInlineGrid:
		// Grid translates to auto-layout: multiple columns become a
		// wrapping horizontal stack, a single column a vertical one.
		if gridColumnCount(c) > 1 {
			al.Direction = ir.Horizontal
			al.Wrap = true
		}
		al.ItemSpacing = gapValue(c, al.Direction)
		return al, SourceFlexGrid

	case style.DisplayFlex, style.DisplayInlineFlex:
		if strings.HasPrefix(c.Get("flex-direction", "row"), "column") {
			al.Direction = ir.Vertical
		} else {
			al.Direction = ir.Horizontal
		}
		al.PrimaryAlign = mapJustify(c.Get("justify-content", ""))
		al.CrossAlign, al.CrossAxisStretch = mapAlignItems(c.Get("align-items", ""))
		al.Wrap = strings.HasPrefix(c.Get("flex-wrap", "nowrap"), "wrap")
		al.ItemSpacing = gapValue(c, al.Direction)
		return al, SourceFlexGrid

	case style.DisplayInline, style.DisplayInlineBlock:
		al.Direction = ir.Horizontal
		al.CrossAlign = ir.AlignCenterAxis
		return al, SourceInline

	default:
		// Block flow and block-like table/list roles stack vertically.
		// CSS block flow has no gap, so item spacing is left for the
		// measured post-pass.
		if c.Get("text-align", "") == "center" {
			al.CrossAlign = ir.AlignCenterAxis
		}
		return al, SourceBlock
	}
}

func mapJustify(v string) ir.Align {
	switch v {
	case "center":
		return ir.AlignCenterAxis
	case "end", "flex-end", "right":
		return ir.AlignMax
	case "space-between", "space-around", "space-evenly":
		return ir.AlignSpaceBetween
	default:
		return ir.AlignMin
	}
}

// mapAlignItems maps align-items analogously to justify-content; stretch
// (the CSS default, surfaced as "normal") maps to MIN with a stretch flag
// so children can still fill the cross axis.
func mapAlignItems(v string) (ir.Align, bool) {
	switch v {
	case "center":
		return ir.AlignCenterAxis, false
	case "end", "flex-end":
		return ir.AlignMax, false
	case "start", "flex-start", "baseline":
		return ir.AlignMin, false
	default: // stretch, normal, unset
		return ir.AlignMin, true
	}
}

// gapValue reads the CSS gap along the primary axis.
func gapValue(c style.Computed, dir ir.Direction) float64 {
	axis := "row-gap"
	if dir == ir.Horizontal {
		axis = "column-gap"
	}
	if g := c.Px(axis, -1); g >= 0 {
		return g
	}
	// The gap shorthand's computed value is "<row> <col>" or one value.
	fields := strings.Fields(c.Get("gap", ""))
	idx := 0
	if dir == ir.Horizontal && len(fields) > 1 {
		idx = 1
	}
	if idx < len(fields) {
		tmp := style.Computed{"g": fields[idx]}
		return tmp.Px("g", 0)
	}
	return 0
}

// gridColumnCount counts the tracks of the computed grid-template-columns
// value.
func gridColumnCount(c style.Computed) int {
	v := c.Get("grid-template-columns", "none")
	if v == "none" || v == "" {
		return 1
	}
	n := len(strings.Fields(v))
	if n < 1 {
		return 1
	}
	return n
}
