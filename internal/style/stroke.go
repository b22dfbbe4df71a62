package style

import (
	"github.com/pagelift/pagelift/internal/css"
	"github.com/pagelift/pagelift/internal/ir"
)

var borderSides = [4]string{"top", "right", "bottom", "left"}

// ResolveStroke examines all four border-side widths, not just the
// shorthand, so asymmetric borders are detected. The stroke weight is the
// maximum side width; per-side weights are populated only when the sides
// differ. A currentColor border resolves against the element's own text
// color.
func ResolveStroke(c Computed) *ir.StrokeConfig {
	var w ir.SideWeights
	w.Top = c.Px("border-top-width", 0)
	w.Right = c.Px("border-right-width", 0)
	w.Bottom = c.Px("border-bottom-width", 0)
	w.Left = c.Px("border-left-width", 0)

	weight := w.Max()
	if weight <= 0 {
		return nil
	}

	// Color comes from whichever side actually has a width.
	colorText := ""
	borderStyle := "solid"
	widths := [4]float64{w.Top, w.Right, w.Bottom, w.Left}
	for i, side := range borderSides {
		if widths[i] <= 0 {
			continue
		}
		if colorText == "" {
			colorText = c.Get("border-"+side+"-color", c.Get("border-color", ""))
		}
		if s := c.Get("border-"+side+"-style", c.Get("border-style", "")); s != "" {
			borderStyle = s
		}
	}
	if borderStyle == "none" || borderStyle == "hidden" {
		return nil
	}

	textColor := css.ParseColor(c.Get("color", ""), nil)
	color := css.ParseColor(colorText, &textColor)

	stroke := &ir.StrokeConfig{
		Color:    color,
		Weight:   weight,
		Position: ir.StrokeInside,
	}
	switch borderStyle {
	case "dashed":
		stroke.DashPattern = []float64{2 * weight, weight}
	case "dotted":
		stroke.DashPattern = []float64{weight, weight}
	}
	if !w.Uniform() {
		stroke.IndividualWeights = &w
	}
	return stroke
}
