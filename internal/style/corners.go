package style

import "github.com/pagelift/pagelift/internal/ir"

// ResolveCornerRadius reads the four corner radii and collapses them to a
// single scalar only when all four are equal.
func ResolveCornerRadius(c Computed) ir.CornerRadius {
	corners := ir.Corners{
		TopLeft:     c.Px("border-top-left-radius", 0),
		TopRight:    c.Px("border-top-right-radius", 0),
		BottomRight: c.Px("border-bottom-right-radius", 0),
		BottomLeft:  c.Px("border-bottom-left-radius", 0),
	}
	if corners == (ir.Corners{}) {
		return ir.CornerRadius{}
	}
	if corners.TopLeft == corners.TopRight &&
		corners.TopRight == corners.BottomRight &&
		corners.BottomRight == corners.BottomLeft {
		return ir.UniformRadius(corners.TopLeft)
	}
	return ir.CornerRadius{Corners: &corners}
}
