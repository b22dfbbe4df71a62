package layout

import "github.com/pagelift/pagelift/internal/ir"

// InferGaps is the post-pass that derives item spacing from the measured
// positions of a container's flow children, run after the children are
// built. It may synthesize wrapper frames, so it returns the (possibly
// rewritten) children slice.
//
// Flex and grid containers have a real CSS gap: it is kept unless the
// measured average disagrees with it by more than the tolerance. Block
// flow has no gap property, so spacing comes entirely from measurement:
// uniform gaps become the average; uneven gaps set spacing to the minimum
// and wrap each child whose leading gap exceeds the minimum in a
// transparent frame that absorbs the excess as one-sided padding. That
// lets a model with a single spacing value still reproduce visually
// uneven spacing.
func InferGaps(cfg Config, al *ir.AutoLayoutConfig, source Source, children []*ir.LayerNode) []*ir.LayerNode {
	if al == nil || source == SourceNone {
		return children
	}
	flow := flowChildren(children)
	if len(flow) < 2 {
		return children
	}

	gaps := make([]float64, len(flow)-1)
	for i := 0; i < len(flow)-1; i++ {
		gaps[i] = leadingEdge(flow[i+1], al.Direction) - trailingEdge(flow[i], al.Direction)
	}

	switch source {
	case SourceFlexGrid:
		avg := mean(gaps)
		if absf(avg-al.ItemSpacing) > cfg.GapTolerance {
			al.ItemSpacing = maxf(avg, 0)
		}
		return children

	default:
		lo, hi := minf(gaps), maxf2(gaps)
		if hi-lo <= cfg.GapTolerance {
			al.ItemSpacing = maxf(mean(gaps), 0)
			return children
		}
		al.ItemSpacing = maxf(lo, 0)
		for i, gap := range gaps {
			excess := gap - lo
			if excess <= cfg.GapTolerance {
				continue
			}
			children = wrapWithSpacer(children, flow[i+1], al.Direction, excess)
		}
		return children
	}
}

// wrapWithSpacer replaces child in children with a transparent frame that
// absorbs excess as leading padding along the primary axis.
func wrapWithSpacer(children []*ir.LayerNode, child *ir.LayerNode, dir ir.Direction, excess float64) []*ir.LayerNode {
	wrapper := &ir.LayerNode{
		Type:     ir.LayerFrame,
		Name:     "spacer",
		X:        child.X,
		Y:        child.Y,
		W:        child.W,
		H:        child.H,
		Opacity:  1,
		Visible:  true,
		ZIndex:   child.ZIndex,
		Children: []*ir.LayerNode{child},
	}
	wrapAL := &ir.AutoLayoutConfig{
		Direction:     dir,
		PrimaryAlign:  ir.AlignMin,
		CrossAlign:    ir.AlignMin,
		PrimarySizing: ir.SizingFixed,
		CrossSizing:   ir.SizingFixed,
	}
	if dir == ir.Vertical {
		wrapper.Y = child.Y - excess
		wrapper.H = child.H + excess
		wrapAL.PaddingTop = excess
		child.X, child.Y = 0, excess
	} else {
		wrapper.X = child.X - excess
		wrapper.W = child.W + excess
		wrapAL.PaddingLeft = excess
		child.X, child.Y = excess, 0
	}
	wrapper.AutoLayout = wrapAL

	for i, c := range children {
		if c == child {
			children[i] = wrapper
			break
		}
	}
	return children
}

func flowChildren(children []*ir.LayerNode) []*ir.LayerNode {
	var flow []*ir.LayerNode
	for _, c := range children {
		if !c.AbsolutePositioned {
			flow = append(flow, c)
		}
	}
	return flow
}

func leadingEdge(n *ir.LayerNode, dir ir.Direction) float64 {
	if dir == ir.Horizontal {
		return n.X
	}
	return n.Y
}

func trailingEdge(n *ir.LayerNode, dir ir.Direction) float64 {
	if dir == ir.Horizontal {
		return n.X + n.W
	}
	return n.Y + n.H
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func minf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxf2(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
