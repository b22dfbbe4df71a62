package layout

import "github.com/pagelift/pagelift/internal/ir"

// RepositionFixed folds position:fixed and position:sticky children back
// into their parent's relative coordinate space. They are excluded from
// flow inference by the caller; here they get rebased to y=0 when anchored
// near the top, an elevated z-index that guarantees top-most stacking, and
// their occupied height is subtracted from the starting offset of sibling
// flow content so no visual gap remains where they used to sit in flow.
func RepositionFixed(cfg Config, fixed, flow []*ir.LayerNode) {
	for _, f := range fixed {
		f.AbsolutePositioned = true
		if f.ZIndex < cfg.ElevatedZIndex {
			f.ZIndex = cfg.ElevatedZIndex
		}
		if f.Y > cfg.FixedTopTolerance {
			continue
		}

		occupied := f.Y + f.H
		f.Y = 0
		for _, sib := range flow {
			if sib.Y >= occupied-cfg.FixedTopTolerance {
				sib.Y -= f.H
			}
		}
	}
}
