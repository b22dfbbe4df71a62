package layout

import "github.com/pagelift/pagelift/internal/ir"

// DetectCrossCentering upgrades a vertical auto-layout's cross alignment
// to CENTER when a strict majority of its non-full-width flow children sit
// horizontally centered within the container's content width.
//
// Children within FullWidthEpsilon of filling the content width (or above
// the FullWidthRatio share of it) carry no centering signal and are
// excluded from the vote.
func DetectCrossCentering(cfg Config, al *ir.AutoLayoutConfig, containerWidth float64, children []*ir.LayerNode) {
	if al == nil || al.Direction != ir.Vertical {
		return
	}
	contentWidth := containerWidth - al.PaddingLeft - al.PaddingRight
	if contentWidth <= 0 {
		return
	}

	voters, centered := 0, 0
	for _, child := range flowChildren(children) {
		if child.W >= contentWidth-cfg.FullWidthEpsilon {
			continue
		}
		if child.W >= cfg.FullWidthRatio*contentWidth {
			continue
		}
		voters++
		expectedX := al.PaddingLeft + (contentWidth-child.W)/2
		if absf(child.X-expectedX) <= cfg.CenterTolerance {
			centered++
		}
	}
	if voters > 0 && centered*2 > voters {
		al.CrossAlign = ir.AlignCenterAxis
	}
}
