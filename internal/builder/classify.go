package builder

import (
	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/style"
)

// role refines the layer type with how the node is composed.
type role int

const (
	roleContainer role = iota // recurse into children
	roleLeaf                  // emit as-is, no recursion
	roleText                  // compose a text layer
	roleImage                 // rectangle with an image fill
	roleVectorAsset           // opaque svg payload
)

type classification struct {
	layerType ir.LayerType
	role      role
	imageURL  string
}

// imageTags map to a Rectangle carrying an Image fill.
var imageTags = map[string]bool{
	"img":     true,
	"picture": true,
	"video":   true,
	"canvas":  true,
	"embed":   true,
}

// textTags are elements whose purpose is carrying text.
var textTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "span": true, "a": true, "label": true,
	"li": true, "b": true, "i": true, "em": true, "strong": true,
	"small": true, "blockquote": true, "code": true, "figcaption": true,
}

// tableTags are table-structural containers.
var tableTags = map[string]bool{
	"table": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "td": true, "th": true, "caption": true,
}

// classify decides the node's layer type and composition role.
// First match wins, in the documented order.
func (b *Builder) classify(el *snapshot.Element, c style.Computed) classification {
	if imageTags[el.Tag] {
		url := el.Attr("src")
		if url == "" {
			url = el.Attr("poster")
		}
		return classification{layerType: ir.LayerRectangle, role: roleImage, imageURL: url}
	}

	if el.Tag == "svg" {
		if el.SVG != "" {
			return classification{layerType: ir.LayerFrame, role: roleVectorAsset}
		}
		// No raw payload delivered; fall back to walking the subtree.
		return classification{layerType: ir.LayerFrame, role: roleContainer}
	}

	switch el.Tag {
	case "circle", "ellipse":
		return classification{layerType: ir.LayerEllipse, role: roleLeaf}
	case "rect":
		return classification{layerType: ir.LayerRectangle, role: roleLeaf}
	case "path", "polygon", "polyline", "line":
		return classification{layerType: ir.LayerFrame, role: roleLeaf}
	case "g":
		return classification{layerType: ir.LayerGroup, role: roleContainer}
	}

	if tableTags[el.Tag] {
		return classification{layerType: ir.LayerFrame, role: roleContainer}
	}

	if b.isPillShape(el, c) {
		return classification{layerType: ir.LayerEllipse, role: roleContainer}
	}

	if b.isTextElement(el, c) {
		return classification{layerType: ir.LayerText, role: roleText}
	}

	return classification{layerType: ir.LayerFrame, role: roleContainer}
}

// isPillShape reports a near-50%-or-pill corner radius on a near-square
// box, which reads as a circle in the design model.
func (b *Builder) isPillShape(el *snapshot.Element, c style.Computed) bool {
	radius := style.ResolveCornerRadius(c).MaxValue()
	if radius <= 0 {
		return false
	}
	short, long := el.Box.W, el.Box.H
	if short > long {
		short, long = long, short
	}
	if short <= 0 || short/long < b.cfg.SquareAspectRatio {
		return false
	}
	return radius >= b.cfg.PillCornerRatio*short
}

// isTextElement applies the text-leaf rules: a text-tag or text-only leaf
// classifies as Text only with no background fill, no block-level element
// children, no side padding beyond the epsilon, and genuine text-node
// content (not solely pseudo-element-sourced).
func (b *Builder) isTextElement(el *snapshot.Element, c style.Computed) bool {
	if len(el.Texts) == 0 {
		return false
	}
	if !textTags[el.Tag] && len(el.Children) > 0 {
		return false
	}
	if len(style.ResolveFills(c)) > 0 {
		return false
	}
	for _, child := range el.Children {
		if child.Computed().DisplayMode().IsBlockLike() {
			return false
		}
	}
	if c.Px("padding-left", 0) > b.cfg.TextPaddingEpsilon ||
		c.Px("padding-right", 0) > b.cfg.TextPaddingEpsilon {
		return false
	}
	return true
}
