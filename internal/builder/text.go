package builder

import (
	"strings"
	"unicode/utf8"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/style"
)

// buildTextLayer composes a Text-classified element: the concatenated
// content of its direct text nodes and inline children, with sparse
// per-range style overrides where an inline child's resolved style
// differs from the base.
func (b *Builder) buildTextLayer(node *ir.LayerNode, el *snapshot.Element, c style.Computed) {
	base := style.ResolveTextStyle(c)
	chars, segments := composeRichText(el, base)

	node.Characters = chars
	node.TextStyle = &base
	node.TextSegments = segments
	node.Effects = style.ResolveEffects(c, true)
}

// composeRichText interleaves direct text runs and inline element children
// in document order. Each inline child whose resolved style differs from
// the base contributes a TextSegment covering its character range; fields
// equal to the base are never repeated.
func composeRichText(el *snapshot.Element, base ir.TextStyle) (string, []ir.TextSegment) {
	var sb strings.Builder
	var segments []ir.TextSegment

	appendPiece := func(text string) (start, end int) {
		if text == "" {
			return 0, 0
		}
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte(' ')
		}
		start = utf8.RuneCountInString(sb.String())
		sb.WriteString(text)
		return start, start + utf8.RuneCountInString(text)
	}

	for slot := 0; slot <= len(el.Children); slot++ {
		for _, run := range el.Texts {
			if run.Pos == slot {
				appendPiece(run.Text)
			}
		}
		if slot == len(el.Children) {
			break
		}
		child := el.Children[slot]
		if child.Tag == "br" {
			sb.WriteByte('\n')
			continue
		}
		childText := flattenText(child)
		if childText == "" {
			continue
		}
		start, end := appendPiece(childText)
		childStyle := style.ResolveTextStyle(child.Computed())
		if seg := diffSegment(base, childStyle, start, end); seg != nil {
			segments = append(segments, *seg)
		}
	}
	return sb.String(), segments
}

// flattenText concatenates the subtree's text content in document order.
func flattenText(el *snapshot.Element) string {
	var parts []string
	for slot := 0; slot <= len(el.Children); slot++ {
		for _, run := range el.Texts {
			if run.Pos == slot && run.Text != "" {
				parts = append(parts, run.Text)
			}
		}
		if slot == len(el.Children) {
			break
		}
		if t := flattenText(el.Children[slot]); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// diffSegment records only the fields where the child style departs from
// the base, or nil when nothing differs.
func diffSegment(base, child ir.TextStyle, start, end int) *ir.TextSegment {
	seg := ir.TextSegment{Start: start, End: end}
	if child.Color != base.Color {
		c := child.Color
		seg.Color = &c
	}
	if child.FontWeight != base.FontWeight {
		w := child.FontWeight
		seg.FontWeight = &w
	}
	if child.Italic != base.Italic {
		it := child.Italic
		seg.Italic = &it
	}
	if child.FontSize != base.FontSize {
		s := child.FontSize
		seg.FontSize = &s
	}
	if child.Decoration != base.Decoration {
		d := child.Decoration
		seg.Decoration = &d
	}
	if seg.Empty() {
		return nil
	}
	return &seg
}

// synthesizeText emits the Text child of a Frame that owns text directly.
// Only the directly-owned runs are carried: for an element-childless frame
// that is the whole content, for mixed element/text content the element
// children already produce their own layers. The child is positioned via
// the text's own rendered extents when the provider measured them.
func (b *Builder) synthesizeText(el *snapshot.Element, c style.Computed, parent origin) *ir.LayerNode {
	if len(el.Texts) == 0 {
		return nil
	}
	base := style.ResolveTextStyle(c)

	box, measured := textExtents(el)
	if !measured {
		box = contentBox(el, c)
	}
	if box.W <= 0 || box.H <= 0 {
		return nil
	}

	sep := " "
	if b.isMultiLine(box, base) {
		sep = "\n"
	}
	var parts []string
	for _, run := range el.Texts {
		if run.Text != "" {
			parts = append(parts, run.Text)
		}
	}
	chars := strings.Join(parts, sep)
	if chars == "" {
		return nil
	}

	return &ir.LayerNode{
		Type:       ir.LayerText,
		Name:       "text",
		X:          box.X - parent.X,
		Y:          box.Y - parent.Y,
		W:          box.W,
		H:          box.H,
		Opacity:    1,
		Visible:    true,
		Characters: chars,
		TextStyle:  &base,
		Effects:    style.ResolveEffects(c, true),
	}
}

// isMultiLine applies the line-height cutoff: a text box meaningfully
// taller than one line height holds wrapped or broken content.
func (b *Builder) isMultiLine(box snapshot.Box, ts ir.TextStyle) bool {
	lh := ts.LineHeight.Px
	if ts.LineHeight.Auto || lh <= 0 {
		lh = ts.FontSize * 1.2
	}
	return box.H > b.cfg.LineHeightWrapRatio*lh
}

// textExtents unions the measured boxes of the element's direct text runs.
func textExtents(el *snapshot.Element) (snapshot.Box, bool) {
	var union snapshot.Box
	found := false
	for _, run := range el.Texts {
		if run.Box == nil {
			continue
		}
		if !found {
			union = *run.Box
			found = true
			continue
		}
		x1 := minf(union.X, run.Box.X)
		y1 := minf(union.Y, run.Box.Y)
		x2 := maxf(union.X+union.W, run.Box.X+run.Box.W)
		y2 := maxf(union.Y+union.H, run.Box.Y+run.Box.H)
		union = snapshot.Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	}
	return union, found
}

// contentBox is the element box inset by padding, in page coordinates.
func contentBox(el *snapshot.Element, c style.Computed) snapshot.Box {
	top := c.Px("padding-top", 0)
	right := c.Px("padding-right", 0)
	bottom := c.Px("padding-bottom", 0)
	left := c.Px("padding-left", 0)
	w := el.Box.W - left - right
	h := el.Box.H - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return snapshot.Box{X: el.Box.X + left, Y: el.Box.Y + top, W: w, H: h}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
