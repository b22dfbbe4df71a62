package builder

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/style"
)

// pseudoLayer synthesizes a layer from a ::before/::after declaration with
// non-empty, non-none resolved content. Icon-font glyphs are rasterized
// through the collaborator because the glyph's code point is meaningless
// without that exact font installed in the output environment; a blank
// raster falls back to emitting the raw text.
func (b *Builder) pseudoLayer(p *snapshot.Pseudo, owner *snapshot.Element, parent origin) *ir.LayerNode {
	if p == nil || p.Style == nil {
		return nil
	}
	c := style.Computed(p.Style)

	text := UnquoteContent(c.Get("content", ""))
	if text == "" {
		return nil
	}
	if !c.IsVisible() && !b.cfg.IncludeHidden {
		return nil
	}

	ts := style.ResolveTextStyle(c)
	box := pseudoBox(p, owner, ts.FontSize)

	node := &ir.LayerNode{
		X:       box.X - parent.X,
		Y:       box.Y - parent.Y,
		W:       box.W,
		H:       box.H,
		Opacity: c.Opacity(),
		Visible: true,
		ZIndex:  c.ZIndex(),
	}

	if b.isIconFont(style.FontFamily(c)) {
		if raster := b.rasterizeGlyph(text, c, ts); raster != nil {
			node.Type = ir.LayerRectangle
			node.Asset = &ir.Asset{Kind: ir.AssetRaster, Data: raster}
			return node
		}
	}

	node.Type = ir.LayerText
	node.Characters = text
	node.TextStyle = &ts
	return node
}

func (b *Builder) isIconFont(family string) bool {
	f := strings.ToLower(family)
	if f == "" {
		return false
	}
	for _, pattern := range b.cfg.IconFontPatterns {
		if strings.Contains(f, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

func (b *Builder) rasterizeGlyph(glyph string, c style.Computed, ts ir.TextStyle) []byte {
	if b.icons == nil {
		return nil
	}
	data, err := b.icons.Rasterize(glyph, style.FontFamily(c), ts.FontSize)
	if err != nil {
		b.log.Debug("icon rasterization failed, keeping raw text",
			zap.String("glyph", glyph), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return data
}

func pseudoBox(p *snapshot.Pseudo, owner *snapshot.Element, fontSize float64) snapshot.Box {
	if p.Box != nil {
		return *p.Box
	}
	// No measured box delivered: a square at the owner's origin sized to
	// the glyph's font size.
	return snapshot.Box{X: owner.Box.X, Y: owner.Box.Y, W: fontSize, H: fontSize}
}

// UnquoteContent reverses CSS string escaping in a resolved content value:
// surrounding quotes are stripped and \HHHH unicode escapes (with their
// optional trailing space) decoded. The keywords none/normal and the empty
// string yield "".
func UnquoteContent(content string) string {
	v := strings.TrimSpace(content)
	switch v {
	case "", "none", "normal":
		return ""
	}
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}

	var sb strings.Builder
	for i := 0; i < len(v); {
		if v[i] != '\\' {
			sb.WriteByte(v[i])
			i++
			continue
		}
		// Escape sequence: 1-6 hex digits terminated by an optional
		// single space, or a literal escaped character.
		j := i + 1
		for j < len(v) && j-i-1 < 6 && isHexDigit(v[j]) {
			j++
		}
		if j > i+1 {
			if n, err := strconv.ParseUint(v[i+1:j], 16, 32); err == nil {
				sb.WriteRune(rune(n))
			}
			if j < len(v) && v[j] == ' ' {
				j++
			}
			i = j
			continue
		}
		if j < len(v) {
			sb.WriteByte(v[j])
			i = j + 1
			continue
		}
		i = j
	}
	return sb.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
