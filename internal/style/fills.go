package style

import (
	"strings"

	"github.com/pagelift/pagelift/internal/css"
	"github.com/pagelift/pagelift/internal/ir"
)

// ResolveFills turns background-image and background-color into the layer's
// paint stack. Each comma-separated background-image entry is tried first
// as a url() reference and otherwise as a gradient.
//
// Ordering contract: within the returned slice earlier entries are "on
// top". background-color, when not transparent, is always appended as a
// trailing solid so it renders beneath any image or gradient layer. This
// ordering is relied on by the builder's paint-order contract, it is not
// incidental.
func ResolveFills(c Computed) []ir.Paint {
	var fills []ir.Paint

	image := c.Get("background-image", "none")
	if image != "" && image != "none" {
		for _, entry := range css.SplitTopLevel(image, ',') {
			if p, ok := imagePaint(c, entry); ok {
				fills = append(fills, p)
				continue
			}
			if g, ok := css.ParseGradient(entry); ok {
				fills = append(fills, gradientPaint(g))
			}
		}
	}

	bg := c.Get("background-color", "")
	if bg != "" {
		color := css.ParseColor(bg, nil)
		if bg != "transparent" && !color.IsTransparent() {
			fills = append(fills, ir.SolidPaint(color))
		}
	}
	return fills
}

func imagePaint(c Computed, entry string) (ir.Paint, bool) {
	trimmed := strings.TrimSpace(entry)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "url(") {
		return ir.Paint{}, false
	}
	inner := trimmed[4:]
	if idx := strings.LastIndexByte(inner, ')'); idx >= 0 {
		inner = inner[:idx]
	}
	url := strings.Trim(strings.TrimSpace(inner), `"'`)
	if url == "" {
		return ir.Paint{}, false
	}

	mode := ir.ScaleFill
	if c.Get("background-size", "auto") == "contain" {
		mode = ir.ScaleFit
	}
	return ir.ImagePaint(url, mode), true
}

func gradientPaint(g css.Gradient) ir.Paint {
	switch g.Kind {
	case css.GradientRadial:
		return ir.RadialGradientPaint(g.Stops)
	default:
		return ir.LinearGradientPaint(g.Stops, g.AngleDeg)
	}
}
