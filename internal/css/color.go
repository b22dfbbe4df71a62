package css

import (
	"strconv"
	"strings"

	"github.com/pagelift/pagelift/internal/ir"
)

// namedColors is the fixed lookup table for color keywords. It covers the
// CSS basic palette plus the extended names that show up in real computed
// styles.
var namedColors = map[string]ir.Color{
	"black":       rgb255(0, 0, 0),
	"white":       rgb255(255, 255, 255),
	"red":         rgb255(255, 0, 0),
	"green":       rgb255(0, 128, 0),
	"blue":        rgb255(0, 0, 255),
	"yellow":      rgb255(255, 255, 0),
	"orange":      rgb255(255, 165, 0),
	"purple":      rgb255(128, 0, 128),
	"pink":        rgb255(255, 192, 203),
	"gray":        rgb255(128, 128, 128),
	"grey":        rgb255(128, 128, 128),
	"silver":      rgb255(192, 192, 192),
	"maroon":      rgb255(128, 0, 0),
	"olive":       rgb255(128, 128, 0),
	"lime":        rgb255(0, 255, 0),
	"aqua":        rgb255(0, 255, 255),
	"cyan":        rgb255(0, 255, 255),
	"teal":        rgb255(0, 128, 128),
	"navy":        rgb255(0, 0, 128),
	"fuchsia":     rgb255(255, 0, 255),
	"magenta":     rgb255(255, 0, 255),
	"brown":       rgb255(165, 42, 42),
	"gold":        rgb255(255, 215, 0),
	"indigo":      rgb255(75, 0, 130),
	"violet":      rgb255(238, 130, 238),
	"coral":       rgb255(255, 127, 80),
	"salmon":      rgb255(250, 128, 114),
	"khaki":       rgb255(240, 230, 140),
	"plum":        rgb255(221, 160, 221),
	"orchid":      rgb255(218, 112, 214),
	"tan":         rgb255(210, 180, 140),
	"beige":       rgb255(245, 245, 220),
	"ivory":       rgb255(255, 255, 240),
	"snow":        rgb255(255, 250, 250),
	"azure":       rgb255(240, 255, 255),
	"lavender":    rgb255(230, 230, 250),
	"crimson":     rgb255(220, 20, 60),
	"chocolate":   rgb255(210, 105, 30),
	"tomato":      rgb255(255, 99, 71),
	"turquoise":   rgb255(64, 224, 208),
	"skyblue":     rgb255(135, 206, 235),
	"steelblue":   rgb255(70, 130, 180),
	"slategray":   rgb255(112, 128, 144),
	"darkgray":    rgb255(169, 169, 169),
	"darkgrey":    rgb255(169, 169, 169),
	"lightgray":   rgb255(211, 211, 211),
	"lightgrey":   rgb255(211, 211, 211),
	"darkred":     rgb255(139, 0, 0),
	"darkgreen":   rgb255(0, 100, 0),
	"darkblue":    rgb255(0, 0, 139),
	"lightblue":   rgb255(173, 216, 230),
	"lightgreen":  rgb255(144, 238, 144),
	"lightyellow": rgb255(255, 255, 224),
	"whitesmoke":  rgb255(245, 245, 245),
	"gainsboro":   rgb255(220, 220, 220),
	"dimgray":     rgb255(105, 105, 105),
	"royalblue":   rgb255(65, 105, 225),
	"dodgerblue":  rgb255(30, 144, 255),
	"rebeccapurple": rgb255(102, 51, 153),
}

func rgb255(r, g, b float64) ir.Color {
	return ir.RGBA(r/255, g/255, b/255, 1)
}

// ParseColor parses a CSS color value. It recognizes rgb()/rgba() in both
// the comma-separated and modern space/slash-separated forms, hsl()/hsla(),
// hex of length 3/4/6/8, the named-color table, and "transparent".
//
// The context-dependent keywords currentColor/inherit/initial/unset return
// fallback when supplied, otherwise opaque black. Unrecognized input also
// returns opaque black: parsing never fails the caller.
func ParseColor(s string, fallback *ir.Color) ir.Color {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "currentcolor", "inherit", "initial", "unset":
		if fallback != nil {
			return fallback.Clamp()
		}
		return ir.Black()
	case "transparent":
		return ir.Color{}
	}

	if strings.HasPrefix(v, "#") {
		if c, ok := parseHex(v[1:]); ok {
			return c
		}
		return ir.Black()
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		if c, ok := parseRGBFunc(v); ok {
			return c
		}
		return ir.Black()
	}
	if strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla(") {
		if c, ok := parseHSLFunc(v); ok {
			return c
		}
		return ir.Black()
	}
	if c, ok := namedColors[v]; ok {
		return c
	}
	return ir.Black()
}

func parseHex(hex string) (ir.Color, bool) {
	expand := func(c byte) string { return string([]byte{c, c}) }
	switch len(hex) {
	case 3:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + "ff"
	case 4:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + expand(hex[3])
	case 6:
		hex += "ff"
	case 8:
	default:
		return ir.Color{}, false
	}
	var ch [4]float64
	for i := 0; i < 4; i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return ir.Color{}, false
		}
		ch[i] = float64(n) / 255
	}
	return ir.RGBA(ch[0], ch[1], ch[2], ch[3]), true
}

// funcArgs extracts the argument tokens of a color function, accepting both
// "r, g, b, a" and the modern "r g b / a" syntax.
func funcArgs(v string) ([]string, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 {
		return nil, false
	}
	inner, ok := balancedArg(v, open)
	if !ok {
		return nil, false
	}
	inner = strings.ReplaceAll(inner, "/", " ")
	if strings.Contains(inner, ",") {
		parts := strings.Split(inner, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, true
	}
	return strings.Fields(inner), true
}

// channel parses one color channel token. Percentages resolve against 100%,
// plain numbers against scale (255 for rgb channels, 1 for alpha).
func channel(tok string, scale float64) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "none" {
		return 0, true
	}
	if strings.HasSuffix(tok, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f / 100, true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f / scale, true
}

func parseRGBFunc(v string) (ir.Color, bool) {
	args, ok := funcArgs(v)
	if !ok || len(args) < 3 {
		return ir.Color{}, false
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		c, ok := channel(args[i], 255)
		if !ok {
			return ir.Color{}, false
		}
		ch[i] = c
	}
	alpha := 1.0
	if len(args) >= 4 {
		a, ok := channel(args[3], 1)
		if !ok {
			return ir.Color{}, false
		}
		alpha = a
	}
	return ir.RGBA(ch[0], ch[1], ch[2], alpha), true
}

func parseHSLFunc(v string) (ir.Color, bool) {
	args, ok := funcArgs(v)
	if !ok || len(args) < 3 {
		return ir.Color{}, false
	}
	hTok := strings.TrimSuffix(args[0], "deg")
	h, err := strconv.ParseFloat(hTok, 64)
	if err != nil {
		return ir.Color{}, false
	}
	s, ok := channel(args[1], 1)
	if !ok {
		return ir.Color{}, false
	}
	l, ok := channel(args[2], 1)
	if !ok {
		return ir.Color{}, false
	}
	alpha := 1.0
	if len(args) >= 4 {
		a, ok := channel(args[3], 1)
		if !ok {
			return ir.Color{}, false
		}
		alpha = a
	}
	r, g, b := hslToRGB(h, s, l)
	return ir.RGBA(r, g, b, alpha), true
}

func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h = h - 360*float64(int(h/360))
	if h < 0 {
		h += 360
	}
	if s <= 0 {
		return l, l, l
	}
	c := (1 - abs(2*l-1)) * s
	x := c * (1 - abs(mod2(h/60)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	for v < 0 {
		v += 2
	}
	return v
}
