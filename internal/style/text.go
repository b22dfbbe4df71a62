package style

import (
	"strconv"
	"strings"

	"github.com/pagelift/pagelift/internal/css"
	"github.com/pagelift/pagelift/internal/ir"
)

// normalLineHeightRatio approximates the browser's "normal" line height.
const normalLineHeightRatio = 1.2

// fontWeightKeywords maps keyword synonyms onto the numeric scale.
var fontWeightKeywords = map[string]int{
	"thin":        100,
	"hairline":    100,
	"extra-light": 200,
	"extralight":  200,
	"ultra-light": 200,
	"light":       300,
	"normal":      400,
	"regular":     400,
	"medium":      500,
	"semi-bold":   600,
	"semibold":    600,
	"demi-bold":   600,
	"demibold":    600,
	"bold":        700,
	"bolder":      700,
	"extra-bold":  800,
	"extrabold":   800,
	"ultra-bold":  800,
	"black":       900,
	"heavy":       900,
}

// ResolveTextStyle builds the base text style of an element from its
// computed font and text properties.
func ResolveTextStyle(c Computed) ir.TextStyle {
	size := c.Px("font-size", 16)

	ts := ir.TextStyle{
		FontFamily:    FontFamily(c),
		FontWeight:    FontWeight(c.Get("font-weight", "")),
		Italic:        isItalic(c.Get("font-style", "")),
		FontSize:      size,
		LineHeight:    lineHeight(c.Get("line-height", ""), size),
		LetterSpacing: letterSpacing(c.Get("letter-spacing", ""), size),
		Align:         textAlign(c.Get("text-align", "")),
		Decoration:    textDecoration(c.Get("text-decoration", c.Get("text-decoration-line", ""))),
		Case:          textCase(c.Get("text-transform", "")),
		Color:         css.ParseColor(c.Get("color", ""), nil),
	}
	return ts
}

// FontFamily returns the first comma-separated family, quotes stripped.
func FontFamily(c Computed) string {
	fam := c.Get("font-family", "")
	if fam == "" {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(fam, ",", 2)[0])
	return strings.Trim(first, `"'`)
}

// FontWeight parses numeric weights directly and maps keyword synonyms.
func FontWeight(v string) int {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return 400
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 {
			return 400
		}
		return n
	}
	if n, ok := fontWeightKeywords[v]; ok {
		return n
	}
	return 400
}

func isItalic(v string) bool {
	v = strings.ToLower(v)
	return strings.Contains(v, "italic") || strings.Contains(v, "oblique")
}

// lineHeight: "normal" approximates to 1.2x the font size, unitless and
// percentage values scale the font size, pixel literals pass through, and
// anything unparsable collapses to "auto".
func lineHeight(v string, fontSize float64) ir.LineHeight {
	v = strings.TrimSpace(v)
	if v == "" || v == "normal" {
		return ir.PxLineHeight(normalLineHeightRatio * fontSize)
	}
	if strings.HasSuffix(v, "px") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil {
			return ir.PxLineHeight(f)
		}
		return ir.AutoLineHeight()
	}
	if strings.HasSuffix(v, "%") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			return ir.PxLineHeight(f / 100 * fontSize)
		}
		return ir.AutoLineHeight()
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ir.PxLineHeight(f * fontSize)
	}
	return ir.AutoLineHeight()
}

// letterSpacing converts em values against the font size; px pass through.
func letterSpacing(v string, fontSize float64) float64 {
	v = strings.TrimSpace(v)
	if v == "" || v == "normal" {
		return 0
	}
	if strings.HasSuffix(v, "em") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "em"), 64); err == nil {
			return f * fontSize
		}
		return 0
	}
	if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil {
		return f
	}
	return 0
}

func textAlign(v string) ir.TextAlign {
	switch v {
	case "center":
		return ir.AlignCenter
	case "right", "end":
		return ir.AlignRight
	case "justify":
		return ir.AlignJustify
	default:
		return ir.AlignLeft
	}
}

func textDecoration(v string) ir.TextDecoration {
	v = strings.ToLower(v)
	switch {
	case strings.Contains(v, "underline"):
		return ir.DecorationUnderline
	case strings.Contains(v, "line-through"):
		return ir.DecorationStrikethrough
	default:
		return ir.DecorationNone
	}
}

func textCase(v string) ir.TextCase {
	switch v {
	case "uppercase":
		return ir.CaseUpper
	case "lowercase":
		return ir.CaseLower
	case "capitalize":
		return ir.CaseTitle
	default:
		return ir.CaseOriginal
	}
}
