package css

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pagelift/pagelift/internal/ir"
)

// ShadowKind selects the grammar variant: box-shadow entries may carry an
// inset keyword and a spread value, text-shadow entries may not.
type ShadowKind int

const (
	BoxShadow ShadowKind = iota
	TextShadow
)

var hexTokenRe = regexp.MustCompile(`#[0-9a-fA-F]{3,8}`)

// ParseShadow parses a box-shadow or text-shadow list into effects.
// Entries split at top-level commas. Per entry the color token is located
// and removed (function form, then hex, then named, in that order) and the
// remaining numeric tokens read positionally as offsetX, offsetY, blur,
// and, for box shadows, spread. Entries with fewer than two numbers are
// discarded.
func ParseShadow(s string, kind ShadowKind) []ir.Effect {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "none" {
		return nil
	}

	var effects []ir.Effect
	for _, entry := range SplitTopLevel(v, ',') {
		inset := false
		if kind == BoxShadow {
			if trimmed, found := stripWord(entry, "inset"); found {
				inset = true
				entry = trimmed
			}
		}

		colorText, rest := extractColorToken(entry)
		color := ParseColor(colorText, nil)

		var nums []float64
		for _, tok := range strings.Fields(rest) {
			tok = strings.TrimSuffix(tok, "px")
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			nums = append(nums, f)
		}
		if len(nums) < 2 {
			continue
		}

		eff := ir.Effect{
			Kind:    ir.EffectDropShadow,
			Color:   &color,
			OffsetX: nums[0],
			OffsetY: nums[1],
		}
		if inset {
			eff.Kind = ir.EffectInnerShadow
		}
		if len(nums) > 2 {
			eff.Radius = nums[2]
		}
		if kind == BoxShadow && len(nums) > 3 {
			eff.Spread = nums[3]
		}
		effects = append(effects, eff)
	}
	return effects
}

// extractColorToken finds one color token in entry and returns it together
// with the entry text minus that token. Function colors are tried first
// because their arguments contain digits that would otherwise be read as
// offsets.
func extractColorToken(entry string) (color, rest string) {
	for _, fn := range []string{"rgba(", "rgb(", "hsla(", "hsl("} {
		idx := strings.Index(entry, fn)
		if idx < 0 {
			continue
		}
		open := idx + len(fn) - 1
		if _, ok := balancedArg(entry, open); ok {
			end := open
			depth := 0
			for ; end < len(entry); end++ {
				if entry[end] == '(' {
					depth++
				} else if entry[end] == ')' {
					depth--
					if depth == 0 {
						end++
						break
					}
				}
			}
			return entry[idx:end], entry[:idx] + " " + entry[end:]
		}
	}
	if loc := hexTokenRe.FindStringIndex(entry); loc != nil {
		return entry[loc[0]:loc[1]], entry[:loc[0]] + " " + entry[loc[1]:]
	}
	for _, tok := range strings.Fields(entry) {
		if _, ok := namedColors[tok]; ok || tok == "transparent" || tok == "currentcolor" {
			repl, _ := stripWord(entry, tok)
			return tok, repl
		}
	}
	return "", entry
}

// stripWord removes a standalone word from s, reporting whether it was
// present.
func stripWord(s, word string) (string, bool) {
	fields := strings.Fields(s)
	out := fields[:0]
	found := false
	for _, f := range fields {
		if !found && f == word {
			found = true
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " "), found
}
