package css

import (
	"strconv"
	"strings"

	"github.com/pagelift/pagelift/internal/ir"
)

// GradientKind distinguishes the two gradient families the core models.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// Gradient is a parsed CSS gradient: ordered stops plus, for the linear
// family, an angle in degrees.
type Gradient struct {
	Kind     GradientKind
	Stops    []ir.GradientStop
	AngleDeg float64
}

// defaultGradientAngle is top-to-bottom, CSS's default direction.
const defaultGradientAngle = 180

// ParseGradient parses a linear-gradient()/radial-gradient() value
// (vendor-prefixed and repeating variants included). The argument list is
// taken from the first balanced paren pair after the function name, stops
// are split only at paren depth 0, and stops lacking an explicit position
// are evenly distributed across [0,1] in declaration order as a post-pass
// over just the unset ones.
func ParseGradient(s string) (Gradient, bool) {
	v := strings.ToLower(strings.TrimSpace(s))

	kind := GradientLinear
	idx := strings.Index(v, "linear-gradient(")
	if idx < 0 {
		idx = strings.Index(v, "radial-gradient(")
		if idx < 0 {
			return Gradient{}, false
		}
		kind = GradientRadial
	}
	open := idx + strings.IndexByte(v[idx:], '(')
	arg, ok := balancedArg(v, open)
	if !ok {
		return Gradient{}, false
	}

	parts := SplitTopLevel(arg, ',')
	if len(parts) == 0 {
		return Gradient{}, false
	}

	g := Gradient{Kind: kind, AngleDeg: defaultGradientAngle}
	if kind == GradientLinear {
		if deg, ok := parseGradientDirection(parts[0]); ok {
			g.AngleDeg = deg
			parts = parts[1:]
		}
	} else {
		g.AngleDeg = 0
		// Shape/position preludes like "circle at center" are not stops.
		if isRadialPrelude(parts[0]) {
			parts = parts[1:]
		}
	}

	var unset []int
	for _, part := range parts {
		toks := FieldsTopLevel(part)
		if len(toks) == 0 {
			continue
		}
		pos := -1.0
		colorToks := toks
		if len(toks) > 1 {
			if p, ok := parseStopPosition(toks[len(toks)-1]); ok {
				pos = p
				colorToks = toks[:len(toks)-1]
			}
		}
		stop := ir.GradientStop{Color: ParseColor(strings.Join(colorToks, " "), nil)}
		if pos >= 0 {
			stop.Position = pos
		} else {
			unset = append(unset, len(g.Stops))
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) == 0 {
		return Gradient{}, false
	}

	// Even distribution for stops with no declared position.
	n := len(g.Stops)
	for _, i := range unset {
		if n == 1 {
			g.Stops[i].Position = 0
		} else {
			g.Stops[i].Position = float64(i) / float64(n-1)
		}
	}
	return g, true
}

// parseGradientDirection reads an explicit "Ndeg" token or a "to <side>"
// keyword. Only the four cardinal directions matter for the layer model.
func parseGradientDirection(part string) (float64, bool) {
	part = strings.TrimSpace(part)
	if strings.HasPrefix(part, "to ") {
		switch strings.Join(strings.Fields(part[3:]), " ") {
		case "right":
			return 90, true
		case "left":
			return 270, true
		case "bottom":
			return 180, true
		case "top":
			return 0, true
		case "bottom right", "right bottom":
			return 135, true
		case "bottom left", "left bottom":
			return 225, true
		case "top right", "right top":
			return 45, true
		case "top left", "left top":
			return 315, true
		}
		return 0, false
	}
	if strings.HasSuffix(part, "deg") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(part, "deg"), 64); err == nil {
			return f, true
		}
	}
	if strings.HasSuffix(part, "turn") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(part, "turn"), 64); err == nil {
			return f * 360, true
		}
	}
	return 0, false
}

func isRadialPrelude(part string) bool {
	part = strings.TrimSpace(part)
	if strings.Contains(part, " at ") || strings.HasPrefix(part, "at ") {
		return true
	}
	switch FieldsTopLevel(part)[0] {
	case "circle", "ellipse", "closest-side", "closest-corner", "farthest-side", "farthest-corner":
		return true
	}
	return false
}

// parseStopPosition accepts a percentage or a bare fraction in [0,1].
func parseStopPosition(tok string) (float64, bool) {
	if strings.HasSuffix(tok, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampUnit(f / 100), true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return f, true
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
