package css

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rotateRe = regexp.MustCompile(`rotate\(\s*(-?[0-9.]+)(deg|rad|turn)\s*\)`)
	matrixRe = regexp.MustCompile(`matrix\(\s*(-?[0-9.e+-]+)\s*,\s*(-?[0-9.e+-]+)`)
)

// rotationEpsilon treats near-zero angles as "no rotation"; computed
// matrix() values routinely carry float noise for unrotated elements.
const rotationEpsilon = 0.01

// ParseRotation extracts the rotation angle in degrees from a CSS
// transform value, either from an explicit rotate() or derived from a
// matrix() via atan2(b, a). The second return is false when the transform
// carries no meaningful rotation.
func ParseRotation(transform string) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(transform))
	if v == "" || v == "none" {
		return 0, false
	}

	if m := rotateRe.FindStringSubmatch(v); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		switch m[2] {
		case "rad":
			f = f * 180 / math.Pi
		case "turn":
			f *= 360
		}
		if math.Abs(f) < rotationEpsilon {
			return 0, false
		}
		return f, true
	}

	if m := matrixRe.FindStringSubmatch(v); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[2], 64)
		if errA != nil || errB != nil {
			return 0, false
		}
		deg := math.Atan2(b, a) * 180 / math.Pi
		if math.Abs(deg) < rotationEpsilon {
			return 0, false
		}
		return deg, true
	}
	return 0, false
}
