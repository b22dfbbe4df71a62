package style

import (
	"strconv"
	"strings"

	"github.com/pagelift/pagelift/internal/css"
	"github.com/pagelift/pagelift/internal/ir"
)

// ResolveEffects collects shadows and blurs for an element. Text layers
// read text-shadow, everything else box-shadow; filter/backdrop-filter
// blur() become layer and background blur respectively.
func ResolveEffects(c Computed, isText bool) []ir.Effect {
	var effects []ir.Effect

	if isText {
		effects = append(effects, css.ParseShadow(c.Get("text-shadow", ""), css.TextShadow)...)
	} else {
		effects = append(effects, css.ParseShadow(c.Get("box-shadow", ""), css.BoxShadow)...)
	}

	if r, ok := blurRadius(c.Get("filter", "")); ok {
		effects = append(effects, ir.Effect{Kind: ir.EffectLayerBlur, Radius: r})
	}
	if r, ok := blurRadius(c.Get("backdrop-filter", "")); ok {
		effects = append(effects, ir.Effect{Kind: ir.EffectBackgroundBlur, Radius: r})
	}
	return effects
}

func blurRadius(filter string) (float64, bool) {
	idx := strings.Index(filter, "blur(")
	if idx < 0 {
		return 0, false
	}
	rest := filter[idx+len("blur("):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0, false
	}
	v := strings.TrimSuffix(strings.TrimSpace(rest[:end]), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}
