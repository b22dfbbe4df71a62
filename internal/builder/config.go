package builder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagelift/pagelift/internal/layout"
)

// Config carries every tunable of the tree builder. There is no process
// state: callers pass a Config value in explicitly, and the defaults are
// calibrated against Chromium rendering.
type Config struct {
	// MaxDepth bounds the recursion, guarding against pathological
	// nesting. Nodes beyond it are skipped, not errors.
	MaxDepth int `yaml:"max_depth"`

	// IncludeHidden captures display:none / hidden / zero-opacity
	// elements instead of skipping them.
	IncludeHidden bool `yaml:"include_hidden"`

	// Layout holds the layout-inference thresholds.
	Layout layout.Config `yaml:"layout"`

	// PillCornerRatio is the corner-radius share of the short side above
	// which a box reads as a pill or circle.
	PillCornerRatio float64 `yaml:"pill_corner_ratio"`

	// SquareAspectRatio is the minimum short/long side ratio for a box
	// to count as near-square for ellipse classification.
	SquareAspectRatio float64 `yaml:"square_aspect_ratio"`

	// TextPaddingEpsilon is the side padding above which a text-bearing
	// element is a Frame with a Text child rather than a bare Text.
	TextPaddingEpsilon float64 `yaml:"text_padding_epsilon"`

	// LineHeightWrapRatio is the box-height multiple of the line height
	// above which text content counts as multi-line.
	LineHeightWrapRatio float64 `yaml:"line_height_wrap_ratio"`

	// IconFontPatterns is the allowlist of font-family substrings that
	// mark pseudo-element glyphs as icon-font content. Substring matching
	// is fragile, so the list is configuration, not logic.
	IconFontPatterns []string `yaml:"icon_font_patterns"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:            50,
		Layout:              layout.DefaultConfig(),
		PillCornerRatio:     0.49,
		SquareAspectRatio:   0.8,
		TextPaddingEpsilon:  2,
		LineHeightWrapRatio: 1.8,
		IconFontPatterns: []string{
			"font awesome",
			"fontawesome",
			"material icons",
			"material symbols",
			"glyphicons",
			"icomoon",
			"ionicons",
			"bootstrap-icons",
		},
	}
}

// LoadConfig reads a YAML tunables file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
