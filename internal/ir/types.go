package ir

import "math"

// Color is an RGBA color with channels normalized to [0,1].
// Always construct through RGBA (or Clamp after arithmetic) so the
// channels stay clamped and never carry NaN.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// RGBA builds a clamped color. NaN channels collapse to 0.
func RGBA(r, g, b, a float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// Black is the documented fallback for every unparsable color value.
func Black() Color { return Color{A: 1} }

// Clamp returns the color with every channel forced into [0,1].
func (c Color) Clamp() Color {
	return RGBA(c.R, c.G, c.B, c.A)
}

// IsTransparent reports a fully transparent color.
func (c Color) IsTransparent() bool { return c.A == 0 }

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PaintKind discriminates the closed Paint variant.
type PaintKind string

const (
	PaintSolid          PaintKind = "solid"
	PaintLinearGradient PaintKind = "linear_gradient"
	PaintRadialGradient PaintKind = "radial_gradient"
	PaintImage          PaintKind = "image"
)

// ScaleMode describes how an image paint fills its layer.
type ScaleMode string

const (
	ScaleFill ScaleMode = "fill"
	ScaleFit  ScaleMode = "fit"
)

// GradientStop is one color stop; Position is in [0,1]. Stops are ordered
// by declaration and positions are non-decreasing by convention.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint is a closed variant: solid color, linear gradient, radial gradient,
// or image reference. Only the fields of the active Kind are populated.
//
// Within a fills slice, earlier entries render on top of later ones; the
// builder appends background-color solids last so they sit beneath images.
type Paint struct {
	Kind      PaintKind      `json:"kind"`
	Color     *Color         `json:"color,omitempty"`
	Stops     []GradientStop `json:"stops,omitempty"`
	AngleDeg  float64        `json:"angle_deg,omitempty"`
	URL       string         `json:"url,omitempty"`
	ScaleMode ScaleMode      `json:"scale_mode,omitempty"`
}

// SolidPaint builds a solid paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: &c}
}

// LinearGradientPaint builds a linear gradient paint.
func LinearGradientPaint(stops []GradientStop, angleDeg float64) Paint {
	return Paint{Kind: PaintLinearGradient, Stops: stops, AngleDeg: angleDeg}
}

// RadialGradientPaint builds a radial gradient paint.
func RadialGradientPaint(stops []GradientStop) Paint {
	return Paint{Kind: PaintRadialGradient, Stops: stops}
}

// ImagePaint builds an image paint.
func ImagePaint(url string, mode ScaleMode) Paint {
	return Paint{Kind: PaintImage, URL: url, ScaleMode: mode}
}

// StrokePosition is where the stroke sits relative to the layer outline.
type StrokePosition string

const (
	StrokeInside  StrokePosition = "inside"
	StrokeOutside StrokePosition = "outside"
	StrokeCenter  StrokePosition = "center"
)

// SideWeights carries per-side stroke weights, present only when the four
// sides differ.
type SideWeights struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Uniform reports whether all four sides share one weight.
func (w SideWeights) Uniform() bool {
	return w.Top == w.Right && w.Right == w.Bottom && w.Bottom == w.Left
}

// Max returns the largest side weight.
func (w SideWeights) Max() float64 {
	m := w.Top
	for _, v := range []float64{w.Right, w.Bottom, w.Left} {
		if v > m {
			m = v
		}
	}
	return m
}

// StrokeConfig describes a layer border.
type StrokeConfig struct {
	Color             Color          `json:"color"`
	Weight            float64        `json:"weight"`
	Position          StrokePosition `json:"position"`
	DashPattern       []float64      `json:"dash_pattern,omitempty"`
	IndividualWeights *SideWeights   `json:"individual_weights,omitempty"`
}

// EffectKind discriminates the closed Effect variant.
type EffectKind string

const (
	EffectDropShadow     EffectKind = "drop_shadow"
	EffectInnerShadow    EffectKind = "inner_shadow"
	EffectLayerBlur      EffectKind = "layer_blur"
	EffectBackgroundBlur EffectKind = "background_blur"
)

// Effect is a closed variant: shadows carry color/offset/radius/spread,
// blurs carry only a radius.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Color   *Color     `json:"color,omitempty"`
	OffsetX float64    `json:"offset_x,omitempty"`
	OffsetY float64    `json:"offset_y,omitempty"`
	Radius  float64    `json:"radius"`
	Spread  float64    `json:"spread,omitempty"`
}

// Corners holds the four named corner radii.
type Corners struct {
	TopLeft     float64 `json:"top_left"`
	TopRight    float64 `json:"top_right"`
	BottomRight float64 `json:"bottom_right"`
	BottomLeft  float64 `json:"bottom_left"`
}

// CornerRadius is either one uniform scalar or four per-corner values.
// The zero value means no rounding.
type CornerRadius struct {
	Uniform *float64 `json:"uniform,omitempty"`
	Corners *Corners `json:"corners,omitempty"`
}

// UniformRadius builds a uniform corner radius.
func UniformRadius(r float64) CornerRadius {
	return CornerRadius{Uniform: &r}
}

// IsZero reports an absent radius.
func (cr CornerRadius) IsZero() bool {
	return cr.Uniform == nil && cr.Corners == nil
}

// MaxValue returns the largest radius regardless of representation.
func (cr CornerRadius) MaxValue() float64 {
	if cr.Uniform != nil {
		return *cr.Uniform
	}
	if cr.Corners == nil {
		return 0
	}
	m := cr.Corners.TopLeft
	for _, v := range []float64{cr.Corners.TopRight, cr.Corners.BottomRight, cr.Corners.BottomLeft} {
		if v > m {
			m = v
		}
	}
	return m
}
