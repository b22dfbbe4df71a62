package ir

// LayerType discriminates the closed LayerNode variant.
type LayerType string

const (
	LayerFrame     LayerType = "frame"
	LayerText      LayerType = "text"
	LayerRectangle LayerType = "rectangle"
	LayerEllipse   LayerType = "ellipse"
	LayerGroup     LayerType = "group"
)

// Direction is an auto-layout stacking direction.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Align is an auto-layout alignment value on one axis.
type Align string

const (
	AlignMin          Align = "min"
	AlignCenterAxis   Align = "center"
	AlignMax          Align = "max"
	AlignSpaceBetween Align = "space_between"
)

// SizingMode is how an auto-layout frame sizes one axis.
type SizingMode string

const (
	SizingFixed SizingMode = "fixed"
	SizingAuto  SizingMode = "auto"
)

// AutoLayoutConfig is the flexbox-like layout description inferred for a
// Frame: direction, per-axis alignment, padding, item spacing, and sizing.
type AutoLayoutConfig struct {
	Direction        Direction  `json:"direction"`
	PrimaryAlign     Align      `json:"primary_align"`
	CrossAlign       Align      `json:"cross_align"`
	PaddingTop       float64    `json:"padding_top,omitempty"`
	PaddingRight     float64    `json:"padding_right,omitempty"`
	PaddingBottom    float64    `json:"padding_bottom,omitempty"`
	PaddingLeft      float64    `json:"padding_left,omitempty"`
	ItemSpacing      float64    `json:"item_spacing,omitempty"`
	PrimarySizing    SizingMode `json:"primary_sizing"`
	CrossSizing      SizingMode `json:"cross_sizing"`
	Wrap             bool       `json:"wrap,omitempty"`
	CrossAxisStretch bool       `json:"cross_axis_stretch,omitempty"`
}

// AssetKind discriminates raw asset payloads.
type AssetKind string

const (
	AssetSVG    AssetKind = "svg"
	AssetRaster AssetKind = "raster"
)

// Asset is an opaque payload attached to a node that represents an atomic
// external asset: a whole svg subtree captured as vector markup, or a
// rasterized icon glyph.
type Asset struct {
	Kind AssetKind `json:"kind"`
	Data []byte    `json:"data"`
}

// LayerNode is one node of the portable design-layer tree.
//
// Geometry is relative to the immediate parent's content origin, except for
// the capture root which keeps its page box. Children are exclusively owned
// and sorted ascending by ZIndex: later entries paint on top. This is the
// single paint-order contract the whole tree obeys.
type LayerNode struct {
	Type LayerType `json:"type"`
	Name string    `json:"name,omitempty"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`

	Fills        []Paint       `json:"fills,omitempty"`
	Stroke       *StrokeConfig `json:"stroke,omitempty"`
	Effects      []Effect      `json:"effects,omitempty"`
	CornerRadius CornerRadius  `json:"corner_radius,omitzero"`
	Opacity      float64       `json:"opacity"`
	Visible      bool          `json:"visible"`
	ClipsContent bool          `json:"clips_content,omitempty"`

	// Text fields, present only when Type == LayerText.
	Characters   string        `json:"characters,omitempty"`
	TextStyle    *TextStyle    `json:"text_style,omitempty"`
	TextSegments []TextSegment `json:"text_segments,omitempty"`

	// AutoLayout is set only on Frame nodes.
	AutoLayout *AutoLayoutConfig `json:"auto_layout,omitempty"`

	AbsolutePositioned bool    `json:"absolute_positioned,omitempty"`
	ZIndex             int     `json:"z_index,omitempty"`
	FlexGrow           float64 `json:"flex_grow,omitempty"`
	RotationDeg        float64 `json:"rotation_deg,omitempty"`

	Asset *Asset `json:"asset,omitempty"`

	Children []*LayerNode `json:"children,omitempty"`
}

// Walk visits the node and every descendant depth-first in paint order.
// It stops early when fn returns false.
func (n *LayerNode) Walk(fn func(*LayerNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree including the receiver.
func (n *LayerNode) Count() int {
	total := 0
	n.Walk(func(*LayerNode) bool {
		total++
		return true
	})
	return total
}
