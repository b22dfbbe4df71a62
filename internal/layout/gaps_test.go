package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
)

func box(x, y, w, h float64) *ir.LayerNode {
	return &ir.LayerNode{Type: ir.LayerFrame, X: x, Y: y, W: w, H: h, Opacity: 1, Visible: true}
}

func vertAL() *ir.AutoLayoutConfig {
	return &ir.AutoLayoutConfig{
		Direction:     ir.Vertical,
		PrimaryAlign:  ir.AlignMin,
		CrossAlign:    ir.AlignMin,
		PrimarySizing: ir.SizingFixed,
		CrossSizing:   ir.SizingFixed,
	}
}

func TestInferGapsUniformBlock(t *testing.T) {
	// Children at y=0,30,60 with height 20: both gaps measure 10.
	al := vertAL()
	children := []*ir.LayerNode{
		box(0, 0, 100, 20),
		box(0, 30, 100, 20),
		box(0, 60, 100, 20),
	}
	out := InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 10.0, al.ItemSpacing)
	// No wrappers: the original children survive untouched.
	require.Len(t, out, 3)
	assert.Same(t, children[1], out[1])
}

func TestInferGapsUnevenBlockSynthesizesSpacer(t *testing.T) {
	// Gaps measure 10 then 30: spacing becomes the minimum and the child
	// after the large gap is wrapped in a transparent spacer frame that
	// absorbs the 20 units of excess as top padding.
	al := vertAL()
	children := []*ir.LayerNode{
		box(0, 0, 100, 20),
		box(0, 30, 100, 20),
		box(0, 80, 100, 20),
	}
	third := children[2]
	out := InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 10.0, al.ItemSpacing)
	require.Len(t, out, 3)

	wrapper := out[2]
	assert.Equal(t, "spacer", wrapper.Name)
	assert.Empty(t, wrapper.Fills)
	assert.Equal(t, 60.0, wrapper.Y)
	assert.Equal(t, 40.0, wrapper.H)
	require.NotNil(t, wrapper.AutoLayout)
	assert.Equal(t, 20.0, wrapper.AutoLayout.PaddingTop)

	// The wrapped child is rebased into the wrapper.
	require.Len(t, wrapper.Children, 1)
	assert.Same(t, third, wrapper.Children[0])
	assert.Equal(t, 20.0, third.Y)
	assert.Equal(t, 0.0, third.X)
}

func TestInferGapsFlexTrustsCSSGap(t *testing.T) {
	// Measured gaps agree with the declared gap within tolerance: keep it.
	al := vertAL()
	al.ItemSpacing = 12
	children := []*ir.LayerNode{
		box(0, 0, 100, 20),
		box(0, 34, 100, 20),
	}
	InferGaps(DefaultConfig(), al, SourceFlexGrid, children)
	assert.Equal(t, 12.0, al.ItemSpacing)
}

func TestInferGapsFlexOverridesStaleGap(t *testing.T) {
	// Measured average far from the CSS gap wins, without wrappers.
	al := vertAL()
	al.ItemSpacing = 4
	children := []*ir.LayerNode{
		box(0, 0, 100, 20),
		box(0, 52, 100, 20),
	}
	out := InferGaps(DefaultConfig(), al, SourceFlexGrid, children)
	assert.Equal(t, 32.0, al.ItemSpacing)
	assert.Same(t, children[1], out[1])
}

func TestInferGapsHorizontal(t *testing.T) {
	al := vertAL()
	al.Direction = ir.Horizontal
	children := []*ir.LayerNode{
		box(0, 0, 50, 20),
		box(58, 0, 50, 20),
		box(146, 0, 50, 20),
	}
	out := InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 8.0, al.ItemSpacing)
	wrapper := out[2]
	assert.Equal(t, "spacer", wrapper.Name)
	assert.Equal(t, 30.0, wrapper.AutoLayout.PaddingLeft)
	assert.Equal(t, 30.0, wrapper.Children[0].X)
}

func TestInferGapsSkipsAbsoluteChildren(t *testing.T) {
	al := vertAL()
	abs := box(0, 500, 10, 10)
	abs.AbsolutePositioned = true
	children := []*ir.LayerNode{
		box(0, 0, 100, 20),
		abs,
		box(0, 30, 100, 20),
	}
	InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 10.0, al.ItemSpacing)
}

func TestInferGapsTooFewChildren(t *testing.T) {
	al := vertAL()
	children := []*ir.LayerNode{box(0, 0, 100, 20)}
	out := InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 0.0, al.ItemSpacing)
	assert.Equal(t, children, out)
}

func TestInferGapsOverlapClamped(t *testing.T) {
	// Overlapping children produce a negative gap; spacing floors at 0.
	al := vertAL()
	children := []*ir.LayerNode{
		box(0, 0, 100, 30),
		box(0, 25, 100, 30),
	}
	InferGaps(DefaultConfig(), al, SourceBlock, children)
	assert.Equal(t, 0.0, al.ItemSpacing)
}
