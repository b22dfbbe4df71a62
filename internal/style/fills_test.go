package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
)

func TestResolveFillsBackgroundColor(t *testing.T) {
	c := Computed{"background-color": "rgb(255, 0, 0)"}
	fills := ResolveFills(c)
	require.Len(t, fills, 1)
	assert.Equal(t, ir.PaintSolid, fills[0].Kind)
	assert.InDelta(t, 1.0, fills[0].Color.R, 1.0/255)
}

func TestResolveFillsTransparentSkipped(t *testing.T) {
	assert.Empty(t, ResolveFills(Computed{"background-color": "transparent"}))
	assert.Empty(t, ResolveFills(Computed{"background-color": "rgba(0, 0, 0, 0)"}))
	assert.Empty(t, ResolveFills(Computed{}))
}

func TestResolveFillsOrdering(t *testing.T) {
	// Image and gradient entries precede the solid backdrop: earlier
	// entries in the slice render on top.
	c := Computed{
		"background-image": "url(hero.png), linear-gradient(red, blue)",
		"background-color": "#ffffff",
	}
	fills := ResolveFills(c)
	require.Len(t, fills, 3)
	assert.Equal(t, ir.PaintImage, fills[0].Kind)
	assert.Equal(t, ir.PaintLinearGradient, fills[1].Kind)
	assert.Equal(t, ir.PaintSolid, fills[2].Kind)
}

func TestResolveFillsImageScaleMode(t *testing.T) {
	c := Computed{"background-image": `url("a.png")`, "background-size": "contain"}
	fills := ResolveFills(c)
	require.Len(t, fills, 1)
	assert.Equal(t, "a.png", fills[0].URL)
	assert.Equal(t, ir.ScaleFit, fills[0].ScaleMode)

	c["background-size"] = "cover"
	assert.Equal(t, ir.ScaleFill, ResolveFills(c)[0].ScaleMode)
}

func TestResolveFillsRadialGradient(t *testing.T) {
	c := Computed{"background-image": "radial-gradient(circle, #fff, #000)"}
	fills := ResolveFills(c)
	require.Len(t, fills, 1)
	assert.Equal(t, ir.PaintRadialGradient, fills[0].Kind)
	assert.Len(t, fills[0].Stops, 2)
}
