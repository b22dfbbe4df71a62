package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
)

func TestResolveStrokeUniform(t *testing.T) {
	c := Computed{
		"border-top-width":    "2px",
		"border-right-width":  "2px",
		"border-bottom-width": "2px",
		"border-left-width":   "2px",
		"border-top-color":    "#ff0000",
	}
	stroke := ResolveStroke(c)
	require.NotNil(t, stroke)
	assert.Equal(t, 2.0, stroke.Weight)
	assert.Equal(t, ir.StrokeInside, stroke.Position)
	assert.Nil(t, stroke.IndividualWeights)
	assert.InDelta(t, 1.0, stroke.Color.R, 1.0/255)
}

func TestResolveStrokeAsymmetric(t *testing.T) {
	// Weight is the max side; per-side weights are preserved.
	c := Computed{
		"border-bottom-width": "3px",
		"border-bottom-color": "#000",
	}
	stroke := ResolveStroke(c)
	require.NotNil(t, stroke)
	assert.Equal(t, 3.0, stroke.Weight)
	require.NotNil(t, stroke.IndividualWeights)
	assert.Equal(t, 3.0, stroke.IndividualWeights.Bottom)
	assert.Equal(t, 0.0, stroke.IndividualWeights.Top)
}

func TestResolveStrokeNone(t *testing.T) {
	assert.Nil(t, ResolveStroke(Computed{}))
	assert.Nil(t, ResolveStroke(Computed{"border-top-width": "0px"}))
	assert.Nil(t, ResolveStroke(Computed{
		"border-top-width": "2px",
		"border-top-style": "none",
	}))
}

func TestResolveStrokeCurrentColor(t *testing.T) {
	c := Computed{
		"border-top-width":    "1px",
		"border-right-width":  "1px",
		"border-bottom-width": "1px",
		"border-left-width":   "1px",
		"border-top-color":    "currentcolor",
		"color":               "rgb(0, 128, 0)",
	}
	stroke := ResolveStroke(c)
	require.NotNil(t, stroke)
	assert.InDelta(t, 128.0/255, stroke.Color.G, 1.0/255)
}

func TestResolveStrokeDashPatterns(t *testing.T) {
	c := Computed{
		"border-top-width":    "2px",
		"border-right-width":  "2px",
		"border-bottom-width": "2px",
		"border-left-width":   "2px",
		"border-top-style":    "dashed",
	}
	stroke := ResolveStroke(c)
	require.NotNil(t, stroke)
	assert.Equal(t, []float64{4, 2}, stroke.DashPattern)

	c["border-top-style"] = "dotted"
	stroke = ResolveStroke(c)
	require.NotNil(t, stroke)
	assert.Equal(t, []float64{2, 2}, stroke.DashPattern)
}
