package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tree() *LayerNode {
	return &LayerNode{
		Type: LayerFrame, Name: "root",
		Children: []*LayerNode{
			{Type: LayerText, Name: "title"},
			{Type: LayerFrame, Name: "body", Children: []*LayerNode{
				{Type: LayerRectangle, Name: "thumb"},
			}},
		},
	}
}

func TestWalkOrder(t *testing.T) {
	var names []string
	tree().Walk(func(n *LayerNode) bool {
		names = append(names, n.Name)
		return true
	})
	assert.Equal(t, []string{"root", "title", "body", "thumb"}, names)
}

func TestWalkEarlyStop(t *testing.T) {
	var names []string
	tree().Walk(func(n *LayerNode) bool {
		names = append(names, n.Name)
		return n.Name != "title"
	})
	assert.Equal(t, []string{"root", "title"}, names)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 4, tree().Count())
	assert.Equal(t, 1, (&LayerNode{Type: LayerText}).Count())
}

func TestSideWeights(t *testing.T) {
	uniform := SideWeights{Top: 2, Right: 2, Bottom: 2, Left: 2}
	assert.True(t, uniform.Uniform())
	assert.Equal(t, 2.0, uniform.Max())

	mixed := SideWeights{Bottom: 3}
	assert.False(t, mixed.Uniform())
	assert.Equal(t, 3.0, mixed.Max())
}

func TestCornerRadius(t *testing.T) {
	assert.True(t, CornerRadius{}.IsZero())
	assert.Equal(t, 0.0, CornerRadius{}.MaxValue())
	assert.Equal(t, 12.0, UniformRadius(12).MaxValue())

	cr := CornerRadius{Corners: &Corners{TopLeft: 4, BottomRight: 9}}
	assert.Equal(t, 9.0, cr.MaxValue())
}

func TestColorClamp(t *testing.T) {
	c := RGBA(1.5, -0.2, 0.5, 2)
	assert.Equal(t, Color{R: 1, G: 0, B: 0.5, A: 1}, c)
	assert.True(t, Color{}.IsTransparent())
	assert.False(t, Black().IsTransparent())
}
