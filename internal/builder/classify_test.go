package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/testutil"
)

func build(t *testing.T, el *snapshot.Element) *ir.LayerNode {
	t.Helper()
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(el))
	require.NoError(t, err)
	return doc.Root
}

func TestClassifyImage(t *testing.T) {
	img := testutil.Elem("img", 0, 0, 200, 150, nil)
	img.Attrs = map[string]string{"src": "https://example.com/photo.jpg"}

	node := build(t, img)
	assert.Equal(t, ir.LayerRectangle, node.Type)
	require.Len(t, node.Fills, 1)
	assert.Equal(t, ir.PaintImage, node.Fills[0].Kind)
	assert.Equal(t, "https://example.com/photo.jpg", node.Fills[0].URL)
	assert.Empty(t, node.Children)
}

func TestClassifyVideoPoster(t *testing.T) {
	video := testutil.Elem("video", 0, 0, 640, 360, nil)
	video.Attrs = map[string]string{"poster": "poster.png"}

	node := build(t, video)
	require.Len(t, node.Fills, 1)
	assert.Equal(t, "poster.png", node.Fills[0].URL)
}

func TestClassifySVGAsset(t *testing.T) {
	svg := testutil.Elem("svg", 0, 0, 24, 24, nil)
	svg.SVG = `<svg viewBox="0 0 24 24"><path d="M0 0h24v24z"/></svg>`

	node := build(t, svg)
	assert.Equal(t, ir.LayerFrame, node.Type)
	require.NotNil(t, node.Asset)
	assert.Equal(t, ir.AssetSVG, node.Asset.Kind)
	assert.Contains(t, string(node.Asset.Data), "<path")
	// The subtree is opaque: no child layers.
	assert.Empty(t, node.Children)
}

func TestClassifySVGWithoutPayloadWalksChildren(t *testing.T) {
	circle := testutil.Elem("circle", 4, 4, 16, 16, nil)
	svg := testutil.Elem("svg", 0, 0, 24, 24, nil, circle)

	node := build(t, svg)
	assert.Nil(t, node.Asset)
	require.Len(t, node.Children, 1)
	assert.Equal(t, ir.LayerEllipse, node.Children[0].Type)
}

func TestClassifyPillShape(t *testing.T) {
	avatar := testutil.Elem("div", 0, 0, 48, 48, map[string]string{
		"border-top-left-radius":     "50px",
		"border-top-right-radius":    "50px",
		"border-bottom-right-radius": "50px",
		"border-bottom-left-radius":  "50px",
		"background-color":           "#ccc",
	})
	node := build(t, avatar)
	assert.Equal(t, ir.LayerEllipse, node.Type)
}

func TestClassifyPillNeedsNearSquare(t *testing.T) {
	// A rounded bar is wide, not square: stays a Frame.
	bar := testutil.Elem("div", 0, 0, 300, 48, map[string]string{
		"border-top-left-radius":     "24px",
		"border-top-right-radius":    "24px",
		"border-bottom-right-radius": "24px",
		"border-bottom-left-radius":  "24px",
	})
	assert.Equal(t, ir.LayerFrame, build(t, bar).Type)
}

func TestClassifyText(t *testing.T) {
	span := testutil.WithText(testutil.Elem("span", 0, 0, 120, 20, nil), "hello")
	node := build(t, span)
	assert.Equal(t, ir.LayerText, node.Type)
	assert.Equal(t, "hello", node.Characters)
	require.NotNil(t, node.TextStyle)
}

func TestClassifyTextRejectsBackground(t *testing.T) {
	// A filled button is a Frame with a synthesized Text child, never a
	// bare Text layer.
	btn := testutil.WithText(testutil.Elem("span", 0, 0, 120, 40, map[string]string{
		"background-color": "#0066ff",
	}), "Sign up")
	node := build(t, btn)
	assert.Equal(t, ir.LayerFrame, node.Type)
	require.Len(t, node.Children, 1)
	assert.Equal(t, ir.LayerText, node.Children[0].Type)
	assert.Equal(t, "Sign up", node.Children[0].Characters)
}

func TestClassifyTextRejectsSidePadding(t *testing.T) {
	padded := testutil.WithText(testutil.Elem("span", 0, 0, 120, 40, map[string]string{
		"padding-left":  "16px",
		"padding-right": "16px",
	}), "chip")
	assert.Equal(t, ir.LayerFrame, build(t, padded).Type)
}

func TestClassifyTextRejectsBlockChildren(t *testing.T) {
	inner := testutil.Elem("div", 0, 20, 120, 20, nil)
	el := testutil.WithText(testutil.Elem("span", 0, 0, 120, 40, nil, inner), "mixed")
	assert.Equal(t, ir.LayerFrame, build(t, el).Type)
}

func TestClassifyNonTextTagWithChildren(t *testing.T) {
	// Only the dedicated text tags may classify as Text while carrying
	// element children.
	child := testutil.Elem("span", 0, 0, 40, 20, map[string]string{"display": "inline"})
	div := testutil.WithText(testutil.Elem("div", 0, 0, 200, 20, nil, child), "hi")
	assert.Equal(t, ir.LayerFrame, build(t, div).Type)

	p := testutil.WithText(testutil.Elem("p", 0, 0, 200, 20, nil,
		testutil.Elem("b", 0, 0, 40, 20, map[string]string{"display": "inline"})), "hi")
	assert.Equal(t, ir.LayerText, build(t, p).Type)
}

func TestClassifyTable(t *testing.T) {
	td := testutil.Elem("td", 0, 0, 100, 30, nil)
	tr := testutil.Elem("tr", 0, 0, 200, 30, nil, td)
	table := testutil.Elem("table", 0, 0, 200, 30, nil, tr)

	node := build(t, table)
	assert.Equal(t, ir.LayerFrame, node.Type)
	require.Len(t, node.Children, 1)
	assert.Equal(t, ir.LayerFrame, node.Children[0].Type)
}

func TestClassifyGroup(t *testing.T) {
	g := testutil.Elem("g", 0, 0, 50, 50, nil,
		testutil.Elem("rect", 0, 0, 50, 50, nil))
	node := build(t, g)
	assert.Equal(t, ir.LayerGroup, node.Type)
	require.Len(t, node.Children, 1)
	assert.Equal(t, ir.LayerRectangle, node.Children[0].Type)
}
