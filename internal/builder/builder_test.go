package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/testutil"
)

func TestBuildDocumentEnvelope(t *testing.T) {
	root := testutil.Elem("body", 0, 0, 1280, 2000, map[string]string{
		"background-color": "#ffffff",
	})
	snap := testutil.Snap(root)

	doc, err := New(DefaultConfig()).BuildDocument(snap)
	require.NoError(t, err)
	assert.Equal(t, ir.SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, ir.CoreVersion, doc.CoreVersion)
	assert.Equal(t, "test://fixture", doc.Source)
	assert.Equal(t, 1280.0, doc.Viewport.Width)
	assert.NotEmpty(t, doc.CaptureID)
}

func TestBuildDocumentDeterministic(t *testing.T) {
	mk := func() *ir.Document {
		root := testutil.Elem("body", 0, 0, 1280, 800, nil,
			testutil.WithText(testutil.Elem("h1", 40, 40, 400, 48, map[string]string{
				"font-size": "32px",
			}), "Title"))
		doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
		require.NoError(t, err)
		return doc
	}

	a, b := mk(), mk()
	assert.Equal(t, a.CaptureID, b.CaptureID)

	ja, err := ir.MarshalCanonical(a)
	require.NoError(t, err)
	jb, err := ir.MarshalCanonical(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestBuildDocumentInvalidSnapshot(t *testing.T) {
	snap := testutil.Snap(testutil.Elem("body", 0, 0, 100, 100, nil))
	snap.Root.Style = nil
	_, err := New(DefaultConfig()).BuildDocument(snap)
	require.Error(t, err)
}

func TestChildCoordinatesRelative(t *testing.T) {
	child := testutil.Elem("div", 100, 250, 300, 100, map[string]string{
		"background-color": "#eee",
	})
	root := testutil.Elem("body", 0, 200, 1280, 600, nil, child)

	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)

	// The root keeps page coordinates; children are parent-relative.
	assert.Equal(t, 200.0, doc.Root.Y)
	layer := doc.Root.Children[0]
	assert.Equal(t, 100.0, layer.X)
	assert.Equal(t, 50.0, layer.Y)
}

func TestBuildSkipsNonVisual(t *testing.T) {
	root := testutil.Elem("body", 0, 0, 1280, 800, nil,
		testutil.Elem("script", 0, 0, 100, 100, nil),
		testutil.Elem("div", 0, 0, 100, 100, map[string]string{"background-color": "#000"}),
		testutil.Elem("div", 0, 0, 0, 100, nil),           // zero area
		testutil.Elem("div", 0, 100, 100, 100, map[string]string{"display": "none"}),
	)
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, "div", doc.Root.Children[0].Name)
}

func TestBuildIncludeHidden(t *testing.T) {
	root := testutil.Elem("body", 0, 0, 1280, 800, nil,
		testutil.Elem("div", 0, 0, 100, 100, map[string]string{"visibility": "hidden"}),
	)
	cfg := DefaultConfig()
	cfg.IncludeHidden = true
	doc, err := New(cfg).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	assert.False(t, doc.Root.Children[0].Visible)
}

func TestBuildDepthBound(t *testing.T) {
	deep := testutil.Elem("div", 0, 0, 10, 10, nil)
	node := deep
	for i := 0; i < 4; i++ {
		node = testutil.Elem("div", 0, 0, 10, 10, nil, node)
	}
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	doc, err := New(cfg).BuildDocument(testutil.Snap(node))
	require.NoError(t, err)

	depth := 0
	for n := doc.Root; len(n.Children) > 0; n = n.Children[0] {
		depth++
	}
	assert.Equal(t, 2, depth)
}

func TestZOrderSorting(t *testing.T) {
	root := testutil.Elem("body", 0, 0, 1280, 800, nil,
		testutil.Elem("div", 0, 0, 100, 100, map[string]string{"z-index": "5", "background-color": "#111"}),
		testutil.Elem("div", 0, 100, 100, 100, map[string]string{"z-index": "1", "background-color": "#222"}),
		testutil.Elem("div", 0, 200, 100, 100, map[string]string{"background-color": "#333"}),
	)
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 3)

	// Ascending z-index: later entries paint on top.
	assert.Equal(t, 0, doc.Root.Children[0].ZIndex)
	assert.Equal(t, 1, doc.Root.Children[1].ZIndex)
	assert.Equal(t, 5, doc.Root.Children[2].ZIndex)
}

func TestAbsolutePositioned(t *testing.T) {
	abs := testutil.Elem("div", 500, 30, 40, 40, map[string]string{
		"position":         "absolute",
		"background-color": "#f00",
	})
	root := testutil.Elem("body", 0, 0, 1280, 800, nil, abs)
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)
	assert.True(t, doc.Root.Children[0].AbsolutePositioned)
}

func TestFixedHeaderRepositioned(t *testing.T) {
	header := testutil.Elem("header", 0, 0, 1280, 64, map[string]string{
		"position":         "fixed",
		"background-color": "#fff",
	})
	content := testutil.Elem("main", 0, 64, 1280, 700, map[string]string{
		"background-color": "#fafafa",
	})
	root := testutil.Elem("body", 0, 0, 1280, 800, nil, header, content)

	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(root))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 2)

	// The elevated header sorts last (paints on top).
	main, hdr := doc.Root.Children[0], doc.Root.Children[1]
	assert.Equal(t, "header", hdr.Name)
	assert.True(t, hdr.AbsolutePositioned)
	assert.Equal(t, 1000, hdr.ZIndex)
	assert.Equal(t, 0.0, hdr.Y)
	// Flow content shifted up over the vacated band.
	assert.Equal(t, "main", main.Name)
	assert.Equal(t, 0.0, main.Y)
}

func TestFlexContainerAutoLayout(t *testing.T) {
	a := testutil.Elem("div", 16, 8, 100, 32, map[string]string{"background-color": "#111"})
	c := testutil.Elem("div", 140, 8, 100, 32, map[string]string{"background-color": "#222"})
	row := testutil.Elem("div", 0, 0, 400, 48, map[string]string{
		"display":         "flex",
		"align-items":     "center",
		"gap":             "24px",
		"padding-left":    "16px",
		"justify-content": "flex-start",
	}, a, c)

	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(row))
	require.NoError(t, err)

	al := doc.Root.AutoLayout
	require.NotNil(t, al)
	assert.Equal(t, ir.Horizontal, al.Direction)
	assert.Equal(t, ir.AlignCenterAxis, al.CrossAlign)
	assert.Equal(t, 24.0, al.ItemSpacing)
	assert.Equal(t, 16.0, al.PaddingLeft)
}

func TestBlockContainerCentering(t *testing.T) {
	// Two centered children out of two: block stack upgrades to centered
	// cross alignment.
	top := testutil.Elem("div", 340, 0, 600, 100, map[string]string{"background-color": "#111"})
	bottom := testutil.Elem("div", 440, 120, 400, 100, map[string]string{"background-color": "#222"})
	container := testutil.Elem("div", 0, 0, 1280, 240, nil, top, bottom)

	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(container))
	require.NoError(t, err)

	al := doc.Root.AutoLayout
	require.NotNil(t, al)
	assert.Equal(t, ir.Vertical, al.Direction)
	assert.Equal(t, ir.AlignCenterAxis, al.CrossAlign)
	assert.Equal(t, 20.0, al.ItemSpacing)
}

func TestRotationAndOpacity(t *testing.T) {
	el := testutil.Elem("div", 0, 0, 100, 100, map[string]string{
		"transform":        "rotate(45deg)",
		"opacity":          "0.8",
		"background-color": "#000",
	})
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(el))
	require.NoError(t, err)
	assert.Equal(t, 45.0, doc.Root.RotationDeg)
	assert.Equal(t, 0.8, doc.Root.Opacity)
}

func TestClipsContent(t *testing.T) {
	el := testutil.Elem("div", 0, 0, 100, 100, map[string]string{"overflow": "hidden"})
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(el))
	require.NoError(t, err)
	assert.True(t, doc.Root.ClipsContent)
}
