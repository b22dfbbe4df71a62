package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/testutil"
)

func TestUnquoteContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted", `"hello"`, "hello"},
		{"single quoted", `'hi'`, "hi"},
		{"none", "none", ""},
		{"normal", "normal", ""},
		{"empty", "", ""},
		{"empty quotes", `""`, ""},
		{"unicode escape", `"\f105"`, ""},
		{"escape trailing space", `"\2022 item"`, "•item"},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"plain counter value", `"3."`, "3."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnquoteContent(tt.input))
		})
	}
}

func TestPseudoBeforeAndAfterPlacement(t *testing.T) {
	el := testutil.WithText(testutil.Elem("span", 0, 0, 200, 24, map[string]string{
		"background-color": "#eee",
	}), "label")
	el.Before = &snapshot.Pseudo{
		Style: map[string]string{"content": `"«"`, "font-size": "14px"},
		Box:   &snapshot.Box{X: 0, Y: 5, W: 14, H: 14},
	}
	el.After = &snapshot.Pseudo{
		Style: map[string]string{"content": `"»"`, "font-size": "14px"},
		Box:   &snapshot.Box{X: 186, Y: 5, W: 14, H: 14},
	}

	node := build(t, el)
	require.Len(t, node.Children, 3)
	// ::before precedes siblings, ::after follows them.
	assert.Equal(t, "«", node.Children[0].Characters)
	assert.Equal(t, "label", node.Children[1].Characters)
	assert.Equal(t, "»", node.Children[2].Characters)
}

func TestPseudoContentNoneSkipped(t *testing.T) {
	el := testutil.Elem("div", 0, 0, 100, 40, map[string]string{"background-color": "#fff"})
	el.Before = &snapshot.Pseudo{Style: map[string]string{"content": "none"}}
	node := build(t, el)
	assert.Empty(t, node.Children)
}

func TestPseudoDefaultBox(t *testing.T) {
	// Without a measured box the glyph gets a font-sized square at the
	// owner's origin.
	el := testutil.Elem("div", 50, 60, 100, 40, map[string]string{"background-color": "#fff"})
	el.Before = &snapshot.Pseudo{
		Style: map[string]string{"content": `"*"`, "font-size": "20px"},
	}
	node := build(t, el)
	require.Len(t, node.Children, 1)
	glyph := node.Children[0]
	assert.Equal(t, 0.0, glyph.X)
	assert.Equal(t, 0.0, glyph.Y)
	assert.Equal(t, 20.0, glyph.W)
	assert.Equal(t, 20.0, glyph.H)
}

// stubRasterizer returns fixed bytes or an error.
type stubRasterizer struct {
	data []byte
	err  error

	glyph  string
	family string
	size   float64
}

func (s *stubRasterizer) Rasterize(glyph, fontFamily string, fontSize float64) ([]byte, error) {
	s.glyph, s.family, s.size = glyph, fontFamily, fontSize
	return s.data, s.err
}

func iconOwner() *snapshot.Element {
	el := testutil.Elem("div", 0, 0, 100, 40, map[string]string{"background-color": "#fff"})
	el.Before = &snapshot.Pseudo{
		Style: map[string]string{
			"content":     `"\f105"`,
			"font-family": `"Font Awesome 5 Free"`,
			"font-size":   "16px",
		},
		Box: &snapshot.Box{X: 4, Y: 12, W: 16, H: 16},
	}
	return el
}

func TestPseudoIconRasterized(t *testing.T) {
	stub := &stubRasterizer{data: []byte{0x89, 'P', 'N', 'G'}}
	b := New(DefaultConfig(), WithIconRasterizer(stub))

	doc, err := b.BuildDocument(testutil.Snap(iconOwner()))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)

	icon := doc.Root.Children[0]
	assert.Equal(t, ir.LayerRectangle, icon.Type)
	require.NotNil(t, icon.Asset)
	assert.Equal(t, ir.AssetRaster, icon.Asset.Kind)
	assert.Equal(t, "", stub.glyph)
	assert.Equal(t, "Font Awesome 5 Free", stub.family)
	assert.Equal(t, 16.0, stub.size)
}

func TestPseudoIconRasterizerFailureFallsBack(t *testing.T) {
	stub := &stubRasterizer{err: errors.New("renderer unavailable")}
	b := New(DefaultConfig(), WithIconRasterizer(stub))

	doc, err := b.BuildDocument(testutil.Snap(iconOwner()))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)

	// Degraded output: the raw glyph text survives as a Text layer.
	fallback := doc.Root.Children[0]
	assert.Equal(t, ir.LayerText, fallback.Type)
	assert.Equal(t, "", fallback.Characters)
	assert.Nil(t, fallback.Asset)
}

func TestPseudoIconEmptyRasterFallsBack(t *testing.T) {
	stub := &stubRasterizer{data: nil}
	b := New(DefaultConfig(), WithIconRasterizer(stub))

	doc, err := b.BuildDocument(testutil.Snap(iconOwner()))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, ir.LayerText, doc.Root.Children[0].Type)
}

func TestPseudoIconNoRasterizerFallsBack(t *testing.T) {
	doc, err := New(DefaultConfig()).BuildDocument(testutil.Snap(iconOwner()))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, ir.LayerText, doc.Root.Children[0].Type)
}

func TestPseudoNonIconFontNeverRasterized(t *testing.T) {
	stub := &stubRasterizer{data: []byte{1}}
	el := testutil.Elem("div", 0, 0, 100, 40, map[string]string{"background-color": "#fff"})
	el.Before = &snapshot.Pseudo{
		Style: map[string]string{"content": `"→"`, "font-family": "Arial"},
	}
	doc, err := New(DefaultConfig(), WithIconRasterizer(stub)).BuildDocument(testutil.Snap(el))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, ir.LayerText, doc.Root.Children[0].Type)
	assert.Empty(t, stub.glyph)
}
