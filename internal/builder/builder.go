// Package builder is the recursive element classifier and composer: it
// walks the input snapshot depth-first, resolves visual attributes through
// the style resolvers, finalizes auto-layout through the layout
// inferencer once children are built, and emits the layer tree.
//
// The transform is synchronous, single-threaded and pure: identical
// snapshots always yield byte-identical documents. All I/O-bearing work
// (style extraction, icon rasterization, asset resolution) belongs to
// collaborators invoked around this core.
package builder

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pagelift/pagelift/internal/css"
	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/layout"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/style"
)

// IconRasterizer renders an icon-font glyph to raster image bytes.
// Returning empty bytes signals "no renderable content"; the builder then
// falls back to emitting the raw text.
type IconRasterizer interface {
	Rasterize(glyph, fontFamily string, fontSize float64) ([]byte, error)
}

// Builder assembles layer trees from snapshots.
type Builder struct {
	cfg   Config
	log   *zap.Logger
	icons IconRasterizer
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a logger for debug-level notes on skipped or
// degraded values. Logging never affects the output tree.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithIconRasterizer attaches the out-of-process glyph rasterizer used by
// pseudo-element capture.
func WithIconRasterizer(r IconRasterizer) Option {
	return func(b *Builder) { b.icons = r }
}

// New creates a Builder with the given configuration.
func New(cfg Config, opts ...Option) *Builder {
	b := &Builder{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildDocument runs one full capture: the snapshot's element tree becomes
// a layer tree wrapped in its versioned envelope. The returned document is
// read-only from the builder's perspective; it is never mutated after it
// is returned.
func (b *Builder) BuildDocument(snap *snapshot.Snapshot) (*ir.Document, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	// The capture root keeps its page-absolute box; only the external
	// consumer rebases it.
	root, err := b.buildLayer(snap.Root, origin{}, 0)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("build document: root element yields no layer")
	}

	hash, err := ir.ContentHash(root)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	return &ir.Document{
		SchemaVersion: ir.SchemaVersion,
		CoreVersion:   ir.CoreVersion,
		CaptureID:     ir.CaptureIDFor(hash),
		CapturedAt:    snap.CapturedAt,
		Source:        snap.Source,
		Viewport:      snap.Viewport,
		Root:          root,
	}, nil
}

// origin is the parent content origin child geometry is made relative to.
type origin struct {
	X, Y float64
}

// buildLayer converts one element. A nil return is a normal structural
// skip, not an error: non-visual tags, invisible elements (unless hidden
// capture is requested), zero-area boxes, and nodes past the depth bound
// all yield nil.
func (b *Builder) buildLayer(el *snapshot.Element, parent origin, depth int) (*ir.LayerNode, error) {
	if el.Box == nil || el.Style == nil {
		return nil, &snapshot.ContractError{Path: el.Tag, Field: "box/style"}
	}
	if nonVisualTags[el.Tag] {
		return nil, nil
	}
	c := el.Computed()
	if !c.IsVisible() && !b.cfg.IncludeHidden {
		return nil, nil
	}
	if el.Box.Area() == 0 {
		return nil, nil
	}
	if depth > b.cfg.MaxDepth {
		b.log.Debug("depth bound exceeded, skipping subtree",
			zap.String("tag", el.Tag), zap.Int("depth", depth))
		return nil, nil
	}

	node := &ir.LayerNode{
		Name:         el.Tag,
		X:            el.Box.X - parent.X,
		Y:            el.Box.Y - parent.Y,
		W:            el.Box.W,
		H:            el.Box.H,
		Opacity:      c.Opacity(),
		Visible:      c.IsVisible(),
		ZIndex:       c.ZIndex(),
		FlexGrow:     c.Float("flex-grow", 0),
		CornerRadius: style.ResolveCornerRadius(c),
	}
	if deg, ok := css.ParseRotation(c.Get("transform", "")); ok {
		node.RotationDeg = deg
	}
	switch c.PositionMode() {
	case style.PositionAbsolute, style.PositionFixed:
		node.AbsolutePositioned = true
	}

	class := b.classify(el, c)
	node.Type = class.layerType

	switch class.role {
	case roleText:
		b.buildTextLayer(node, el, c)
		return node, nil

	case roleImage:
		node.Fills = []ir.Paint{ir.ImagePaint(class.imageURL, ir.ScaleFill)}
		node.Stroke = style.ResolveStroke(c)
		node.Effects = style.ResolveEffects(c, false)
		return node, nil

	case roleVectorAsset:
		// The svg subtree is captured whole as an opaque asset; its
		// children are not individually walked.
		node.Asset = &ir.Asset{Kind: ir.AssetSVG, Data: []byte(el.SVG)}
		node.Effects = style.ResolveEffects(c, false)
		return node, nil
	}

	node.Fills = style.ResolveFills(c)
	node.Stroke = style.ResolveStroke(c)
	node.Effects = style.ResolveEffects(c, false)
	if node.Type == ir.LayerFrame {
		node.ClipsContent = c.ClipsContent()
	}

	if class.role == roleLeaf {
		return node, nil
	}

	if err := b.buildChildren(node, el, c, depth); err != nil {
		return nil, err
	}
	return node, nil
}

// buildChildren recurses into the element's children, synthesizes text and
// pseudo-element nodes, repositions fixed/sticky children, finalizes
// auto-layout, and sorts the result into paint order.
func (b *Builder) buildChildren(node *ir.LayerNode, el *snapshot.Element, c style.Computed, depth int) error {
	childOrigin := origin{X: el.Box.X, Y: el.Box.Y}

	var children []*ir.LayerNode
	var fixed []*ir.LayerNode
	for _, childEl := range el.Children {
		childNode, err := b.buildLayer(childEl, childOrigin, depth+1)
		if err != nil {
			return err
		}
		if childNode == nil {
			continue
		}
		switch childEl.Computed().PositionMode() {
		case style.PositionFixed, style.PositionSticky:
			fixed = append(fixed, childNode)
		}
		children = append(children, childNode)
	}

	if text := b.synthesizeText(el, c, childOrigin); text != nil {
		children = append(children, text)
	}

	if before := b.pseudoLayer(el.Before, el, childOrigin); before != nil {
		children = append([]*ir.LayerNode{before}, children...)
	}
	if after := b.pseudoLayer(el.After, el, childOrigin); after != nil {
		children = append(children, after)
	}

	if len(fixed) > 0 {
		layout.RepositionFixed(b.cfg.Layout, fixed, flowOnly(children, fixed))
	}

	if node.Type == ir.LayerFrame {
		al, source := layout.Infer(c)
		if al != nil {
			children = layout.InferGaps(b.cfg.Layout, al, source, children)
			layout.DetectCrossCentering(b.cfg.Layout, al, el.Box.W, children)
			node.AutoLayout = al
		}
	}

	// Ascending z-index so later entries paint on top. This is the one
	// paint-order contract the whole tree obeys.
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].ZIndex < children[j].ZIndex
	})
	node.Children = children
	return nil
}

// flowOnly filters out the fixed set from children.
func flowOnly(children, fixed []*ir.LayerNode) []*ir.LayerNode {
	isFixed := make(map[*ir.LayerNode]bool, len(fixed))
	for _, f := range fixed {
		isFixed[f] = true
	}
	var flow []*ir.LayerNode
	for _, ch := range children {
		if !isFixed[ch] && !ch.AbsolutePositioned {
			flow = append(flow, ch)
		}
	}
	return flow
}

// nonVisualTags never produce layers.
var nonVisualTags = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"meta":     true,
	"link":     true,
	"title":    true,
	"base":     true,
	"noscript": true,
	"template": true,
	"source":   true,
	"track":    true,
	"param":    true,
	"col":      true,
	"colgroup": true,
	"datalist": true,
	"optgroup": true,
	"option":   true,
	"area":     true,
}
