package snapshot

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/pagelift/pagelift/internal/ir"
)

// FromHTML builds a snapshot from a static HTML document with inline
// style="" declarations and data-x/y/w/h geometry attributes. It exists
// for fixtures, tests, and the snapshot dev command; it performs no
// cascade — inline declarations are taken as already-computed values, the
// way a live provider would deliver them.
func FromHTML(r io.Reader, source string) (*Snapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("parse html: no body element")
	}

	snap := &Snapshot{
		Source:     source,
		CapturedAt: time.Unix(0, 0).UTC(),
		Viewport:   ir.Viewport{Width: 1280, Height: 800},
		Root:       elementFromNode(body),
	}
	if w := attrValue(body, "data-viewport-width"); w != "" {
		if f, err := strconv.ParseFloat(w, 64); err == nil {
			snap.Viewport.Width = f
		}
	}
	if h := attrValue(body, "data-viewport-height"); h != "" {
		if f, err := strconv.ParseFloat(h, 64); err == nil {
			snap.Viewport.Height = f
		}
	}
	return snap, nil
}

func elementFromNode(n *html.Node) *Element {
	el := &Element{
		Tag:   strings.ToLower(n.Data),
		Style: parseInlineStyle(attrValue(n, "style")),
		Box:   boxFromAttrs(n),
	}
	for _, a := range n.Attr {
		switch a.Key {
		case "style", "data-x", "data-y", "data-w", "data-h":
		default:
			if el.Attrs == nil {
				el.Attrs = map[string]string{}
			}
			el.Attrs[a.Key] = a.Val
		}
	}

	if el.Tag == "svg" {
		var sb strings.Builder
		if err := html.Render(&sb, n); err == nil {
			el.SVG = sb.String()
		}
		return el
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := strings.TrimSpace(c.Data)
			if text != "" {
				el.Texts = append(el.Texts, TextRun{Text: text, Pos: len(el.Children)})
			}
		case html.ElementNode:
			el.Children = append(el.Children, elementFromNode(c))
		}
	}
	return el
}

// boxFromAttrs reads geometry from data attributes, falling back to
// width/height in the inline style for sizes.
func boxFromAttrs(n *html.Node) *Box {
	box := &Box{}
	read := func(key string) (float64, bool) {
		v := attrValue(n, key)
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	if x, ok := read("data-x"); ok {
		box.X = x
	}
	if y, ok := read("data-y"); ok {
		box.Y = y
	}
	if w, ok := read("data-w"); ok {
		box.W = w
	}
	if h, ok := read("data-h"); ok {
		box.H = h
	}

	styles := parseInlineStyle(attrValue(n, "style"))
	if box.W == 0 {
		box.W = pxValue(styles["width"])
	}
	if box.H == 0 {
		box.H = pxValue(styles["height"])
	}
	return box
}

func pxValue(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInlineStyle splits a style attribute into a property map. Declared
// values stand in for computed ones; that is the fixture contract.
func parseInlineStyle(s string) map[string]string {
	styles := map[string]string{}
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		idx := strings.IndexByte(decl, ':')
		if idx <= 0 {
			continue
		}
		prop := strings.TrimSpace(decl[:idx])
		val := strings.TrimSpace(decl[idx+1:])
		if prop != "" && val != "" {
			styles[strings.ToLower(prop)] = val
		}
	}
	return styles
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
