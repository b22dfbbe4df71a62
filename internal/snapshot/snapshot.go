// Package snapshot defines the input side of the capture core: the
// style/geometry snapshot a provider extracts from a rendered page. Each
// element carries a flat map of computed CSS values and a measured box in
// one consistent coordinate space; the core never queries a live document
// itself.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/style"
)

// Box is a measured element box in page coordinates.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Area returns the box area.
func (b Box) Area() float64 { return b.W * b.H }

// TextRun is one directly-owned text node with its own rendered extents.
// The box may be absent when the provider could not measure the run. Pos
// is the number of element children preceding the run in document order,
// so mixed element/text content can be interleaved faithfully.
type TextRun struct {
	Text string `json:"text"`
	Pos  int    `json:"pos,omitempty"`
	Box  *Box   `json:"box,omitempty"`
}

// Pseudo is the resolved state of a ::before or ::after pseudo-element.
// Its content string sits in Style under "content".
type Pseudo struct {
	Style map[string]string `json:"style"`
	Box   *Box              `json:"box,omitempty"`
}

// Element is one node of the input tree.
type Element struct {
	Tag      string            `json:"tag"`
	Style    map[string]string `json:"style"`
	Box      *Box              `json:"box"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Texts    []TextRun         `json:"texts,omitempty"`
	Before   *Pseudo           `json:"before,omitempty"`
	After    *Pseudo           `json:"after,omitempty"`
	SVG      string            `json:"svg,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// Computed wraps the element's style map for resolver access.
func (e *Element) Computed() style.Computed { return style.Computed(e.Style) }

// Attr returns an attribute value or "".
func (e *Element) Attr(name string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Snapshot is one full capture input: the element tree plus its envelope.
type Snapshot struct {
	Source     string      `json:"source"`
	CapturedAt time.Time   `json:"captured_at"`
	Viewport   ir.Viewport `json:"viewport"`
	Root       *Element    `json:"root"`
}

// ContractError reports a malformed or incomplete snapshot handed in by
// the provider. It is the only error class the core propagates: parse
// fallbacks and structural skips are normal outcomes, a structurally
// absent required field is not.
type ContractError struct {
	Path  string
	Field string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("snapshot contract violation: missing %s at %s", e.Field, e.Path)
}

// Decode reads and validates a snapshot from JSON.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Validate checks the provider contract: every element the snapshot claims
// exists must carry a style map and a box.
func (s *Snapshot) Validate() error {
	if s.Root == nil {
		return &ContractError{Path: "root", Field: "root element"}
	}
	return validateElement(s.Root, "root")
}

func validateElement(e *Element, path string) error {
	if e.Tag == "" {
		return &ContractError{Path: path, Field: "tag"}
	}
	if e.Style == nil {
		return &ContractError{Path: path, Field: "style"}
	}
	if e.Box == nil {
		return &ContractError{Path: path, Field: "box"}
	}
	for i, child := range e.Children {
		if child == nil {
			return &ContractError{Path: fmt.Sprintf("%s.children[%d]", path, i), Field: "element"}
		}
		if err := validateElement(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
