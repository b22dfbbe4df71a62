package ir

import (
	"time"

	"github.com/google/uuid"
)

// Version constants for the document schema.
const (
	// SchemaVersion is the layer-document schema version.
	SchemaVersion = "1"

	// CoreVersion is the capture core version.
	CoreVersion = "0.1.0"
)

// captureNamespace is the fixed UUID namespace for capture IDs. Capture IDs
// are derived from the document content hash so identical captures get
// identical IDs.
var captureNamespace = uuid.MustParse("f2b5a6d4-3c8e-4f1a-9b57-0d6c2e84a711")

// Viewport is the size of the viewport the page was captured at.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is the versioned artifact crossing the core's boundary outward:
// the layer tree plus its capture envelope. It is handed to the consumer
// read-only; the core never mutates a document after returning it.
type Document struct {
	SchemaVersion string     `json:"schema_version"`
	CoreVersion   string     `json:"core_version"`
	CaptureID     string     `json:"capture_id"`
	CapturedAt    time.Time  `json:"captured_at"`
	Source        string     `json:"source"`
	Viewport      Viewport   `json:"viewport"`
	Root          *LayerNode `json:"root"`
}

// CaptureIDFor derives the deterministic capture ID for a content hash.
func CaptureIDFor(contentHash string) string {
	return uuid.NewSHA1(captureNamespace, []byte(contentHash)).String()
}
