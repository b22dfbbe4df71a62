package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pagelift/pagelift/internal/ir"
)

// CaptureInfo is one archive listing entry.
type CaptureInfo struct {
	CaptureID   string      `json:"capture_id"`
	ContentHash string      `json:"content_hash"`
	Source      string      `json:"source"`
	CapturedAt  time.Time   `json:"captured_at"`
	Viewport    ir.Viewport `json:"viewport"`
}

// SaveDocument writes a document into the archive as canonical JSON.
// Saving an identical capture again is a silent no-op: the row is keyed
// by content hash and inserts use ON CONFLICT DO NOTHING.
func (s *Store) SaveDocument(ctx context.Context, doc *ir.Document) error {
	hash, err := ir.ContentHash(doc.Root)
	if err != nil {
		return fmt.Errorf("save capture: %w", err)
	}
	data, err := ir.MarshalCanonical(doc)
	if err != nil {
		return fmt.Errorf("save capture: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO captures
		(capture_id, content_hash, source, captured_at, viewport_width, viewport_height, document)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING
	`,
		doc.CaptureID,
		hash,
		doc.Source,
		doc.CapturedAt.UTC().Format(time.RFC3339Nano),
		doc.Viewport.Width,
		doc.Viewport.Height,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save capture: %w", err)
	}
	return nil
}

// GetDocument loads a document by capture ID.
func (s *Store) GetDocument(ctx context.Context, captureID string) (*ir.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT document FROM captures WHERE capture_id = ?", captureID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("capture %s: not found", captureID)
	}
	if err != nil {
		return nil, fmt.Errorf("load capture %s: %w", captureID, err)
	}

	var doc ir.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("decode capture %s: %w", captureID, err)
	}
	return &doc, nil
}

// ListCaptures returns archive entries newest-first.
func (s *Store) ListCaptures(ctx context.Context) ([]CaptureInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT capture_id, content_hash, source, captured_at, viewport_width, viewport_height
		FROM captures
		ORDER BY captured_at DESC, capture_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list captures: %w", err)
	}
	defer rows.Close()

	var infos []CaptureInfo
	for rows.Next() {
		var info CaptureInfo
		var capturedAt string
		if err := rows.Scan(
			&info.CaptureID, &info.ContentHash, &info.Source,
			&capturedAt, &info.Viewport.Width, &info.Viewport.Height,
		); err != nil {
			return nil, fmt.Errorf("list captures: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, capturedAt)
		if err != nil {
			return nil, fmt.Errorf("list captures: bad timestamp %q: %w", capturedAt, err)
		}
		info.CapturedAt = t
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
