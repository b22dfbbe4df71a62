package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefix for content-addressed identity. The version suffix enables
// future algorithm migration.
const domainDocument = "pagelift/document/v1"

// ContentHash computes the content-addressed hash of a layer tree.
// Format: SHA256(domain + 0x00 + canonicalJSON). The null separator
// prevents domain/data boundary ambiguity.
//
// The envelope (capture ID, timestamp, source) is excluded on purpose:
// the hash identifies what was captured, not when or from where. Identical
// style/geometry input therefore always hashes identically.
func ContentHash(root *LayerNode) (string, error) {
	data, err := MarshalCanonical(root)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(domainDocument))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
