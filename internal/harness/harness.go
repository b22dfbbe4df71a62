// Package harness runs snapshot fixtures through the builder and compares
// the resulting documents against golden files. Canonical JSON keeps the
// comparison byte-deterministic, which is exactly the reproducibility the
// downstream regression tooling depends on.
package harness

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/pagelift/pagelift/internal/builder"
	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
)

// RunWithGolden decodes the snapshot fixture, builds a document with the
// given configuration, and asserts its canonical JSON against
// testdata/golden/{name}.golden.
//
// To regenerate golden files:
//
//	go test ./... -update
func RunWithGolden(t *testing.T, name, snapshotPath string, cfg builder.Config) {
	t.Helper()

	f, err := os.Open(snapshotPath)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	snap, err := snapshot.Decode(f)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	doc, err := builder.New(cfg).BuildDocument(snap)
	if err != nil {
		t.Fatalf("build document: %v", err)
	}
	AssertGolden(t, name, doc)
}

// AssertGolden compares an already-built document against a golden file.
func AssertGolden(t *testing.T, name string, doc *ir.Document) {
	t.Helper()

	data, err := ir.MarshalCanonical(doc)
	if err != nil {
		t.Fatalf("canonical marshal: %v", err)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
