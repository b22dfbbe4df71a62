// Package ir defines the portable design-layer tree produced by the capture
// core: colors, paints, strokes, effects, text styles, auto-layout
// descriptions, and the LayerNode tree itself.
//
// This package contains type definitions and serialization only. All other
// internal packages import ir; ir imports nothing internal. This keeps the
// layer model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Paint, Effect, and LayerNode.Type are closed variants with a Kind enum;
//     every consumption site switches exhaustively over the enum.
//   - Children are exclusively owned; no back references, no shared nodes.
//   - Child geometry is parent-relative; only the capture root keeps its
//     page-absolute box.
//   - Canonical serialization (canonical.go) is byte-deterministic so that
//     identical captures hash and diff identically.
package ir
