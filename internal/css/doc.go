// Package css implements pure string-to-structured-value parsers for the
// CSS value grammars the capture core consumes: colors, gradients, shadows,
// and rotation transforms.
//
// Parsing never fails the caller: every malformed value collapses to a
// documented default (opaque black for colors, a dropped entry for shadow
// and gradient stops, "no rotation" for transforms). The only stateful
// input is the optional fallback color for context-dependent keywords like
// currentColor.
package css
