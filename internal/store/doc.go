// Package store is the capture archive: finished layer documents saved
// into SQLite, keyed by content hash so identical captures deduplicate.
// The capture core never touches the archive; only the CLI and the
// regression tooling around it do.
package store
