// Package markdown renders Fathom meeting records as human-readable
// markdown.
//
// Every function in this package is pure: no network, no filesystem, no
// clock. The export timestamp in the document footer is an explicit
// parameter supplied by the caller, so the same input always produces the
// same output.
//
// The package covers:
//   - Full meeting documents with a fixed section order
//   - Meeting list tables
//   - Transcript rendering with consecutive-speaker grouping
//   - Deterministic, filesystem-safe filenames
//   - Elapsed-time formatting
package markdown
