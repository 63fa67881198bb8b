// Package diag defines the diagnostic model shared by the pipeline phases.
//
// Invariants:
//   - At most one Diagnostic is produced per evaluation attempt: the first
//     violation wins and the phase that found it stops scanning.
//   - Span columns always address the original user text, never the
//     normalized form (the unary marker occupies the same column as the '-'
//     it replaced, so no remapping is needed).
//
// Rendering lives in internal/diagfmt; this package is data only.
package diag
