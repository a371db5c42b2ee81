// Package kernel provides the shared primitives of the dispatch domain model.
//
// The package includes:
//   - UUID: the identifier value object used by every aggregate
//   - Clock: the source of "now" injected into operations that stamp time
//
// These primitives are immutable and safe for concurrent use.
package kernel
