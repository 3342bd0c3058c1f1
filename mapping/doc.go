// Package mapping provides generic helpers for Go maps: merging with
// overwrite semantics, numeric accumulation with optional operand modifiers
// and value transformation.  Merge and value transformation come in a
// mutating flavour that updates the target in place and a read-only flavour
// that allocates a fresh result and leaves both inputs untouched.  The
// mutating flavours are not safe for concurrent use of the same map.
package mapping
