// Package timeconv converts timestamps between textual, epoch and structured
// representations.  Parsing accepts ISO-8601 text plus the numeric date
// conventions of a caller supplied locale, epoch helpers translate to and
// from Unix seconds, and a configurable formatter renders a chosen subset of
// ISO-8601 components.  Operations that depend on the current moment accept
// an injectable clock so behaviour stays deterministic under test.
package timeconv
