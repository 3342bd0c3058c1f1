// Package collection provides generic helpers for slices and in-memory
// sequences: zipping parallel key and value slices into a map, converting
// pair sequences, splitting large inputs into batches and simple membership
// tests.  Inputs are never mutated; batches are views over the original
// backing array rather than copies.
package collection
