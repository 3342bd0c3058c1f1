package collection

import "iter"

// DefaultBatchSize is used whenever a caller passes a non-positive batch size.
const DefaultBatchSize = 1000

// Batch splits items into consecutive batches of at most size elements; the
// last batch may be shorter.  Batches are subslices sharing the backing array
// of items, so no element is copied.  An empty or nil input yields no batches.
func Batch[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if len(items) == 0 {
		return nil
	}
	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end:end])
	}
	return batches
}

// BatchSeq is the lazy counterpart of Batch for sequences that are not, or
// should not be, materialized up front.  The source is traversed once and
// each batch is a freshly allocated slice.
func BatchSeq[T any](source iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, size)
		for item := range source {
			batch = append(batch, item)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}
