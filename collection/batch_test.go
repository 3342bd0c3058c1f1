package collection

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	testCases := []struct {
		name   string
		items  []int
		size   int
		expect [][]int
	}{
		{
			name:   "even split",
			items:  []int{1, 2, 3, 4},
			size:   2,
			expect: [][]int{{1, 2}, {3, 4}},
		},
		{
			name:   "shorter tail",
			items:  []int{1, 2, 3, 4, 5},
			size:   2,
			expect: [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:   "size exceeds input",
			items:  []int{1, 2},
			size:   10,
			expect: [][]int{{1, 2}},
		},
		{
			name:   "size one",
			items:  []int{1, 2, 3},
			size:   1,
			expect: [][]int{{1}, {2}, {3}},
		},
		{
			name:   "empty input",
			items:  nil,
			size:   3,
			expect: nil,
		},
		{
			name:   "non-positive size falls back to default",
			items:  []int{1, 2, 3},
			size:   -1,
			expect: [][]int{{1, 2, 3}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Batch(tc.items, tc.size))
		})
	}
}

func TestBatchDefaultSize(t *testing.T) {
	items := make([]int, 2*DefaultBatchSize+501)
	batches := Batch(items, 0)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], DefaultBatchSize)
	assert.Len(t, batches[2], 501)
}

func TestBatchReconstructsInput(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	batches := Batch(items, 7)

	require.Len(t, batches, 15)
	var flat []int
	for _, batch := range batches {
		flat = append(flat, batch...)
	}
	assert.Equal(t, items, flat)
}

func TestBatchSharesBackingArray(t *testing.T) {
	items := []int{1, 2, 3, 4}
	batches := Batch(items, 2)
	batches[1][0] = 99
	assert.Equal(t, []int{1, 2, 99, 4}, items)
}

func TestBatchSeq(t *testing.T) {
	var batches [][]int
	for batch := range BatchSeq(slices.Values([]int{1, 2, 3, 4, 5}), 2) {
		batches = append(batches, batch)
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, batches)
}

func TestBatchSeqMatchesBatch(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	var batches [][]int
	for batch := range BatchSeq(slices.Values(items), 3) {
		batches = append(batches, batch)
	}
	assert.Equal(t, Batch(items, 3), batches)
}

func TestBatchSeqEarlyStop(t *testing.T) {
	seen := 0
	for range BatchSeq(slices.Values(make([]int, 100)), 10) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestBatchSeqEmpty(t *testing.T) {
	for range BatchSeq(slices.Values([]int(nil)), 4) {
		t.Fatal("expected no batches")
	}
}
