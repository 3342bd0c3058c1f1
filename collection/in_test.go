package collection

import "testing"

func TestIn(t *testing.T) {
	var testCases = []struct {
		value      string
		candidates []string
		found      bool
	}{
		{"a", []string{"a", "b", "c"}, true},
		{"c", []string{"a", "b", "c"}, true},
		{"d", []string{"a", "b", "c"}, false},
		{"", []string{"a", ""}, true},

		// Matching is case sensitive
		{"A", []string{"a", "b"}, false},

		// No candidates
		{"a", nil, false},
	}

	for i, tc := range testCases {
		if got := In(tc.value, tc.candidates...); got != tc.found {
			t.Fatalf("[%d] In(%q, %q) = %v; expected %v", i, tc.value, tc.candidates, got, tc.found)
		}
	}
}

func TestInNumbers(t *testing.T) {
	if !In(2, 1, 2, 3) {
		t.Fatalf("In(2, 1, 2, 3) = false; expected true")
	}
	if In(5, 1, 2, 3) {
		t.Fatalf("In(5, 1, 2, 3) = true; expected false")
	}
}
