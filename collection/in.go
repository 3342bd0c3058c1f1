package collection

// In reports whether value equals one of the candidates.  Comparison uses the
// == operator of the element type, so string matching is case sensitive.
func In[T comparable](value T, candidates ...T) bool {
	for _, candidate := range candidates {
		if value == candidate {
			return true
		}
	}
	return false
}
