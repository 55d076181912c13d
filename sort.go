package insertionset

// insertionSort sorts s in place with a plain insertion sort. Worst case is
// quadratic, but on an input that is already mostly sorted the running time
// is O(n*k) for average displacement k, which beats the general-purpose
// sorts on the small, nearly-ordered queues this package sees.
func insertionSort[E any](s []E, less func(a, b E) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
