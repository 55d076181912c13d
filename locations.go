package insertionset

// OriginKind identifies where an element reported by UpdatedLocations
// originates.
type OriginKind uint8

const (
	// OriginElement marks an element of the original slice.
	OriginElement OriginKind = iota + 1
	// OriginInsertion marks a queued insertion.
	OriginInsertion
)

// Location reports where a single element will land once the batch is
// applied. For OriginElement, Source is the element's index in the original
// slice; for OriginInsertion it is the insertion's submission rank within
// the batch, counting from zero.
type Location struct {
	Kind   OriginKind
	Source int
	Final  int
}

// UpdatedLocations reports the final position of every element, both the
// originals of a slice of length originalLen and the queued insertions,
// without touching any slice. The result is ordered by final position and
// has length originalLen + Len().
//
// The queue is validated against originalLen under the same rules as Apply
// and is left intact either way, so the same batch can still be applied
// afterwards.
func (s *InsertionSet[T]) UpdatedLocations(originalLen int) ([]Location, error) {
	if err := s.validate(originalLen); err != nil {
		return nil, err
	}
	s.sortPending()

	// Mirrors the shifter's arithmetic. Final positions are a permutation of
	// 0..originalLen+m, so each location is written directly into its slot.
	locs := make([]Location, originalLen+len(s.pending))
	origLen := originalLen
	shiftedStart := len(locs)
	for k := len(s.pending) - 1; k >= 0; k-- {
		rec := s.pending[k]
		if moved := origLen - rec.index; moved > 0 {
			for i := 0; i < moved; i++ {
				final := shiftedStart - moved + i
				locs[final] = Location{Kind: OriginElement, Source: rec.index + i, Final: final}
			}
			shiftedStart -= moved
			origLen = rec.index
		}
		shiftedStart--
		locs[shiftedStart] = Location{Kind: OriginInsertion, Source: rec.seq, Final: shiftedStart}
	}
	for i := 0; i < origLen; i++ {
		locs[i] = Location{Kind: OriginElement, Source: i, Final: i}
	}
	return locs, nil
}
