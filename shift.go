package insertionset

import "slices"

// bulkShifter opens gaps in a slice for a batch of insertions, moving each
// original element at most once.
//
// The buffer has three regions. buf[:origLen] holds original elements that
// have not moved yet. buf[shiftedStart:] holds elements already in their
// final positions. The middle, buf[origLen:shiftedStart], is stale storage
// waiting to be overwritten. The caller works from the highest insertion
// index down, alternating shiftSuffix and place; the merge is complete when
// the middle region closes, i.e. shiftedStart == origLen.
type bulkShifter[T any] struct {
	buf          []T
	origLen      int
	shiftedStart int
}

// newBulkShifter grows target once to make room for the pending insertions.
func newBulkShifter[T any](target []T, pending int) bulkShifter[T] {
	n := len(target)
	return bulkShifter[T]{
		buf:          grow(target, pending),
		origLen:      n,
		shiftedStart: n + pending,
	}
}

func (b *bulkShifter[T]) finished() bool {
	return b.shiftedStart == b.origLen
}

// shiftSuffix block-copies the original elements from start onward to the
// front of the shifted region. Those elements are then final and never move
// again. The caller must ensure start <= origLen; indexes are validated
// before any shifting begins.
func (b *bulkShifter[T]) shiftSuffix(start int) {
	moved := b.origLen - start
	if moved == 0 {
		return
	}
	copy(b.buf[b.shiftedStart-moved:b.shiftedStart], b.buf[start:b.origLen])
	b.shiftedStart -= moved
	b.origLen = start
}

// place writes elem immediately before the shifted region, extending it by
// one. The caller must have left room with shiftSuffix.
func (b *bulkShifter[T]) place(elem T) {
	b.shiftedStart--
	b.buf[b.shiftedStart] = elem
}

// finish returns the fully merged buffer. Valid only once the middle region
// has closed.
func (b *bulkShifter[T]) finish() []T {
	return b.buf
}

// grow returns target extended by room elements, reallocating at most once.
// The extension holds stale values that the merge overwrites.
func grow[T any](target []T, room int) []T {
	return slices.Grow(target, room)[:len(target)+room]
}
