package insertionset

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("insertionset: insertion index out of range")

// IndexOutOfRangeError reports the first pending insertion whose index falls
// outside 0..len(target) inclusive, together with the target length observed
// at validation time. It unwraps to ErrIndexOutOfRange.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d, target length %d", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// Insertion is a single pending insertion request. Index addresses the
// target slice as it stands when the batch is applied, before any of the
// batch's own insertions have landed; Index == len(target) appends at the
// tail.
type Insertion[T any] struct {
	Index   int
	Element T
}

func NewInsertion[T any](index int, element T) Insertion[T] {
	return Insertion[T]{Index: index, Element: element}
}
