package insertionset

// record is a pending insertion tagged with its submission rank. The rank
// breaks ties between insertions at the same index, so the merge order never
// depends on the sort being stable.
type record[T any] struct {
	index int
	elem  T
	seq   int
}

// InsertionSet accumulates insertion requests against a slice and commits
// them all in a single pass. The zero value is an empty set ready for use.
//
// A set must not be shared between goroutines, and the target slice must not
// be touched by anything else for the duration of Apply.
type InsertionSet[T any] struct {
	pending []record[T]
}

// New returns an empty set, optionally seeded with the given insertions in
// the order supplied.
func New[T any](insertions ...Insertion[T]) *InsertionSet[T] {
	s := &InsertionSet[T]{}
	for _, ins := range insertions {
		s.Push(ins)
	}
	return s
}

// Insert queues element for insertion before index. The index is not
// checked here; the target may still grow before the batch is applied, so
// validation is deferred to Apply. Amortized O(1).
//
// Insertions queued at the same index are applied in the order queued.
func (s *InsertionSet[T]) Insert(index int, element T) {
	s.pending = append(s.pending, record[T]{index: index, elem: element, seq: len(s.pending)})
}

// Push queues the given insertion.
func (s *InsertionSet[T]) Push(ins Insertion[T]) {
	s.Insert(ins.Index, ins.Element)
}

// Len returns the number of insertions currently queued.
func (s *InsertionSet[T]) Len() int { return len(s.pending) }

// IsEmpty reports whether no insertions are queued.
func (s *InsertionSet[T]) IsEmpty() bool { return len(s.pending) == 0 }

// Apply commits every queued insertion into *target in one pass, leaving the
// set empty and ready for a new batch.
//
// Every original element keeps its relative order; insertions push later
// elements outward. The target's backing array is reallocated at most once,
// and each element is moved at most once, so the total cost is O(n + m)
// after ordering the m requests.
//
// If any queued index is outside 0..len(*target) inclusive, Apply returns an
// IndexOutOfRangeError and neither the target nor the set is modified.
func (s *InsertionSet[T]) Apply(target *[]T) error {
	if len(s.pending) == 0 {
		return nil
	}
	if err := s.validate(len(*target)); err != nil {
		return err
	}
	s.sortPending()

	sh := newBulkShifter(*target, len(s.pending))
	for k := len(s.pending) - 1; k >= 0; k-- {
		sh.shiftSuffix(s.pending[k].index)
		sh.place(s.pending[k].elem)
	}
	*target = sh.finish()

	// Drop element references so the batch does not pin them.
	clear(s.pending)
	s.pending = s.pending[:0]
	return nil
}

// Applied is Apply for callers passing the target by value; it returns the
// merged slice, which may share backing storage with the input.
func (s *InsertionSet[T]) Applied(target []T) ([]T, error) {
	if err := s.Apply(&target); err != nil {
		return nil, err
	}
	return target, nil
}

// validate checks every queued index against the target length. It runs
// before anything is mutated, which is what makes a failed Apply
// all-or-nothing. The first violation in submission order is reported.
func (s *InsertionSet[T]) validate(length int) error {
	for _, rec := range s.pending {
		if rec.index < 0 || rec.index > length {
			return &IndexOutOfRangeError{Index: rec.index, Length: length}
		}
	}
	return nil
}

// sortPending orders the queue by (index, submission rank). Callers tend to
// queue insertions in roughly ascending index order, so the queue is usually
// close to sorted already, which is the case insertion sort wins on.
func (s *InsertionSet[T]) sortPending() {
	insertionSort(s.pending, func(a, b record[T]) bool {
		if a.index != b.index {
			return a.index < b.index
		}
		return a.seq < b.seq
	})
}
