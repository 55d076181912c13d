package insertionset

/*

# Batched insertions for slices

Inserting a single element into the middle of a slice costs O(n), because
every element after the insertion point has to move over by one. Doing that
in a loop is quadratic. This package lets the caller queue any number of
(index, element) insertion requests against a slice and then commit all of
them in one pass, so the total cost is O(n + m) plus a sort of the m
requests, no matter how many there are or where they land.

The package provides:

- small, composable pieces in the same spirit as an append-only log:
  requests accumulate cheaply, commitment happens once
- a two-phase contract: accumulate, then validate-and-commit
- strictly in-place merging with at most one reallocation of the target

## Two phases

Phase 1 is accumulation. InsertionSet records each request together with its
submission rank and does not look at the target slice at all. Indexes are
*not* validated here. That is deliberate: the requests address positions in
the target as it will be at commit time, and the target is free to keep
growing (by appends elsewhere) while the set is being built.

Phase 2 is Apply. It first validates every pending index against the target
length, touching nothing if any index is out of range, so a failed Apply is
fully recoverable and never partially applied. It then orders the requests
by (index, submission rank) and merges them into the target in a single
backward sweep.

## Ordering

All indexes address the *original* slice, before any of the batch has been
applied. An index of len(target) means append at the tail. When several
requests share an index, they end up adjacent, in the order they were
submitted, immediately before the element that originally occupied that
index. So for target [a, b, c] and requests (1,x), (1,y), (3,z) the result
is [a, x, y, b, c, z].

## The merge

The merge works backward through the sorted requests to keep every element
movement down to a single block copy. Given [1, 4, 5, 7, 11] and the sorted
requests (0,0), (1,2), (1,3), (4,9), the target is first grown (once) to
make room for 4 more elements:

	[1, 4, 5, 7, 11, _, _, _, _]

The highest request is (4,9), so the suffix starting at original index 4 is
copied to the far end, and 9 is placed in front of it:

	[1, 4, 5, 7, _, _, _, 9, 11]

The element 11 is now in its final position and never moves again. The next
requests are the pair at index 1, so the suffix starting at original index 1
moves next, followed by the pair in submission order:

	[1, _, _, _, 4, 5, 7, 9, 11]
	[1, _, 2, 3, 4, 5, 7, 9, 11]

Finally (0,0) shifts the remaining prefix and fills the last gap:

	[0, 1, 2, 3, 4, 5, 7, 9, 11]

Each original element moved at most once, which is the entire point of
batching.

UpdatedLocations runs the same arithmetic without moving anything, reporting
where every element (original and pending) will land. This is useful when
other bookkeeping tracks positions in the slice and has to be remapped after
a batch commits.

The set is single-threaded by contract. It has no locks and no notion of
concurrent callers; the target slice is exclusively the engine's for the
duration of Apply.

*/
