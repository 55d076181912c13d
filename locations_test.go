package insertionset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdatedLocationsWorkedExample(t *testing.T) {
	s := New(
		NewInsertion(0, 0),
		NewInsertion(1, 2),
		NewInsertion(1, 3),
		NewInsertion(4, 9),
	)

	locs, err := s.UpdatedLocations(5)
	require.NoError(t, err)
	require.Equal(t, []Location{
		{Kind: OriginInsertion, Source: 0, Final: 0},
		{Kind: OriginElement, Source: 0, Final: 1},
		{Kind: OriginInsertion, Source: 1, Final: 2},
		{Kind: OriginInsertion, Source: 2, Final: 3},
		{Kind: OriginElement, Source: 1, Final: 4},
		{Kind: OriginElement, Source: 2, Final: 5},
		{Kind: OriginElement, Source: 3, Final: 6},
		{Kind: OriginInsertion, Source: 3, Final: 7},
		{Kind: OriginElement, Source: 4, Final: 8},
	}, locs)

	// Reporting does not consume the batch; applying it afterwards puts each
	// element exactly where the report said it would land.
	target := []int{1, 4, 5, 7, 11}
	require.Equal(t, 4, s.Len())
	require.NoError(t, s.Apply(&target))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 7, 9, 11}, target)
}

func TestUpdatedLocationsEmptySet(t *testing.T) {
	var s InsertionSet[string]
	locs, err := s.UpdatedLocations(3)
	require.NoError(t, err)
	require.Equal(t, []Location{
		{Kind: OriginElement, Source: 0, Final: 0},
		{Kind: OriginElement, Source: 1, Final: 1},
		{Kind: OriginElement, Source: 2, Final: 2},
	}, locs)
}

func TestUpdatedLocationsEmptyTarget(t *testing.T) {
	s := New(NewInsertion(0, "p"), NewInsertion(0, "q"))
	locs, err := s.UpdatedLocations(0)
	require.NoError(t, err)
	require.Equal(t, []Location{
		{Kind: OriginInsertion, Source: 0, Final: 0},
		{Kind: OriginInsertion, Source: 1, Final: 1},
	}, locs)
}

func TestUpdatedLocationsOutOfRange(t *testing.T) {
	s := New(NewInsertion(4, "x"))
	locs, err := s.UpdatedLocations(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Nil(t, locs)

	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 4, oor.Index)
	require.Equal(t, 2, oor.Length)

	// The batch survives the failed report.
	require.Equal(t, 1, s.Len())
}
