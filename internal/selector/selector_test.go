package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/universe"
)

func testWindow() Window {
	return Window{
		I: Axis{Min: 0, Max: 9},
		J: Axis{Min: 0, Max: 9},
		K: Axis{Min: 0, Max: 2},
	}
}

func TestNewStartsAtMidpoint(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	snap := s.Snapshot()
	assert.Equal(t, 4, snap.CursorI)
	assert.Equal(t, 4, snap.CursorJ)
	assert.Equal(t, 1, snap.LayerK)
	assert.Equal(t, Active, snap.State)
	assert.Zero(t, snap.Count)
}

func TestRectangularMoves(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.Move(East)
	s.Move(East)
	s.Move(South)
	snap := s.Snapshot()
	assert.Equal(t, 6, snap.CursorI)
	assert.Equal(t, 5, snap.CursorJ)

	s.Move(West)
	s.Move(North)
	snap = s.Snapshot()
	assert.Equal(t, 5, snap.CursorI)
	assert.Equal(t, 4, snap.CursorJ)
}

func TestMoveStopsAtWindowEdge(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	for range 20 {
		s.Move(West)
	}
	assert.Equal(t, 0, s.Snapshot().CursorI)

	for range 20 {
		s.Move(North)
	}
	assert.Equal(t, 0, s.Snapshot().CursorJ)
}

func TestHexMoveBlockedAtEdge(t *testing.T) {
	// From an even row at i=0, NorthWest targets i=-1 and must be refused.
	w := Window{I: Axis{0, 4}, J: Axis{0, 4}, K: Axis{0, 0}}
	s := New(universe.Hexagonal, w)
	for range 10 {
		s.Move(West)
	}
	snap := s.Snapshot()
	require.Equal(t, 0, snap.CursorI)
	require.Equal(t, 2, snap.CursorJ)

	s.Move(NorthWest)
	snap = s.Snapshot()
	assert.Equal(t, 0, snap.CursorI)
	assert.Equal(t, 2, snap.CursorJ)
}

func TestHexMovesFollowOffsetLayout(t *testing.T) {
	w := Window{I: Axis{0, 9}, J: Axis{0, 9}, K: Axis{0, 0}}
	s := New(universe.Hexagonal, w)
	snap := s.Snapshot()
	require.Equal(t, 4, snap.CursorI)
	require.Equal(t, 4, snap.CursorJ)

	// Even row: SouthEast keeps i.
	s.Move(SouthEast)
	snap = s.Snapshot()
	assert.Equal(t, 4, snap.CursorI)
	assert.Equal(t, 5, snap.CursorJ)

	// Now on an odd row: SouthEast advances i.
	s.Move(SouthEast)
	snap = s.Snapshot()
	assert.Equal(t, 5, snap.CursorI)
	assert.Equal(t, 6, snap.CursorJ)
}

func TestChangeLayerClamped(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.ChangeLayer(10)
	assert.Equal(t, 2, s.Snapshot().LayerK)
	s.ChangeLayer(-10)
	assert.Equal(t, 0, s.Snapshot().LayerK)
	s.ChangeLayer(1)
	assert.Equal(t, 1, s.Snapshot().LayerK)
}

func TestToggle(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.Toggle()
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.True(t, snap.IsSelected(4, 4, 1))

	s.Toggle()
	snap = s.Snapshot()
	assert.Zero(t, snap.Count)
	assert.False(t, snap.IsSelected(4, 4, 1))
}

func TestSelectAllAndClear(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.SelectAll()
	assert.Equal(t, 300, s.Snapshot().Count)

	s.Clear()
	assert.Zero(t, s.Snapshot().Count)
}

func TestFinalizeEmptyStaysActive(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	_, err := s.Finalize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, lattice.ErrEmptySelection))
	assert.Equal(t, Active, s.State())

	s.Toggle()
	_, err = s.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, Finalized, s.State())
}

func TestFinalizeSingleCell(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.Toggle()
	spec, err := s.Finalize()
	require.NoError(t, err)
	assert.False(t, spec.IsDiscrete())
	assert.Equal(t, "[4 4 1]", spec.RangeToken())
}

func TestFinalizeFullWindowIsContiguous(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.SelectAll()
	spec, err := s.Finalize()
	require.NoError(t, err)
	assert.False(t, spec.IsDiscrete())
	assert.Equal(t, "[0:9 0:9 0:2]", spec.RangeToken())
	assert.Equal(t, 300, spec.ElementCount())
}

func TestFinalizeContiguousBlock(t *testing.T) {
	// A 2x3 block on one layer collapses the k axis to a single index.
	s := New(universe.Rectangular, testWindow())
	for _, p := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}, {4, 6}, {5, 6}} {
		moveTo(s, p[0], p[1])
		s.Toggle()
	}
	spec, err := s.Finalize()
	require.NoError(t, err)
	assert.False(t, spec.IsDiscrete())
	assert.Equal(t, "[4:5 4:6 1]", spec.RangeToken())
}

func TestFinalizeGapYieldsDiscrete(t *testing.T) {
	// Bounding box 2x2 but only three cells: count != volume.
	s := New(universe.Rectangular, testWindow())
	for _, p := range [][2]int{{4, 4}, {5, 4}, {5, 5}} {
		moveTo(s, p[0], p[1])
		s.Toggle()
	}
	spec, err := s.Finalize()
	require.NoError(t, err)
	require.True(t, spec.IsDiscrete())
	assert.Equal(t, []lattice.Element{
		{I: 4, J: 4, K: 1}, {I: 5, J: 4, K: 1}, {I: 5, J: 5, K: 1},
	}, spec.Elements())
}

func TestFinalizeDiscreteSortedAscending(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	// Two opposite corners, selected far end first.
	moveTo(s, 9, 9)
	s.Toggle()
	moveTo(s, 0, 0)
	s.Toggle()
	spec, err := s.Finalize()
	require.NoError(t, err)
	require.True(t, spec.IsDiscrete())
	assert.Equal(t, []lattice.Element{
		{I: 0, J: 0, K: 1}, {I: 9, J: 9, K: 1},
	}, spec.Elements())
}

func TestOperationsAfterEndAreNoOps(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.Toggle()
	_, err := s.Finalize()
	require.NoError(t, err)

	s.Move(East)
	s.Toggle()
	s.SelectAll()
	s.ChangeLayer(1)
	snap := s.Snapshot()
	assert.Equal(t, 4, snap.CursorI)
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, Finalized, snap.State)

	_, err = s.Finalize()
	assert.Error(t, err)
}

func TestCancel(t *testing.T) {
	s := New(universe.Rectangular, testWindow())
	s.Toggle()
	s.Cancel()
	assert.Equal(t, Cancelled, s.State())

	_, err := s.Finalize()
	assert.Error(t, err)

	// Cancel after finalize must not overwrite the terminal state.
	s2 := New(universe.Rectangular, testWindow())
	s2.Toggle()
	_, err = s2.Finalize()
	require.NoError(t, err)
	s2.Cancel()
	assert.Equal(t, Finalized, s2.State())
}

func TestSizeWarning(t *testing.T) {
	lim := DefaultLimits()

	ok := testWindow()
	assert.Empty(t, ok.SizeWarning(lim))

	perLayer := Window{I: Axis{0, 24}, J: Axis{0, 24}, K: Axis{0, 0}}
	assert.Contains(t, perLayer.SizeWarning(lim), "625")

	total := Window{I: Axis{0, 19}, J: Axis{0, 19}, K: Axis{0, 9}}
	assert.Contains(t, total.SizeWarning(lim), "4000")
}

func TestWindowFromBounds(t *testing.T) {
	b := universe.Bounds{IMin: -2, IMax: 2, JMin: 0, JMax: 4, KMin: 1, KMax: 3}
	w := WindowFromBounds(b, true)
	assert.Equal(t, Axis{-2, 2}, w.I)
	assert.Equal(t, Axis{0, 4}, w.J)
	assert.Equal(t, Axis{1, 3}, w.K)
	assert.True(t, w.Infinite)
	assert.Equal(t, 25, w.CellsPerLayer())
	assert.Equal(t, 75, w.TotalCells())
}

// moveTo walks the cursor to (i, j) on the current layer with cardinal
// moves, asserting nothing; callers verify via snapshots.
func moveTo(s *Selector, i, j int) {
	snap := s.Snapshot()
	for snap.CursorI < i {
		s.Move(East)
		snap = s.Snapshot()
	}
	for snap.CursorI > i {
		s.Move(West)
		snap = s.Snapshot()
	}
	for snap.CursorJ < j {
		s.Move(South)
		snap = s.Snapshot()
	}
	for snap.CursorJ > j {
		s.Move(North)
		snap = s.Snapshot()
	}
}
