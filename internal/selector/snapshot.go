package selector

import "mcnpwiz/internal/lattice"

// Snapshot is a render-ready copy of the selector state. The TUI layer
// draws snapshots and never reaches into the state machine, so a failed
// render (terminal too small, resize mid-session) cannot corrupt the
// selection or cursor.
type Snapshot struct {
	Window   Window
	CursorI  int
	CursorJ  int
	LayerK   int
	Selected map[lattice.Element]bool
	Count    int
	State    State
}

// Snapshot captures the current state for rendering.
func (s *Selector) Snapshot() Snapshot {
	sel := make(map[lattice.Element]bool, len(s.selected))
	for e := range s.selected {
		sel[e] = true
	}
	return Snapshot{
		Window:   s.window,
		CursorI:  s.cursorI,
		CursorJ:  s.cursorJ,
		LayerK:   s.layerK,
		Selected: sel,
		Count:    len(s.selected),
		State:    s.state,
	}
}

// IsSelected reports whether the cell is in the snapshot's selection.
func (sn Snapshot) IsSelected(i, j, k int) bool {
	return sn.Selected[lattice.Element{I: i, J: j, K: k}]
}
