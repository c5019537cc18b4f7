package selector

import (
	"fmt"
	"sort"

	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/universe"
)

// State is the lifecycle state of a selection session. A selector starts
// Active and ends exactly once, either Finalized (a spec was produced) or
// Cancelled (the operator aborted; the caller falls back to manual entry).
type State int

const (
	Active State = iota
	Finalized
	Cancelled
)

// Selector is one interactive grid selection session. It is single-owner
// and synchronous: every operation is a total transition that leaves the
// selector in a valid state, and the zero concurrency model of the wizard
// means no locking is needed. Discarded after Finalize or Cancel.
type Selector struct {
	window   Window
	geometry universe.Geometry

	cursorI int
	cursorJ int
	layerK  int

	selected map[lattice.Element]struct{}
	state    State
}

// New starts a selection session over the window. The cursor starts at the
// window midpoint and the layer at the middle k.
func New(g universe.Geometry, w Window) *Selector {
	return &Selector{
		window:   w,
		geometry: g,
		cursorI:  w.I.mid(),
		cursorJ:  w.J.mid(),
		layerK:   w.K.mid(),
		selected: make(map[lattice.Element]struct{}),
	}
}

// State returns the lifecycle state.
func (s *Selector) State() State { return s.state }

// Window returns the viewing window the session operates over.
func (s *Selector) Window() Window { return s.window }

// Geometry returns the grid geometry of the session.
func (s *Selector) Geometry() universe.Geometry { return s.geometry }

// Move steps the cursor one cell in the given direction. Rectangular grids
// take the four cardinal directions; hexagonal grids take E/W and the four
// diagonals using the offset-coordinate neighbor table. Moves that would
// leave the viewing window are no-ops.
func (s *Selector) Move(d Direction) {
	if s.state != Active {
		return
	}
	var ni, nj int
	if s.geometry == universe.Hexagonal {
		ni, nj = hexNeighbor(s.cursorI, s.cursorJ, d)
	} else {
		ni, nj = s.cursorI, s.cursorJ
		switch d {
		case North:
			nj--
		case South:
			nj++
		case East:
			ni++
		case West:
			ni--
		default:
			return
		}
	}
	if s.window.I.Contains(ni) && s.window.J.Contains(nj) {
		s.cursorI, s.cursorJ = ni, nj
	}
}

// ChangeLayer moves the depth coordinate by delta, clamped to the window.
func (s *Selector) ChangeLayer(delta int) {
	if s.state != Active {
		return
	}
	s.layerK = s.window.K.Clamp(s.layerK + delta)
}

// Toggle adds or removes the cell under the cursor on the current layer.
func (s *Selector) Toggle() {
	if s.state != Active {
		return
	}
	e := lattice.Element{I: s.cursorI, J: s.cursorJ, K: s.layerK}
	if _, ok := s.selected[e]; ok {
		delete(s.selected, e)
	} else {
		s.selected[e] = struct{}{}
	}
}

// SelectAll selects every cell of the full window volume, all layers.
func (s *Selector) SelectAll() {
	if s.state != Active {
		return
	}
	for i := s.window.I.Min; i <= s.window.I.Max; i++ {
		for j := s.window.J.Min; j <= s.window.J.Max; j++ {
			for k := s.window.K.Min; k <= s.window.K.Max; k++ {
				s.selected[lattice.Element{I: i, J: j, K: k}] = struct{}{}
			}
		}
	}
}

// Clear empties the selection set.
func (s *Selector) Clear() {
	if s.state != Active {
		return
	}
	s.selected = make(map[lattice.Element]struct{})
}

// Cancel aborts the session. No spec is produced; selector state is
// discarded by the caller.
func (s *Selector) Cancel() {
	if s.state == Active {
		s.state = Cancelled
	}
}

// Finalize commits the selection and returns the resulting lattice spec.
// A contiguous selection (its joint 3D bounding box is exactly filled)
// yields a contiguous spec with min==max axes collapsed to single indices;
// anything else yields a discrete spec sorted ascending. Finalizing an
// empty selection fails with lattice.ErrEmptySelection and the session
// stays Active.
func (s *Selector) Finalize() (lattice.Spec, error) {
	if s.state != Active {
		return lattice.Spec{}, fmt.Errorf("selector already %s", s.stateName())
	}
	if len(s.selected) == 0 {
		return lattice.Spec{}, fmt.Errorf("finalize: %w", lattice.ErrEmptySelection)
	}

	elems := make([]lattice.Element, 0, len(s.selected))
	for e := range s.selected {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(a, b int) bool { return elems[a].Less(elems[b]) })

	box := boundingBox(elems)
	if box.volume() == len(elems) && box.covered(s.selected) {
		s.state = Finalized
		return lattice.Contiguous(box.dimI(), box.dimJ(), box.dimK()), nil
	}

	spec, err := lattice.Discrete(elems)
	if err != nil {
		return lattice.Spec{}, err
	}
	s.state = Finalized
	return spec, nil
}

func (s *Selector) stateName() string {
	switch s.state {
	case Finalized:
		return "finalized"
	case Cancelled:
		return "cancelled"
	}
	return "active"
}

// box is the joint axis-aligned bounding box of a selection across i, j and
// k together, not per layer.
type box struct {
	iMin, iMax int
	jMin, jMax int
	kMin, kMax int
}

func boundingBox(elems []lattice.Element) box {
	b := box{
		iMin: elems[0].I, iMax: elems[0].I,
		jMin: elems[0].J, jMax: elems[0].J,
		kMin: elems[0].K, kMax: elems[0].K,
	}
	for _, e := range elems[1:] {
		b.iMin, b.iMax = min(b.iMin, e.I), max(b.iMax, e.I)
		b.jMin, b.jMax = min(b.jMin, e.J), max(b.jMax, e.J)
		b.kMin, b.kMax = min(b.kMin, e.K), max(b.kMax, e.K)
	}
	return b
}

func (b box) volume() int {
	return (b.iMax - b.iMin + 1) * (b.jMax - b.jMin + 1) * (b.kMax - b.kMin + 1)
}

// covered verifies every cell inside the box is selected. The count check
// already rules most gaps out; this guards against coincidental counts.
func (b box) covered(sel map[lattice.Element]struct{}) bool {
	for i := b.iMin; i <= b.iMax; i++ {
		for j := b.jMin; j <= b.jMax; j++ {
			for k := b.kMin; k <= b.kMax; k++ {
				if _, ok := sel[lattice.Element{I: i, J: j, K: k}]; !ok {
					return false
				}
			}
		}
	}
	return true
}

func (b box) dimI() lattice.Dimension { return axisDim(b.iMin, b.iMax) }
func (b box) dimJ() lattice.Dimension { return axisDim(b.jMin, b.jMax) }
func (b box) dimK() lattice.Dimension { return axisDim(b.kMin, b.kMax) }

// axisDim collapses a min==max axis to a single index.
func axisDim(lo, hi int) lattice.Dimension {
	if lo == hi {
		return lattice.Single(lo)
	}
	d, _ := lattice.NewRange(lo, hi) // lo <= hi by construction
	return d
}
