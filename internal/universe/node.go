// Package universe models MCNP containment: the chain of cells from a target
// cell up through the universes that contain it, and the path strings that
// address one instance of that target for tallies and source definitions.
package universe

import (
	"fmt"

	"mcnpwiz/internal/lattice"
)

// Geometry is the lattice geometry of a lattice cell.
type Geometry int

const (
	Rectangular Geometry = iota + 1 // LAT=1
	Hexagonal                       // LAT=2
)

func (g Geometry) String() string {
	switch g {
	case Rectangular:
		return "rectangular"
	case Hexagonal:
		return "hexagonal"
	}
	return fmt.Sprintf("geometry(%d)", int(g))
}

// Bounds is an inclusive per-axis index range declared on a lattice cell.
// For an infinite lattice these are the viewing window chosen for the
// selector, not actual lattice bounds.
type Bounds struct {
	IMin, IMax int
	JMin, JMax int
	KMin, KMax int
}

// Node is one level of a containment stack: a cell, the universe it resides
// in, and the universe it fills (if any). Lattice cells additionally carry
// their geometry, their index specification and, when known, declared or
// viewing bounds.
type Node struct {
	Cell     int
	Universe int // universe the cell resides in; 0 is the global universe
	Fill     int // universe the cell fills; 0 on the innermost (target) node

	Lattice         bool
	InfiniteLattice bool // simple FILL=N, lattice extends without declared bounds
	Geometry        Geometry
	Spec            *lattice.Spec
	Bounds          *Bounds
}

// String summarizes the node for stack listings and logs.
func (n Node) String() string {
	s := fmt.Sprintf("cell %d in u=%d", n.Cell, n.Universe)
	if n.Spec != nil {
		s += fmt.Sprintf(" [lat %s]", n.Spec)
	}
	if n.Fill != 0 {
		s += fmt.Sprintf(" (fills u=%d)", n.Fill)
	}
	return s
}
