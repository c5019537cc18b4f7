package universe

import (
	"errors"
	"fmt"
)

// ErrAmbiguousSelection is reported when more than one node in a stack
// carries a discrete lattice spec. Path building still honors the first
// such node (stack order, innermost first); the condition is surfaced so
// callers can warn.
var ErrAmbiguousSelection = errors.New("multiple non-contiguous lattice selections in stack")

// Stack is an ordered containment chain. Index 0 is the target cell
// (innermost); the last node resides in the global universe. A stack is
// assembled bottom-up and treated as immutable once handed to the path
// builders.
type Stack []Node

// Validate checks the structural invariants of a finished stack: it is
// non-empty, each node fills the universe the node below it resides in,
// exactly the last node resides in universe 0, and only lattice nodes carry
// a lattice spec.
func (s Stack) Validate() error {
	if len(s) == 0 {
		return errors.New("containment stack is empty")
	}
	for i, n := range s {
		last := i == len(s)-1
		if (n.Universe == 0) != last {
			if last {
				return fmt.Errorf("outermost cell %d resides in u=%d, want the global universe", n.Cell, n.Universe)
			}
			return fmt.Errorf("cell %d resides in the global universe but is not outermost", n.Cell)
		}
		if i > 0 && n.Fill != s[i-1].Universe {
			return fmt.Errorf("cell %d fills u=%d but cell %d resides in u=%d", n.Cell, n.Fill, s[i-1].Cell, s[i-1].Universe)
		}
		if n.Spec != nil && !n.Lattice {
			return fmt.Errorf("cell %d carries a lattice spec but is not a lattice", n.Cell)
		}
	}
	return nil
}

// DiscreteNode returns the index of the first node carrying a discrete
// lattice spec, walking from the target cell outward.
func (s Stack) DiscreteNode() (int, bool) {
	for i, n := range s {
		if n.Lattice && n.Spec != nil && n.Spec.IsDiscrete() {
			return i, true
		}
	}
	return 0, false
}

// CheckAmbiguity reports ErrAmbiguousSelection when more than one node
// carries a discrete spec. By construction at most one is expected; when
// more exist, path building uses the first and ignores the rest.
func (s Stack) CheckAmbiguity() error {
	count := 0
	for _, n := range s {
		if n.Lattice && n.Spec != nil && n.Spec.IsDiscrete() {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%w: %d nodes", ErrAmbiguousSelection, count)
	}
	return nil
}

// NeedsVolumeCard reports whether a tally against this stack requires an
// auxiliary SD card. MCNP cannot infer cell volumes inside a lattice, so any
// lattice node above the target forces an explicit volume.
func (s Stack) NeedsVolumeCard() bool {
	for i, n := range s {
		if i == 0 {
			continue
		}
		if n.Lattice {
			return true
		}
	}
	return false
}
