// Package selector implements the interactive lattice grid selection state
// machine: a cursor over a bounded viewing window, per-layer navigation,
// selection toggling, and finalize-time contiguity analysis producing a
// lattice spec. The package holds no rendering; the TUI layer draws
// snapshots and feeds back discrete actions.
package selector

import (
	"fmt"

	"mcnpwiz/internal/universe"
)

// Window is the inclusive index volume the selector operates over. For an
// infinite lattice it is only the viewing window chosen for display; the
// selection is still confined to it, and manual entry remains the path to
// indices outside it.
type Window struct {
	I, J, K  Axis
	Infinite bool
}

// Axis is one inclusive index range of the window.
type Axis struct {
	Min, Max int
}

// Size returns the number of indices the axis covers.
func (a Axis) Size() int { return a.Max - a.Min + 1 }

// Contains reports whether n lies within the axis.
func (a Axis) Contains(n int) bool { return n >= a.Min && n <= a.Max }

// Clamp forces n into the axis.
func (a Axis) Clamp(n int) int {
	if n < a.Min {
		return a.Min
	}
	if n > a.Max {
		return a.Max
	}
	return n
}

// mid returns the axis midpoint, where the cursor starts.
func (a Axis) mid() int { return (a.Min + a.Max) / 2 }

// WindowFromBounds builds a window from a lattice node's declared or
// viewing bounds.
func WindowFromBounds(b universe.Bounds, infinite bool) Window {
	return Window{
		I:        Axis{Min: b.IMin, Max: b.IMax},
		J:        Axis{Min: b.JMin, Max: b.JMax},
		K:        Axis{Min: b.KMin, Max: b.KMax},
		Infinite: infinite,
	}
}

// CellsPerLayer returns the cross-section size of one k-layer.
func (w Window) CellsPerLayer() int { return w.I.Size() * w.J.Size() }

// TotalCells returns the full window volume.
func (w Window) TotalCells() int { return w.CellsPerLayer() * w.K.Size() }

// Limits are the advisory size-guard thresholds checked before a selection
// session starts. They protect terminal usability, not correctness, and the
// caller may proceed past a warning.
type Limits struct {
	MaxCellsPerLayer int
	MaxTotalCells    int
}

// DefaultLimits mirrors the configured defaults: a 20x20 cross-section is
// comfortable, a couple thousand cells total is still navigable.
func DefaultLimits() Limits {
	return Limits{MaxCellsPerLayer: 400, MaxTotalCells: 2000}
}

// SizeWarning returns a human-readable warning when the window exceeds the
// limits, or "" when it is comfortably sized.
func (w Window) SizeWarning(lim Limits) string {
	if per := w.CellsPerLayer(); lim.MaxCellsPerLayer > 0 && per > lim.MaxCellsPerLayer {
		return fmt.Sprintf("grid is %dx%d = %d cells per layer; the selector works best under %d",
			w.I.Size(), w.J.Size(), per, lim.MaxCellsPerLayer)
	}
	if total := w.TotalCells(); lim.MaxTotalCells > 0 && total > lim.MaxTotalCells {
		return fmt.Sprintf("lattice has %d cells across %d layers; selection may be slow",
			total, w.K.Size())
	}
	return ""
}
