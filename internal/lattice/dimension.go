// Package lattice models MCNP lattice index specifications: per-axis index
// dimensions (single index or inclusive range) and full element selections,
// either contiguous (a box of indices kept in range syntax) or discrete (an
// explicit list of positions).
package lattice

import (
	"fmt"
	"strconv"
)

// Dimension is one axis of a lattice index specification: either a single
// index or an inclusive min:max range. The variant is explicit; nothing in
// this package inspects value shapes at runtime.
type Dimension struct {
	min    int
	max    int
	ranged bool
}

// Single returns a dimension holding exactly one index.
func Single(n int) Dimension {
	return Dimension{min: n, max: n}
}

// NewRange returns an inclusive range dimension. min must not exceed max.
func NewRange(min, max int) (Dimension, error) {
	if min > max {
		return Dimension{}, fmt.Errorf("%w: %d:%d", ErrInvalidRange, min, max)
	}
	return Dimension{min: min, max: max, ranged: true}, nil
}

// IsSingle reports whether the dimension addresses exactly one index.
// A range constructed as min==max is still rendered in range syntax.
func (d Dimension) IsSingle() bool { return !d.ranged }

// Min returns the lowest index covered.
func (d Dimension) Min() int { return d.min }

// Max returns the highest index covered.
func (d Dimension) Max() int { return d.max }

// Size returns the number of indices covered.
func (d Dimension) Size() int { return d.max - d.min + 1 }

// String renders the dimension in MCNP index syntax: "n" for a single
// index, "a:b" for a range.
func (d Dimension) String() string {
	if d.ranged {
		return strconv.Itoa(d.min) + ":" + strconv.Itoa(d.max)
	}
	return strconv.Itoa(d.min)
}
