package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mcnpwiz/internal/lattice"
)

func TestNewSession(t *testing.T) {
	s := NewSession(101)
	assert.Equal(t, 101, s.TargetCell)
	assert.NotEmpty(t, s.ID)
	assert.Nil(t, s.Volume)

	// Sessions must be distinguishable in the log files.
	assert.NotEqual(t, s.ID, NewSession(101).ID)
}

func TestSessionTallyPath(t *testing.T) {
	s := NewSession(5)
	assert.Equal(t, "( 5 )", s.TallyPath())

	s.Stack = nestedStack()
	assert.Equal(t, "( 5 < 2 < 1 )", s.TallyPath())
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "rectangular", Rectangular.String())
	assert.Equal(t, "hexagonal", Hexagonal.String())
	assert.Equal(t, "geometry(7)", Geometry(7).String())
}

func TestNodeString(t *testing.T) {
	n := Node{Cell: 50, Universe: 100, Fill: 5}
	assert.Equal(t, "cell 50 in u=100 (fills u=5)", n.String())

	spec := lattice.Contiguous(lattice.Single(3), lattice.Single(4), lattice.Single(0))
	n.Spec = &spec
	n.Lattice = true
	assert.Contains(t, n.String(), "[lat ")

	target := Node{Cell: 101, Universe: 5}
	assert.Equal(t, "cell 101 in u=5", target.String())
}
