package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/universe"
)

func pinStack(t *testing.T, spec lattice.Spec) universe.Stack {
	t.Helper()
	return universe.Stack{
		{Cell: 101, Universe: 5},
		{Cell: 50, Universe: 100, Fill: 5, Lattice: true, Geometry: universe.Rectangular, Spec: &spec},
		{Cell: 1, Universe: 0, Fill: 100},
	}
}

func TestTally(t *testing.T) {
	s := pinStack(t, lattice.Contiguous(
		lattice.Single(3), lattice.Single(4), lattice.Single(0)))
	assert.Equal(t, "F4:N ( 101 < 50[3 4 0] < 1 )", Tally("F4:N", 101, s))

	// Tag is normalized to upper case.
	assert.Equal(t, "F4:N ( 101 < 50[3 4 0] < 1 )", Tally(" f4:n ", 101, s))
}

func TestTallyNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"F4:N", "4"},
		{"f4:n", "4"},
		{"F17:P", "17"},
		{"F6", "6"},
		{"  F14:N ", "14"},
	}
	for _, tc := range cases {
		n, err := TallyNumber(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, n, tc.in)
	}

	for _, bad := range []string{"", "F", "F:N", "Fx:N"} {
		_, err := TallyNumber(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVolume(t *testing.T) {
	card, err := Volume("F4:N", 2.75)
	require.NoError(t, err)
	assert.Equal(t, "SD4 2.75", card)

	card, err = Volume("F14:N", 10)
	require.NoError(t, err)
	assert.Equal(t, "SD14 10", card)

	_, err = Volume("bogus", 1)
	assert.Error(t, err)
}

func TestSourceContiguous(t *testing.T) {
	s := pinStack(t, lattice.Contiguous(
		lattice.Single(3), lattice.Single(4), lattice.Single(0)))
	src := Source(1, 101, s, SourceOptions{})
	assert.Equal(t, "SDEF CEL=d1", src.SDEF)
	assert.Equal(t, "SI1 L ( 101 < 50[3 4 0] < 1 )", src.SI)
	assert.Equal(t, "SP1 1", src.SP)
	assert.Equal(t, []string{src.SDEF, src.SI, src.SP}, src.Cards())
}

func TestSourceDiscrete(t *testing.T) {
	spec, err := lattice.Discrete([]lattice.Element{
		{I: 0, J: 0, K: 0}, {I: 9, J: 9, K: 0},
	})
	require.NoError(t, err)
	src := Source(2, 101, pinStack(t, spec), SourceOptions{})
	assert.Equal(t, "SDEF CEL=d2", src.SDEF)
	assert.Equal(t, "SI2 L (101 < 50[0 0 0] < 1) (101 < 50[9 9 0] < 1)", src.SI)
	assert.Equal(t, "SP2 1 1", src.SP)
}

func TestSourceOptions(t *testing.T) {
	s := pinStack(t, lattice.Contiguous(
		lattice.Single(3), lattice.Single(4), lattice.Single(0)))
	pos := [3]float64{0, 0, 12.5}
	erg := 1.0
	src := Source(1, 101, s, SourceOptions{Position: &pos, Energy: &erg})
	assert.Equal(t, "SDEF CEL=d1 POS=0 0 12.5 ERG=1", src.SDEF)
}

func TestVerificationDeck(t *testing.T) {
	s := pinStack(t, lattice.Contiguous(
		lattice.Single(3), lattice.Single(4), lattice.Single(0)))
	deck := VerificationDeck(101, s)
	assert.Contains(t, deck, "SI1 L ( 101 < 50[3 4 0] < 1 )\n")
	assert.Contains(t, deck, "NPS 50\n")
	assert.Contains(t, deck, "PRINT 110\n")
	assert.Contains(t, deck, "SDEF CEL=d1 ERG=1.0\n")
}
