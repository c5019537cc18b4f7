package selector

// Direction is one selector movement. Rectangular grids use the four
// cardinal directions; hexagonal grids use East/West plus the four
// diagonals.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	}
	return "?"
}

// hexNeighbor returns the neighbor of (i, j) in an offset-coordinate
// hexagonal layout where odd j rows are shifted right (matching MCNP LAT=2
// indexing and the on-screen layout). North is decreasing j. Unknown
// directions return the cell itself.
func hexNeighbor(i, j int, d Direction) (int, int) {
	// Go's % keeps the dividend's sign, so negative odd rows yield -1.
	isOdd := j%2 == 1 || j%2 == -1

	switch d {
	case East:
		return i + 1, j
	case West:
		return i - 1, j
	case NorthEast:
		if isOdd {
			return i + 1, j - 1
		}
		return i, j - 1
	case NorthWest:
		if isOdd {
			return i, j - 1
		}
		return i - 1, j - 1
	case SouthEast:
		if isOdd {
			return i + 1, j + 1
		}
		return i, j + 1
	case SouthWest:
		if isOdd {
			return i, j + 1
		}
		return i - 1, j + 1
	}
	return i, j
}
