package world

// Direction represents a cardinal movement direction, or None for no movement
type Direction int

// Direction constants
const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// AllDirections returns the four movement directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is None or a movement direction
func (d Direction) IsValid() bool {
	return d >= None && d <= Right
}

// Opposite returns the opposite direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the column (x) and row (y) offsets for this direction.
// Screen coordinates: y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
