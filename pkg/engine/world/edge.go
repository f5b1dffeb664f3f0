package world

// EdgeMode selects what happens when a step would leave the grid
type EdgeMode int

const (
	// EdgeStop clamps the position to the last cell on each axis
	EdgeStop EdgeMode = iota
	// EdgeWrap re-enters the grid from the opposite side
	EdgeWrap
)

// String returns the string representation of an edge mode
func (m EdgeMode) String() string {
	switch m {
	case EdgeStop:
		return "stop"
	case EdgeWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Toggle flips between stop and wrap
func (m EdgeMode) Toggle() EdgeMode {
	if m == EdgeWrap {
		return EdgeStop
	}
	return EdgeWrap
}

// ParseEdgeMode converts "stop"/"wrap" into an EdgeMode
func ParseEdgeMode(s string) (EdgeMode, bool) {
	switch s {
	case "stop", "":
		return EdgeStop, true
	case "wrap":
		return EdgeWrap, true
	default:
		return EdgeStop, false
	}
}
