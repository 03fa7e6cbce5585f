package domain

import (
	"fmt"
	"strings"
)

// CompassDirection is one of the four cardinal directions used to sign a
// sexagesimal coordinate axis.
type CompassDirection int

const (
	North CompassDirection = iota
	East
	South
	West
)

// ParseCompassDirection maps a compass token to a direction. Both the
// single-letter and full-word forms are accepted, case-insensitively.
// Anything else is an error; the parser's grammars only ever feed N, S, E,
// or W, but this function does not rely on that.
func ParseCompassDirection(token string) (CompassDirection, error) {
	switch strings.ToUpper(token) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompassDirection, token)
	}
}

// Sign returns the factor a direction applies to its axis: +1 for north and
// east, -1 for south and west.
func (d CompassDirection) Sign() float64 {
	if d == North || d == East {
		return 1
	}
	return -1
}

func (d CompassDirection) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("CompassDirection(%d)", int(d))
	}
}
