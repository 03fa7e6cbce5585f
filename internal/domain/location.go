package domain

import (
	"fmt"
	"strconv"
)

// Location is a place description supplied by the user: either an explicit
// Coordinate or a Named place that still needs geocoding. The set of
// variants is closed; consumers type-switch over Coordinate and Named.
type Location interface {
	fmt.Stringer

	// isLocation restricts the variant set to this package.
	isLocation()
}

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
// Bounds are not enforced anywhere in this package.
type Coordinate struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

func (Coordinate) isLocation() {}

// String renders the coordinate as "<lat>,<long>", which the decimal-pair
// grammar accepts back unchanged.
func (c Coordinate) String() string {
	return formatCoord(c.Lat) + "," + formatCoord(c.Long)
}

// Named is an unresolved free-text place description, stored verbatim with
// its original casing and surrounding whitespace.
type Named string

func (Named) isLocation() {}

func (n Named) String() string { return string(n) }

// formatCoord renders a coordinate component with the shortest decimal
// representation that round-trips through ParseFloat.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
