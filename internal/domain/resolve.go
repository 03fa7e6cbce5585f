package domain

import (
	"context"
	"fmt"
)

// Geocoder resolves a free-text place description to a coordinate.
type Geocoder interface {
	// Search returns the best-matching coordinate for the query. It must
	// return an error wrapping ErrUnresolvable when the provider has no
	// result for the query.
	Search(ctx context.Context, query string) (Coordinate, error)
}

// ResolveCoordinates turns a Location into a concrete Coordinate. An
// explicit coordinate is returned as is with no I/O; a named place costs
// exactly one geocoder lookup. Errors from the geocoder are passed through
// unchanged: no retry, no fallback value.
func ResolveCoordinates(ctx context.Context, loc Location, geocoder Geocoder) (Coordinate, error) {
	switch l := loc.(type) {
	case Coordinate:
		return l, nil
	case Named:
		return geocoder.Search(ctx, string(l))
	default:
		return Coordinate{}, fmt.Errorf("%w: unsupported location variant %T", ErrMalformed, loc)
	}
}
