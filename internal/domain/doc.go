// Package domain models fuel station data and the location handling that
// anchors a station search: parsing a user-supplied location string and
// resolving it to a WGS-84 coordinate.
//
// # Location formats
//
// A location string is classified by trying two grammars in fixed priority
// order against the upper-cased, whitespace-trimmed input. The first match
// wins; anything that matches neither grammar is kept verbatim as a named
// place and resolved later through a geocoding provider.
//
// Decimal pair:
//
//	"<lat><sep><long>" where each side is a signed decimal number and the
//	separator is a comma, slash, or period, optionally surrounded by
//	whitespace. Examples: "52.5,13.4", "52.5/13.4", "-33.8, 151.2".
//	Because the period doubles as separator and decimal point, inputs like
//	"52.5.13.4" are accepted (lat "52.5", long "13.4"). That overlap is part
//	of the accepted input surface and is deliberately left as is.
//
// Degrees, minutes, seconds:
//
//	"<deg>°[<min>'][<sec>["]]<N|S> <deg>°[<min>'][<sec>["]]<E|W>"
//	Degrees are mandatory per axis; minutes and seconds are independently
//	optional and default to zero. The compass letter is mandatory and
//	carries the sign: north and east are positive, south and west negative.
//	Examples: "52°30'N 13°24'E" (52.5, 13.4), "52°S 13°W" (-52, -13).
//
// A degree symbol without a compass letter does not match and falls through
// to the named-place fallback, as does everything else ("Berlin",
// "Invalidenstraße 117").
//
// Coordinate bounds (lat within ±90, long within ±180) are not validated;
// values are passed through exactly as written or as returned by the
// geocoding provider.
//
// # Resolution
//
// ResolveCoordinates turns any Location into a Coordinate. An explicit
// coordinate resolves to itself without I/O; a named place costs exactly one
// geocoder lookup. There is no caching and no retry: a failed lookup is
// returned to the caller, and the reference binary treats it as fatal at
// startup.
package domain
