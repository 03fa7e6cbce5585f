package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// decimalPairRe matches a signed decimal latitude and longitude joined by
	// a comma, slash, or period. The period deliberately overlaps with the
	// decimal point; see the package documentation.
	decimalPairRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s*[,./]\s*([+-]?\d+(?:\.\d+)?)$`)

	// sexagesimalRe matches a degree/minute/second pair: per axis a mandatory
	// degree number and ° symbol, an optional minutes number with ', an
	// optional seconds number with an optional ", and a mandatory compass
	// letter. Matched against the upper-cased input, so [NS]/[EW] suffice.
	sexagesimalRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)°(?:(\d+(?:\.\d+)?)')?(?:(\d+(?:\.\d+)?)"?)?([NS])\s*(\d+(?:\.\d+)?)°(?:(\d+(?:\.\d+)?)')?(?:(\d+(?:\.\d+)?)"?)?([EW])$`)
)

// ParseLocation classifies a raw location string. Recognized coordinate
// notations become a Coordinate; everything else becomes a Named place
// holding the original string, so classification itself never rejects an
// input. An error is only possible when a grammar matched but one of its
// numeric captures failed to convert.
func ParseLocation(raw string) (Location, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	if m := decimalPairRe.FindStringSubmatch(normalized); m != nil {
		lat, err := parseCapture("lat", m[1])
		if err != nil {
			return nil, err
		}
		long, err := parseCapture("long", m[2])
		if err != nil {
			return nil, err
		}
		return Coordinate{Lat: lat, Long: long}, nil
	}

	if m := sexagesimalRe.FindStringSubmatch(normalized); m != nil {
		lat, err := axisValue("lat", m[1], m[2], m[3], m[4])
		if err != nil {
			return nil, err
		}
		long, err := axisValue("long", m[5], m[6], m[7], m[8])
		if err != nil {
			return nil, err
		}
		return Coordinate{Lat: lat, Long: long}, nil
	}

	return Named(raw), nil
}

// SexagesimalToDecimal converts a degree/minute/second reading to decimal
// degrees. Absent minutes or seconds contribute zero. The sign is applied by
// the caller via CompassDirection, never here.
func SexagesimalToDecimal(degrees float64, minutes, seconds *float64) float64 {
	var m, s float64
	if minutes != nil {
		m = *minutes
	}
	if seconds != nil {
		s = *seconds
	}
	return degrees + m/60 + s/3600
}

// axisValue converts one matched sexagesimal axis to a signed decimal value.
func axisValue(axis, deg, min, sec, compass string) (float64, error) {
	if deg == "" {
		return 0, fmt.Errorf("%w: missing %s degrees", ErrMalformed, axis)
	}
	degrees, err := parseCapture(axis+" degrees", deg)
	if err != nil {
		return 0, err
	}
	minutes, err := optionalCapture(axis+" minutes", min)
	if err != nil {
		return 0, err
	}
	seconds, err := optionalCapture(axis+" seconds", sec)
	if err != nil {
		return 0, err
	}
	dir, err := ParseCompassDirection(compass)
	if err != nil {
		return 0, err
	}
	return dir.Sign() * SexagesimalToDecimal(degrees, minutes, seconds), nil
}

func parseCapture(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ConversionError{Field: field, Value: value, Err: err}
	}
	return v, nil
}

// optionalCapture parses an optional capture group, mapping the empty string
// (group did not participate in the match) to nil.
func optionalCapture(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	v, err := parseCapture(field, value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
