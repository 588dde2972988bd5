// Package coordinate converts the fixed-width degrees/minutes/seconds
// notation stored for islands into decimal latitude and longitude.
//
// The accepted format is exactly:
//
//	DD°MM'SS.ss" N|S DDD°MM'SS.ss" E|W
package coordinate

import (
	"regexp"
	"strconv"

	"idn-area/internal/domain"
)

var dmsPattern = regexp.MustCompile(
	`^(\d{2})°(\d{2})'(\d{2}\.\d{2})" ([NS]) (\d{3})°(\d{2})'(\d{2}\.\d{2})" ([EW])$`,
)

const (
	maxLatitudeDegrees  = 90
	maxLongitudeDegrees = 180
	maxMinutes          = 60
	maxSeconds          = 60.0
)

// Point is a decimal degree position.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type angle struct {
	degrees int
	minutes int
	seconds float64
	negate  bool
}

func (a angle) decimal() float64 {
	v := float64(a.degrees) + float64(a.minutes)/60 + a.seconds/3600
	if a.negate {
		return -v
	}
	return v
}

// IsValid reports whether s is a well-formed DMS coordinate within range.
func IsValid(s string) bool {
	_, _, ok := parse(s)
	return ok
}

// Convert returns the decimal latitude and longitude of s. It fails with
// domain.CoordinateFormatError whenever IsValid(s) is false.
func Convert(s string) (Point, error) {
	lat, lon, ok := parse(s)
	if !ok {
		return Point{}, domain.CoordinateFormatError{Value: s}
	}
	return Point{Latitude: lat.decimal(), Longitude: lon.decimal()}, nil
}

func parse(s string) (lat, lon angle, ok bool) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return angle{}, angle{}, false
	}
	lat, ok = parseAngle(m[1], m[2], m[3], m[4] == "S", maxLatitudeDegrees)
	if !ok {
		return angle{}, angle{}, false
	}
	lon, ok = parseAngle(m[5], m[6], m[7], m[8] == "W", maxLongitudeDegrees)
	if !ok {
		return angle{}, angle{}, false
	}
	return lat, lon, true
}

// The regexp guarantees digit-only groups, so the conversions cannot fail;
// the error checks stay so a pattern change cannot yield silent zeroes.
func parseAngle(deg, min, sec string, negate bool, maxDegrees int) (angle, bool) {
	d, err := strconv.Atoi(deg)
	if err != nil || d > maxDegrees {
		return angle{}, false
	}
	m, err := strconv.Atoi(min)
	if err != nil || m > maxMinutes {
		return angle{}, false
	}
	s, err := strconv.ParseFloat(sec, 64)
	if err != nil || s > maxSeconds {
		return angle{}, false
	}
	return angle{degrees: d, minutes: m, seconds: s, negate: negate}, true
}
