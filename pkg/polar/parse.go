package polar

import (
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Parse reads a complex value from its textual form.
//
// Cartesian values use complex literal syntax with either the math "i" or
// the engineering "j" as the imaginary unit: "2+3i", "2+3j", "4j", "-1.5".
// Polar values use angle notation with "∠" or its ASCII alias "<":
// "10∠180", "10∠180°", "10<45". The angle is read in degrees unless it
// carries a "rad" suffix, e.g. "10∠3.14rad".
func Parse(s string) (Input, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoInput
	}

	if idx := strings.IndexAny(s, "∠<"); idx >= 0 {
		return parsePolar(s, idx)
	}

	// ParseComplex only knows "i" as the imaginary unit.
	lit := strings.Map(func(r rune) rune {
		if r == 'j' || r == 'J' {
			return 'i'
		}
		return r
	}, s)

	z, err := strconv.ParseComplex(lit, 128)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid complex literal %q", s)
	}

	return FromComplex(z), nil
}

func parsePolar(s string, sep int) (Input, error) {
	magPart := strings.TrimSpace(s[:sep])
	angPart := strings.TrimSpace(strings.TrimPrefix(s[sep:], "<"))
	angPart = strings.TrimPrefix(angPart, "∠")
	angPart = strings.TrimSuffix(strings.TrimSpace(angPart), "°")

	unit := Degrees
	if v := strings.TrimSuffix(strings.ToLower(angPart), "rad"); v != strings.ToLower(angPart) {
		unit = Radians
		angPart = strings.TrimSpace(v)
	} else if v := strings.TrimSuffix(strings.ToLower(angPart), "deg"); v != strings.ToLower(angPart) {
		angPart = strings.TrimSpace(v)
	}

	mag, err := strconv.ParseFloat(magPart, 64)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid magnitude %q", magPart)
	}

	ang, err := strconv.ParseFloat(angPart, 64)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid angle %q", angPart)
	}

	return Polar{Magnitude: mag, Angle: ang, Unit: unit}, nil
}
