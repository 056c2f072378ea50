// Package polar constructs complex values from Cartesian or polar input and
// renders them in polar angle notation (magnitude∠angle°), the way they are
// usually written in electrical engineering.
package polar

import (
	"math"
	"math/cmplx"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Unit is the angle unit of a polar input.
type Unit string

const (
	// Degrees is the default angle unit.
	Degrees Unit = "deg"
	// Radians selects radian input angles.
	Radians Unit = "rad"
)

// ParseUnit parses a unit token. Matching is case-insensitive. An empty
// token parses to Degrees, matching the default of the Polar input form.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "", string(Degrees):
		return Degrees, nil
	case string(Radians):
		return Radians, nil
	default:
		return "", pkgerrors.Wrapf(ErrInvalidUnit, "unit %q", s)
	}
}

// Input is a complex value in one of its two input forms. Callers pick the
// form explicitly instead of the package guessing from the shape of the
// arguments, so a zero imaginary part and a zero angle can never be
// confused with each other.
type Input interface {
	// Complex resolves the input to a complex value.
	Complex() (complex128, error)
}

// Cartesian is a complex value given as real and imaginary parts.
type Cartesian struct {
	Real float64
	Imag float64
}

func (c Cartesian) Complex() (complex128, error) {
	return complex(c.Real, c.Imag), nil
}

// FromComplex wraps a native complex literal, e.g. FromComplex(2 + 3i).
func FromComplex(z complex128) Cartesian {
	return Cartesian{Real: real(z), Imag: imag(z)}
}

// Polar is a complex value given as a position vector in the polar complex
// plane. An empty Unit means degrees. The angle is periodic and is not
// normalized or range-checked.
type Polar struct {
	Magnitude float64
	Angle     float64
	Unit      Unit
}

func (p Polar) Complex() (complex128, error) {
	unit, err := ParseUnit(string(p.Unit))
	if err != nil {
		return 0, err
	}

	theta := p.Angle
	if unit == Degrees {
		theta = p.Angle * (math.Pi / 180)
	}

	return cmplx.Rect(p.Magnitude, theta), nil
}

// Construct resolves an input to a complex value usable in further
// calculations.
func Construct(in Input) (complex128, error) {
	if in == nil {
		return 0, ErrNoInput
	}
	return in.Complex()
}

// Magnitude is the Euclidean norm of z.
func Magnitude(z complex128) float64 {
	return cmplx.Abs(z)
}

// Angle is the argument of z in radians, in (-π, π].
func Angle(z complex128) float64 {
	return cmplx.Phase(z)
}

// AngleDegrees is the argument of z in degrees.
func AngleDegrees(z complex128) float64 {
	return cmplx.Phase(z) * (180 / math.Pi)
}
