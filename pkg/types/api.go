// Package types holds the JSON payloads exchanged between the cpolar
// daemon and its clients.
package types

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/mlindgren/cpolar/pkg/polar"
)

// CartesianInput is a complex value given as real and imaginary parts.
type CartesianInput struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// PolarInput is a complex value given as magnitude and angle. Unit is "deg"
// or "rad"; empty means degrees.
type PolarInput struct {
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
	Unit      string  `json:"unit,omitempty"`
}

// ValueInput carries exactly one of the two input forms.
type ValueInput struct {
	Cartesian *CartesianInput `json:"cartesian,omitempty"`
	Polar     *PolarInput     `json:"polar,omitempty"`
}

// Input converts the payload to a library input.
func (v ValueInput) Input() (polar.Input, error) {
	switch {
	case v.Cartesian != nil && v.Polar != nil:
		return nil, pkgerrors.New("value must be either cartesian or polar, not both")
	case v.Cartesian != nil:
		return polar.Cartesian{Real: v.Cartesian.Real, Imag: v.Cartesian.Imag}, nil
	case v.Polar != nil:
		return polar.Polar{
			Magnitude: v.Polar.Magnitude,
			Angle:     v.Polar.Angle,
			Unit:      polar.Unit(v.Polar.Unit),
		}, nil
	default:
		return nil, polar.ErrNoInput
	}
}

// FormatRequest asks the daemon for the polar notation of a value.
type FormatRequest struct {
	Value    ValueInput `json:"value"`
	Decimals int        `json:"decimals"`
}

// ConstructResponse is a resolved complex value with its derived polar
// coordinates.
type ConstructResponse struct {
	Real         float64 `json:"real"`
	Imag         float64 `json:"imag"`
	Magnitude    float64 `json:"magnitude"`
	AngleDegrees float64 `json:"angleDegrees"`
}
