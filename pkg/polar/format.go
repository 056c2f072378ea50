package polar

import (
	"io"
	"os"
	"strconv"
)

// Format renders an input value in polar angle notation, magnitude∠angle°,
// with the angle always in degrees regardless of the input unit. Magnitude
// and angle are both rendered fixed-point with dec decimals; with dec 0
// there is no decimal point at all, e.g. "10∠180°".
func Format(in Input, dec int) (string, error) {
	if in == nil {
		return "", ErrNoInput
	}
	if dec < 0 {
		return "", ErrNegativeDecimals
	}

	z, err := in.Complex()
	if err != nil {
		return "", err
	}

	mag := strconv.FormatFloat(Magnitude(z), 'f', dec, 64)
	ang := strconv.FormatFloat(AngleDegrees(z), 'f', dec, 64)

	return mag + "∠" + ang + "°", nil
}

// Fprint writes the polar notation of in to w, followed by a newline.
func Fprint(w io.Writer, in Input, dec int) error {
	s, err := Format(in, dec)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// Print writes the polar notation of in to standard output, followed by a
// newline.
func Print(in Input, dec int) error {
	return Fprint(os.Stdout, in, dec)
}
