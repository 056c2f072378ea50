package polar

import (
	"errors"
	"math"
	"testing"
)

func TestParseCartesianLiterals(t *testing.T) {
	cases := []struct {
		in   string
		want complex128
	}{
		{"2+3i", 2 + 3i},
		{"2+3j", 2 + 3i},
		{"2+3J", 2 + 3i},
		{"3j", 3i},
		{"-4", -4},
		{"1.5", 1.5},
		{"(2+3i)", 2 + 3i},
		{"2-3j", 2 - 3i},
	}

	for _, c := range cases {
		in, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		z, err := Construct(in)
		if err != nil {
			t.Fatalf("Construct of %q returned error: %v", c.in, err)
		}
		if z != c.want {
			t.Fatalf("Parse(%q): expected %v, got %v", c.in, c.want, z)
		}
	}
}

func TestParsePolarNotation(t *testing.T) {
	cases := []struct {
		in       string
		mag, ang float64
		unit     Unit
	}{
		{"10∠180", 10, 180, Degrees},
		{"10∠180°", 10, 180, Degrees},
		{"10<180", 10, 180, Degrees},
		{"10 < 45.5", 10, 45.5, Degrees},
		{"10∠3.14rad", 10, 3.14, Radians},
		{"2<90deg", 2, 90, Degrees},
		{"-2∠30", -2, 30, Degrees},
	}

	for _, c := range cases {
		in, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		p, ok := in.(Polar)
		if !ok {
			t.Fatalf("Parse(%q): expected polar input, got %T", c.in, in)
		}
		if p.Magnitude != c.mag || p.Angle != c.ang || p.Unit != c.unit {
			t.Fatalf("Parse(%q): expected %v∠%v %s, got %v∠%v %s",
				c.in, c.mag, c.ang, c.unit, p.Magnitude, p.Angle, p.Unit)
		}
	}
}

func TestParsePolarMatchesCartesian(t *testing.T) {
	in, err := Parse("10∠180")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	z, err := Construct(in)
	if err != nil {
		t.Fatalf("Construct returned error: %v", err)
	}
	if math.Abs(real(z)+10) > tolerance || math.Abs(imag(z)) > tolerance {
		t.Fatalf("expected -10+0i, got %v", z)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"abc", "1+2k", "∠45", "10∠", "10<abc"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if _, err := Parse("   "); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}
