package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mlindgren/cpolar/pkg/config"
	"github.com/mlindgren/cpolar/pkg/polar"
	"github.com/mlindgren/cpolar/pkg/types"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cpolar.json"
	}
	return filepath.Join(dir, "cpolar.json")
}

func loadConfig() (*config.File, error) {
	return config.NewFile(configPath)
}

// parseValueArgs reads a complex value from positional arguments. A single
// argument is parsed as a literal ("2+3j", "10∠180"). Two arguments are
// magnitude and angle of a polar value, with the angle in the given unit.
func parseValueArgs(args []string, unit polar.Unit) (polar.Input, error) {
	switch len(args) {
	case 1:
		return polar.Parse(args[0])
	case 2:
		mag, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid magnitude: %v", err)
		}
		ang, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid angle: %v", err)
		}
		return polar.Polar{Magnitude: mag, Angle: ang, Unit: unit}, nil
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}
}

// toValueInput converts a library input to its wire form for the daemon.
func toValueInput(in polar.Input) (types.ValueInput, error) {
	switch v := in.(type) {
	case polar.Cartesian:
		return types.ValueInput{
			Cartesian: &types.CartesianInput{Real: v.Real, Imag: v.Imag},
		}, nil
	case polar.Polar:
		return types.ValueInput{
			Polar: &types.PolarInput{
				Magnitude: v.Magnitude,
				Angle:     v.Angle,
				Unit:      string(v.Unit),
			},
		}, nil
	default:
		return types.ValueInput{}, fmt.Errorf("unknown input form %T", in)
	}
}
