package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlindgren/cpolar/pkg/client"
	"github.com/mlindgren/cpolar/pkg/polar"
)

func NewCnumCommand() *cobra.Command {
	var (
		unitFlag string
		remote   bool
	)

	cmd := &cobra.Command{
		Use:     "cnum <value> [angle]",
		Short:   "Print a complex value in Cartesian form",
		GroupID: gConvert,
		Long: `Resolve a value to a Cartesian complex number and print it as a complex
literal, e.g. "(2+3i)".

Arguments are read exactly like 'cpolar pol': one literal argument, or a
magnitude and an angle.

Examples:
  cpolar cnum 2+3j        # (2+3i)
  cpolar cnum 10 0        # (10+0i)`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}

			if !cmd.Flags().Changed("unit") {
				unitFlag = conf.Unit()
			}

			unit, err := polar.ParseUnit(unitFlag)
			if err != nil {
				return err
			}

			in, err := parseValueArgs(args, unit)
			if err != nil {
				return err
			}

			var z complex128
			if remote {
				value, err := toValueInput(in)
				if err != nil {
					return err
				}
				resp, err := client.NewClient(unixSocketPath).Construct(value)
				if err != nil {
					return err
				}
				z = complex(resp.Real, resp.Imag)
			} else {
				z, err = polar.Construct(in)
				if err != nil {
					return err
				}
			}

			cmd.Println(strconv.FormatComplex(z, 'g', -1, 128))

			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "deg", "angle unit of the input (deg, rad)")
	cmd.Flags().BoolVar(&remote, "remote", false, "convert via a running cpolar daemon")

	return cmd
}
