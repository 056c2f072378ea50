package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlindgren/cpolar/pkg/client"
	"github.com/mlindgren/cpolar/pkg/polar"
	"github.com/mlindgren/cpolar/pkg/types"
)

func NewPolCommand() *cobra.Command {
	var (
		decimals int
		unitFlag string
		noColor  bool
		remote   bool
	)

	cmd := &cobra.Command{
		Use:     "pol <value> [angle]",
		Short:   "Print a complex value in polar angle notation",
		GroupID: gConvert,
		Long: `Print a complex value in polar angle notation (magnitude∠angle°), with the
angle always in degrees.

With one argument, the value is parsed as a literal: a Cartesian complex
number like "2+3j", or polar notation like "10∠180" or "10<180". With two
arguments, they are the magnitude and angle of a polar value; the angle is
in degrees unless --unit rad is given.

Examples:
  cpolar pol 2+3j         # 4∠56°
  cpolar pol 2+3j -d 1    # 3.6∠56.3°
  cpolar pol 10 180       # 10∠180°
  cpolar pol 10 3.14 -u rad`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}

			if !cmd.Flags().Changed("decimals") {
				decimals = conf.Decimals()
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

			var s string
			if remote {
				value, err := toValueInput(in)
				if err != nil {
					return err
				}
				s, err = client.NewClient(unixSocketPath).Format(types.FormatRequest{
					Value:    value,
					Decimals: decimals,
				})
				if err != nil {
					return err
				}
			} else {
				s, err = polar.Format(in, decimals)
				if err != nil {
					return err
				}
			}

			if conf.Color() && !noColor {
				s = bold("%s", s)
			}
			cmd.Println(s)

			return nil
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "number of decimals in the output")
	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "deg", "angle unit of the input (deg, rad)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&remote, "remote", false, "convert via a running cpolar daemon")

	return cmd
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
