package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlindgren/cpolar/pkg/config"
	"github.com/mlindgren/cpolar/pkg/polar"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change cpolar defaults",
		Long: `Show or change the defaults used by 'cpolar pol' and 'cpolar cnum' when no
flag is given: decimal count, angle unit, and colored output.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current defaults",
			RunE: func(cmd *cobra.Command, _ []string) error {
				conf, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %v", err)
				}

				raw, err := config.NewRawFileConfigFromConfig(conf)
				if err != nil {
					return err
				}

				b, err := json.MarshalIndent(raw, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(b))

				return nil
			},
		},
		&cobra.Command{
			Use:   "set-decimals [count]",
			Short: "Set the default decimal count",
			RunE: func(_ *cobra.Command, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("invalid number of arguments")
				}
				dec, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid decimal count: %v", err)
				}
				if dec < 0 {
					return polar.ErrNegativeDecimals
				}

				return saveConfig(func(conf config.Config) {
					conf.SetDecimals(dec)
				})
			},
		},
		&cobra.Command{
			Use:   "set-unit [deg|rad]",
			Short: "Set the default angle unit",
			RunE: func(_ *cobra.Command, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("invalid number of arguments")
				}
				unit, err := polar.ParseUnit(args[0])
				if err != nil {
					return err
				}

				return saveConfig(func(conf config.Config) {
					conf.SetUnit(string(unit))
				})
			},
		},
		&cobra.Command{
			Use:   "set-color [on|off]",
			Short: "Enable or disable colored output",
			RunE: func(_ *cobra.Command, args []string) error {
				if len(args) != 1 {
					return fmt.Errorf("invalid number of arguments")
				}
				enabled, err := strconv.ParseBool(args[0])
				if err != nil {
					switch args[0] {
					case "on":
						enabled = true
					case "off":
						enabled = false
					default:
						return fmt.Errorf("invalid value %q, expected on or off", args[0])
					}
				}

				return saveConfig(func(conf config.Config) {
					conf.SetColor(enabled)
				})
			},
		},
	)

	return cmd
}

func saveConfig(mutate func(config.Config)) error {
	conf, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	mutate(conf)

	if err := conf.Save(); err != nil {
		return fmt.Errorf("failed to save config: %v", err)
	}

	logrus.WithFields(conf.LogrusFields()).Info("config saved")

	return nil
}
