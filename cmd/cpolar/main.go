package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlindgren/cpolar/pkg/client"
)

var (
	logLevel       = "info"
	unixSocketPath = "/var/run/cpolar.sock"
	configPath     = defaultConfigPath()
)

var (
	gConvert      = "Convert:"
	gDaemon       = "Daemon:"
	commandGroups = []string{
		gConvert,
		gDaemon,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: cpolar daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'cpolar serve', or drop the --remote flag to convert locally")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or start the daemon with the '--allow-non-root-access' flag to grant permissions to your user")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpolar",
		Short: "cpolar converts complex numbers to and from polar angle notation",
		Long: `cpolar converts complex numbers to and from polar angle notation (magnitude∠angle°),
the notation commonly used for phasors in electrical engineering.

Values can be entered as Cartesian literals ("2+3j") or in polar notation
("10∠180", "10<180"), with angles in degrees or radians.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "cpolar daemon unix socket path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewPolCommand(),
		NewCnumCommand(),
		NewConfigCommand(),
		NewServeCommand(),
		NewVersionCommand(),
	)

	return cmd
}
