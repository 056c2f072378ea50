package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlindgren/cpolar/pkg/server"
	"github.com/mlindgren/cpolar/pkg/version"
)

func NewServeCommand() *cobra.Command {
	var allowNonRoot bool

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the cpolar daemon",
		GroupID: gDaemon,
		Long: `Run the cpolar daemon: a JSON API over a unix socket that resolves and
formats complex values. Clients use it through 'cpolar pol --remote' and
'cpolar cnum --remote'.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"socket":       unixSocketPath,
				"allowNonRoot": allowNonRoot,
			}).Info("starting daemon")

			return server.Run(unixSocketPath, allowNonRoot)
		},
	}

	cmd.Flags().BoolVar(&allowNonRoot, "allow-non-root-access", false, "allow non-root users to access the daemon socket")

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}
