// Package cli is the fern command line
package cli

import (
	"github.com/Gobusters/ectologger"
	"github.com/spf13/cobra"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/pkg/logging"
)

type rootOptions struct {
	envFile string
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "fern",
		Short:         "Reconcile credit bureau tradelines and inquiries",
		Long:          "fern groups the accounts and inquiries reported by Equifax, Experian and TransUnion into the real-world accounts and applications behind them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newReconcileCmd(opts),
		newInquiriesCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) load() (*config.Config, ectologger.Logger, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.PrettyLogs,
		AppName: cfg.AppName,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
