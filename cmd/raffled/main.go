package main

import (
	"os"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/config"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/spf13/cobra"
)

type options struct {
	envFiles []string
	config   *config.Config
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "raffled",
		Short:         "Periodic raffle engine on a self-hosted ledger runtime",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFiles...)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Logger()); err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, ".env files to load (default .env)")

	cmd.AddCommand(
		RunCommand(opts),
		StatusCommand(opts),
		FundCommand(opts),
		EncodeCommand(),
		KeygenCommand(),
		RequestCommand(),
	)
	return cmd
}
