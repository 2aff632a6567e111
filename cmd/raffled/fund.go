package main

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/app"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/spf13/cobra"
)

func FundCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fund [account] [amount]",
		Short: "Mint balance to an account for local play",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := runtime.AccountID(args[0])
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("amount %q is not an integer", args[1])
			}

			instance, err := app.New(opts.config)
			if err != nil {
				return err
			}
			defer instance.Close()

			if err := instance.Ledger.Mint(cmd.Context(), account, amount); err != nil {
				return fmt.Errorf("failed to fund %s: %w", account, err)
			}
			balance, err := instance.Ledger.FreeBalance(cmd.Context(), account)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s now holds %s\n", account, balance)
			return nil
		},
	}
}
