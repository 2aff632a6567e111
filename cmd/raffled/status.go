package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/app"
	"github.com/spf13/cobra"
)

func StatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the raffle state stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := app.New(opts.config)
			if err != nil {
				return err
			}
			defer instance.Close()

			return printStatus(cmd.Context(), cmd.OutOrStdout(), instance)
		},
	}
}

func printStatus(ctx context.Context, out io.Writer, instance *app.App) error {
	controller := instance.Controller

	tick, err := instance.Storage.GetTick()
	if err != nil {
		return err
	}
	roundIndex, err := controller.RoundIndex(ctx)
	if err != nil {
		return err
	}
	ticketsCount, err := controller.TicketsCount(ctx)
	if err != nil {
		return err
	}
	potAccount, pot, err := controller.Pot(ctx)
	if err != nil {
		return err
	}
	callIndices, err := controller.CallIndices(ctx)
	if err != nil {
		return err
	}
	config, err := controller.Config(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "tick:         %d\n", tick)
	fmt.Fprintf(out, "round index:  %d\n", roundIndex)
	fmt.Fprintf(out, "tickets:      %d\n", ticketsCount)
	fmt.Fprintf(out, "pot account:  %s\n", potAccount)
	fmt.Fprintf(out, "pot:          %s\n", pot)
	fmt.Fprintf(out, "allowed calls:")
	for _, id := range callIndices {
		fmt.Fprintf(out, " %s", id)
	}
	fmt.Fprintln(out)

	if config == nil {
		fmt.Fprintln(out, "raffle:       not configured")
		return nil
	}
	fmt.Fprintf(out, "raffle:       price %s, manager %s\n", config.Price, config.Manager)
	fmt.Fprintf(out, "window:       %d..%d, payout at %d\n", config.Start, config.End(), config.PayoutTick())
	fmt.Fprintf(out, "repeats:      %t\n", config.Repeats())
	return nil
}
