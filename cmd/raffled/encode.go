package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/raffle"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"github.com/spf13/cobra"
)

// EncodeCommand prints hex encoded calls for submission over NATS.
func EncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode calls as hex",
	}
	cmd.AddCommand(
		encodeRemarkCommand(),
		encodeStartCommand(),
		encodeSetCallsCommand(),
		encodePlayCommand(),
	)
	return cmd
}

func printCall(cmd *cobra.Command, call runtime.Call) {
	fmt.Fprintln(cmd.OutOrStdout(), "0x"+hex.EncodeToString(call.Encode()))
}

func decodeHexArgs(args []string) ([][]byte, error) {
	calls := make([][]byte, 0, len(args))
	for _, arg := range args {
		call, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			return nil, fmt.Errorf("call %q: %w", arg, err)
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func encodeRemarkCommand() *cobra.Command {
	var withEvent bool
	cmd := &cobra.Command{
		Use:   "remark [text]",
		Short: "system remark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build := runtime.Remark
			if withEvent {
				build = runtime.RemarkWithEvent
			}
			call, err := build([]byte(args[0]))
			if err != nil {
				return err
			}
			printCall(cmd, call)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withEvent, "with-event", false, "emit a remarked event")
	return cmd
}

func encodeStartCommand() *cobra.Command {
	var (
		price   string
		length  uint64
		delay   uint64
		repeats int
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "raffle start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := math.NewIntFromString(price)
			if !ok {
				return fmt.Errorf("price %q is not an integer", price)
			}
			call, err := raffle.RepeatingStartRaffleCall(amount, runtime.Tick(length), runtime.Tick(delay), repeats)
			if err != nil {
				return err
			}
			printCall(cmd, call)
			return nil
		},
	}
	cmd.Flags().StringVar(&price, "price", "0", "ticket price")
	cmd.Flags().Uint64Var(&length, "length", 0, "ticket window in ticks")
	cmd.Flags().Uint64Var(&delay, "delay", 0, "ticks between the window end and the draw")
	cmd.Flags().IntVar(&repeats, "repeats", 0, "number of follow-up raffles with the same settings")
	return cmd
}

func encodeSetCallsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-calls [call hex]...",
		Short: "raffle set_calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			calls, err := decodeHexArgs(args)
			if err != nil {
				return err
			}
			call, err := raffle.SetCallsCall(calls)
			if err != nil {
				return err
			}
			printCall(cmd, call)
			return nil
		},
	}
}

func encodePlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [call hex]",
		Short: "raffle play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calls, err := decodeHexArgs(args)
			if err != nil {
				return err
			}
			call, err := raffle.PlayCall(calls[0])
			if err != nil {
				return err
			}
			printCall(cmd, call)
			return nil
		},
	}
}
