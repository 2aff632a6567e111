package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/notify"
	"github.com/spf13/cobra"
)

// KeygenCommand prints a new ed25519 seed and the account it controls.
func KeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key for signing bus submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			public, key, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed:    0x%s\n", hex.EncodeToString(key.Seed()))
			fmt.Fprintf(cmd.OutOrStdout(), "account: %s\n", notify.AccountOf(public))
			return nil
		},
	}
}

// RequestCommand prints a signed submit request for an encoded call.
func RequestCommand() *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "request [call hex]",
		Short: "Sign an encoded call for the submit subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawSeed, err := hex.DecodeString(strings.TrimPrefix(seed, "0x"))
			if err != nil || len(rawSeed) != ed25519.SeedSize {
				return fmt.Errorf("seed must be %d hex encoded bytes", ed25519.SeedSize)
			}
			calls, err := decodeHexArgs(args)
			if err != nil {
				return err
			}

			request := notify.SignRequest(ed25519.NewKeyFromSeed(rawSeed), calls[0])
			payload, err := json.Marshal(request)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "hex encoded ed25519 seed")
	return cmd
}
