package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/app"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/notify"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func RunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Drive the runtime clock and serve submitted calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
}

func run(parent context.Context, opts *options) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg := opts.config
	instance, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer instance.Close()

	trackerInstance := tracker.NewTracker(ctx, instance.Runtime, instance.Storage, cfg.TickInterval)
	if _, err := trackerInstance.Resume(); err != nil {
		return fmt.Errorf("resume clock: %w", err)
	}

	if cfg.NatsURL != "" {
		conn, err := notify.Connect(cfg.NatsURL, "raffled")
		if err != nil {
			return fmt.Errorf("connect to nats: %w", err)
		}
		defer conn.Drain()

		instance.Runtime.AddEventSink(notify.NewPublisher(conn, cfg.NatsSubject))

		consumer := notify.NewConsumer(ctx, instance.Runtime, cfg.NatsSubject)
		if err := consumer.Start(conn); err != nil {
			return err
		}
		defer consumer.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- trackerInstance.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("runtime halted", zap.Error(err))
		}
		return nil
	case <-waitForInterrupt():
		logger.Info("interrupt received, stopping...")
		cancel()
		return <-errCh
	}
}

func waitForInterrupt() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}
