package tracker

import (
	"context"
	"time"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/runtime"
	"go.uber.org/zap"
)

// Clock is the part of the runtime the tracker drives.
type Clock interface {
	Now() runtime.Tick
	Restore(now runtime.Tick)
	Tick(ctx context.Context) (runtime.Tick, error)
}

// TickStore persists the last processed tick.
type TickStore interface {
	GetTick() (runtime.Tick, error)
	UpdateTick(tick runtime.Tick) error
}

// Tracker advances the runtime clock at a fixed interval and records every
// processed tick.
type Tracker struct {
	ctx      context.Context
	clock    Clock
	storage  TickStore
	interval time.Duration
	attempts int
	backoff  time.Duration
}

type Func[T any] func() (T, error)

// retry calls fn until it succeeds, the attempts run out or the context is
// cancelled.
func retry[T any](ctx context.Context, attempts int, backoff time.Duration, fn Func[T]) (T, error) {
	for attempt := 1; ; attempt++ {
		result, err := fn()
		if err == nil || attempt >= attempts {
			return result, err
		}

		logger.Debug("tracker: retrying", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return result, err
		case <-time.After(backoff):
		}
	}
}

func NewTracker(ctx context.Context, clock Clock, storage TickStore, interval time.Duration) *Tracker {
	return &Tracker{
		ctx:      ctx,
		clock:    clock,
		storage:  storage,
		interval: interval,
		attempts: 5,
		backoff:  500 * time.Millisecond,
	}
}

// Resume moves the clock to the last persisted tick.
func (t *Tracker) Resume() (runtime.Tick, error) {
	tick, err := t.storage.GetTick()
	if err != nil {
		return 0, err
	}
	t.clock.Restore(tick)
	logger.Info("tracker: resumed", zap.Uint64("tick", uint64(tick)))
	return tick, nil
}

// Step processes one tick and persists it. A tick error means the runtime
// halted and is returned as is.
func (t *Tracker) Step() (runtime.Tick, error) {
	now, err := t.clock.Tick(t.ctx)
	if err != nil {
		return now, err
	}

	_, err = retry(t.ctx, t.attempts, t.backoff, func() (struct{}, error) {
		return struct{}{}, t.storage.UpdateTick(now)
	})
	if err != nil {
		logger.Error("tracker: cannot persist tick", zap.Uint64("tick", uint64(now)), zap.Error(err))
		return now, err
	}
	return now, nil
}

// Run steps the clock every interval until the context is cancelled, which
// returns nil, or a step fails.
func (t *Tracker) Run() error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	logger.Info("tracker: running", zap.Duration("interval", t.interval), zap.Uint64("tick", uint64(t.clock.Now())))
	for {
		select {
		case <-t.ctx.Done():
			t.Finalize()
			return nil
		case <-ticker.C:
			now, err := t.Step()
			if err != nil {
				return err
			}
			logger.Debug("tracker: tick processed", zap.Uint64("tick", uint64(now)))
		}
	}
}

func (t *Tracker) Finalize() {
	logger.Info("tracker: stopped", zap.Uint64("tick", uint64(t.clock.Now())))
}
