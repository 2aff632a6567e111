package runtime

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	errorsmod "cosmossdk.io/errors"
	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
	"go.uber.org/zap"
)

// Module is a dispatchable unit of the runtime.
type Module interface {
	Index() uint8
	Name() string
	// ValidateCall reports whether function exists and args decode for it.
	ValidateCall(function uint8, args []byte) error
	Dispatch(ctx context.Context, origin Origin, call Call) error
}

// TickHook runs once per tick, in registration order.
type TickHook interface {
	OnTick(ctx context.Context, now Tick) error
}

type TickHookFunc func(ctx context.Context, now Tick) error

func (f TickHookFunc) OnTick(ctx context.Context, now Tick) error {
	return f(ctx, now)
}

// Runtime serializes every external call and every tick: each runs to
// completion under a single mutex. Calls made from inside a module (Dispatch,
// Decode, EmitEvent, Now) must not take that mutex again.
type Runtime struct {
	mu      sync.Mutex
	now     atomic.Uint64
	modules map[uint8]Module
	hooks   []TickHook
	sinks   []EventSink
	events  []Event
	halted  error
}

func New() *Runtime {
	return &Runtime{
		modules: make(map[uint8]Module),
	}
}

func (r *Runtime) Register(module Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.modules[module.Index()]; ok {
		return errorsmod.Wrapf(ErrDuplicateModule, "index %d is taken by %s", module.Index(), existing.Name())
	}
	r.modules[module.Index()] = module
	logger.Debug("runtime: module registered", zap.String("module", module.Name()), zap.Uint8("index", module.Index()))
	return nil
}

func (r *Runtime) AddTickHook(hook TickHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, hook)
}

func (r *Runtime) AddEventSink(sink EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
}

// Now returns the current tick.
func (r *Runtime) Now() Tick {
	return Tick(r.now.Load())
}

// Restore sets the current tick without running hooks. Used at boot to resume
// from persisted state.
func (r *Runtime) Restore(now Tick) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now.Store(uint64(now))
}

// Halted returns the fault that stopped the runtime, if any.
func (r *Runtime) Halted() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.halted
}

// Tick advances the clock by one unit and runs every hook. A hook error halts
// the runtime: no further ticks or calls are processed.
func (r *Runtime) Tick(ctx context.Context) (Tick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.halted != nil {
		return r.Now(), errorsmod.Wrap(ErrHalted, r.halted.Error())
	}

	now := Tick(r.now.Add(1))
	r.events = r.events[:0]

	for _, hook := range r.hooks {
		if err := hook.OnTick(ctx, now); err != nil {
			r.halted = err
			logger.Error("runtime: tick hook failed, halting", zap.Uint64("tick", uint64(now)), zap.Error(err))
			return now, err
		}
	}
	return now, nil
}

// Submit decodes and dispatches an externally supplied call.
func (r *Runtime) Submit(ctx context.Context, origin Origin, encoded []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.halted != nil {
		return errorsmod.Wrap(ErrHalted, r.halted.Error())
	}

	call, err := r.Decode(encoded)
	if err != nil {
		return err
	}

	logger.Debug("runtime: dispatching call", zap.Stringer("origin", origin), zap.Stringer("call", call))
	return r.Dispatch(ctx, call, origin)
}

// SubmitCall is Submit for an already built call.
func (r *Runtime) SubmitCall(ctx context.Context, origin Origin, call Call) error {
	return r.Submit(ctx, origin, call.Encode())
}

// View runs fn while holding the runtime lock, so that reads observe state
// between calls and ticks only.
func (r *Runtime) View(fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn()
}

// Decode splits an encoded call and checks that its target exists and its
// arguments decode.
func (r *Runtime) Decode(encoded []byte) (Call, error) {
	call, err := splitCall(encoded)
	if err != nil {
		return Call{}, err
	}
	module, ok := r.modules[call.Module]
	if !ok {
		return Call{}, errorsmod.Wrapf(ErrUndecodable, "no module at index %d", call.Module)
	}
	if err := module.ValidateCall(call.Function, call.Args); err != nil {
		return Call{}, errorsmod.Wrapf(ErrUndecodable, "%s: %s", module.Name(), err)
	}
	return call, nil
}

// Dispatch runs a decoded call under origin. It is meant for nested use from
// within a module and does not lock.
func (r *Runtime) Dispatch(ctx context.Context, call Call, origin Origin) error {
	module, ok := r.modules[call.Module]
	if !ok {
		return errorsmod.Wrapf(ErrUnknownModule, "index %d", call.Module)
	}
	return module.Dispatch(ctx, origin, call)
}

// EmitEvent stamps the event with the current tick, records it and forwards it
// to every sink.
func (r *Runtime) EmitEvent(event Event) {
	event.Tick = r.Now()
	r.events = append(r.events, event)
	for _, sink := range r.sinks {
		sink.Emit(event)
	}
}

// Events returns the events recorded since the start of the current tick.
func (r *Runtime) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

// Modules lists registered modules ordered by index.
func (r *Runtime) Modules() []Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	modules := make([]Module, 0, len(r.modules))
	for _, module := range r.modules {
		modules = append(modules, module)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Index() < modules[j].Index() })
	return modules
}
