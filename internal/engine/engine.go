package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/farmhand/go-automate/internal/display"
	"github.com/farmhand/go-automate/internal/machine"
	"github.com/farmhand/go-automate/internal/storage"
)

// Engine owns the machine metadata registry and drives it once per tick.
//
// A single mutex serializes rebuilds against tick passes: a rebuild
// interleaved with a tick over the same location would hand the processor
// stale machine and storage references. All failures are absorbed at this
// boundary - rebuilds and ticks log, notify, and leave the registry in its
// last-known-good state rather than propagating.
type Engine struct {
	factory *Factory
	sink    EventSink

	mu       sync.Mutex
	registry map[storage.Identifier][]*MachineMetadata
}

type Opt func(*Engine)

// WithEventSink wires an event sink for transfer events and user notices.
func WithEventSink(sink EventSink) Opt {
	return func(e *Engine) {
		e.sink = sink
	}
}

func New(factory *Factory, opts ...Opt) *Engine {
	e := &Engine{
		factory:  factory,
		registry: map[storage.Identifier][]*MachineMetadata{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RebuildAll replaces the entire registry with a fresh scan of every known
// location. Safe to call redundantly; two consecutive calls with no world
// change in between produce identical registries.
func (e *Engine) RebuildAll() {
	fresh := map[storage.Identifier][]*MachineMetadata{}

	err := func() (err error) {
		defer recoverAs(&err)
		for _, loc := range e.factory.Locations() {
			fresh[loc.Id] = e.factory.BuildLocation(loc)
		}
		return nil
	}()

	if err != nil {
		slog.Error("full topology rebuild failed", "error", err)
		e.notify(display.RebuildFailure("the world"))
		return
	}

	e.mu.Lock()
	e.registry = fresh
	e.mu.Unlock()

	slog.Debug("topology rebuilt", "locations", len(fresh))
}

// RebuildOne replaces a single location's registry entry, leaving every
// other location untouched. A location that has left the world has its
// entry dropped.
func (e *Engine) RebuildOne(id storage.Identifier) {
	loc := e.factory.Location(id)

	if loc == nil {
		e.mu.Lock()
		delete(e.registry, id)
		e.mu.Unlock()
		return
	}

	var metas []*MachineMetadata
	err := func() (err error) {
		defer recoverAs(&err)
		metas = e.factory.BuildLocation(loc)
		return nil
	}()

	if err != nil {
		slog.Error("topology rebuild failed", "location", id, "error", err)
		e.notify(display.RebuildFailure(loc.Name))
		return
	}

	e.mu.Lock()
	e.registry[id] = metas
	e.mu.Unlock()
}

// ProcessTick evaluates every registered machine once. Each machine gets a
// single pull-or-push attempt; failed transfers are expected steady state
// and simply retry next tick. A panic while processing one location is
// isolated: it is logged, surfaced as a terse notice, and the remaining
// locations still run.
func (e *Engine) ProcessTick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, metas := range e.registry {
		err := e.processLocation(ctx, metas)
		if err != nil {
			name := id.String()
			if len(metas) > 0 {
				name = metas[0].Location.Name
			}
			slog.ErrorContext(ctx, "processing location", "location", id, "error", err)
			e.notify(display.TickFailure(name))
		}
	}
}

// Tick lets the engine sit behind the shared tick driver.
func (e *Engine) Tick(ctx context.Context) error {
	e.ProcessTick(ctx)
	return nil
}

func (e *Engine) processLocation(ctx context.Context, metas []*MachineMetadata) (err error) {
	defer recoverAs(&err)

	for _, meta := range metas {
		e.processMachine(ctx, meta)
	}
	return nil
}

func (e *Engine) processMachine(ctx context.Context, meta *MachineMetadata) {
	m := meta.Machine

	switch m.State() {
	case machine.StateEmpty:
		m.Pull(meta.Connected)

	case machine.StateDone:
		out := m.Output()
		if out == nil || !meta.Connected.TryPush(out) {
			return
		}
		m.TakeOutput()

		if e.sink != nil {
			e.sink.Transfer(ctx, TransferEvent{
				Location:    meta.Location.Name,
				Machine:     m.DisplayName(),
				MachineKind: m.Kind(),
				Item:        out.Item.String(),
				Qty:         out.Qty,
			})
		}
	}
}

func (e *Engine) notify(text string) {
	if e.sink == nil {
		return
	}
	e.sink.Notice(context.Background(), text)
}

func recoverAs(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic: %v", r)
	}
}
