// Package ticker drives periodic recomputation of the cave board.
//
// A Driver is either Idle or Running. Start moves it to Running with one
// repeating cron job; Stop (or cancellation of the Start context) moves it
// back to Idle. A job that fires after Stop is discarded.
package ticker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/logging"
)

// DefaultInterval is the tick cadence.
const DefaultInterval = time.Second

// State is the lifecycle state of a Driver.
type State int

const (
	Idle State = iota
	Running
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// TickFunc receives the sampled time on every tick. It must not call Stop.
type TickFunc func(now clock.Time)

// Driver samples a clock at a fixed interval and hands the sample to a TickFunc.
type Driver struct {
	interval time.Duration
	clock    clock.Clock
	onTick   TickFunc

	mu    sync.Mutex
	state State
	gen   uint64
	cron  *cron.Cron
	done  chan struct{}
	ticks uint64

	// fireMu is held while onTick runs so Stop can wait for it.
	fireMu sync.Mutex
}

// New creates an idle Driver. A zero interval uses DefaultInterval and a
// nil clock uses the system clock.
func New(interval time.Duration, clk clock.Clock, onTick TickFunc) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Driver{
		interval: interval,
		clock:    clk,
		onTick:   onTick,
	}
}

// Interval returns the tick cadence.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Ticks returns how many ticks were delivered since construction.
func (d *Driver) Ticks() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// Start begins ticking. Calling Start on a running Driver is a no-op.
// When ctx is cancelled the Driver stops itself.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Running {
		return nil
	}

	d.gen++
	gen := d.gen

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", d.interval), func() {
		d.fire(gen)
	}); err != nil {
		return fmt.Errorf("failed to schedule tick: %w", err)
	}

	d.cron = c
	d.done = make(chan struct{})
	d.state = Running
	c.Start()

	go d.watch(ctx, d.done)

	logging.DebugContext(ctx, "tick driver started", logging.KeyInterval, d.interval.String())
	return nil
}

// Stop cancels the pending tick and returns to Idle. It waits for a tick
// that is already running, and no tick is delivered after it returns.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state != Running {
		d.mu.Unlock()
		return
	}
	d.gen++
	d.state = Idle
	c := d.cron
	d.cron = nil
	close(d.done)
	ticks := d.ticks
	d.mu.Unlock()

	c.Stop()

	// Wait out a tick that passed the generation check before we got here.
	d.fireMu.Lock()
	d.fireMu.Unlock()

	logging.DebugLog("tick driver stopped", logging.KeyCount, ticks)
}

// TickNow samples the clock and delivers a tick immediately if the Driver
// is running.
func (d *Driver) TickNow() {
	d.mu.Lock()
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

func (d *Driver) watch(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		d.Stop()
	case <-done:
	}
}

func (d *Driver) fire(gen uint64) {
	d.fireMu.Lock()
	defer d.fireMu.Unlock()

	d.mu.Lock()
	if d.state != Running || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.ticks++
	d.mu.Unlock()

	if d.onTick != nil {
		d.onTick(d.clock.Now())
	}
}
