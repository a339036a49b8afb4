package ticker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/cavetimer/internal/clock"
)

type recorder struct {
	mu    sync.Mutex
	times []clock.Time
}

func (r *recorder) tick(now clock.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.times = append(r.times, now)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.times)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestNewDefaults(t *testing.T) {
	d := New(0, nil, nil)
	assert.Equal(t, DefaultInterval, d.Interval())
	assert.Equal(t, Idle, d.State())
	assert.NotNil(t, d.clock)
}

func TestStartStop(t *testing.T) {
	rec := &recorder{}
	d := New(time.Second, clock.Fixed(clock.New(11, 0)), rec.tick)

	require.NoError(t, d.Start(context.Background()))
	assert.Equal(t, Running, d.State())

	// Second Start is a no-op.
	require.NoError(t, d.Start(context.Background()))
	assert.Equal(t, Running, d.State())

	d.TickNow()
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, clock.New(11, 0), rec.times[0])

	d.Stop()
	assert.Equal(t, Idle, d.State())

	// Stop is idempotent.
	d.Stop()
	assert.Equal(t, Idle, d.State())
}

func TestTickNowWhileIdle(t *testing.T) {
	rec := &recorder{}
	d := New(time.Second, clock.Fixed(clock.Zero), rec.tick)

	d.TickNow()
	assert.Zero(t, rec.count())
	assert.Zero(t, d.Ticks())
}

func TestStaleGenerationIsDropped(t *testing.T) {
	rec := &recorder{}
	d := New(time.Second, clock.Fixed(clock.Zero), rec.tick)

	require.NoError(t, d.Start(context.Background()))
	d.mu.Lock()
	staleGen := d.gen
	d.mu.Unlock()
	d.Stop()

	// A job scheduled before Stop that fires afterwards is a no-op.
	d.fire(staleGen)
	assert.Zero(t, rec.count())

	// Restarting does not revive the old job either.
	require.NoError(t, d.Start(context.Background()))
	d.fire(staleGen)
	assert.Zero(t, rec.count())
	d.TickNow()
	assert.Equal(t, 1, rec.count())
	d.Stop()
}

func TestContextCancelStops(t *testing.T) {
	d := New(time.Second, clock.Fixed(clock.Zero), nil)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, d.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		return d.State() == Idle
	}, time.Second, 10*time.Millisecond)
}

func TestTicksFireAtInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real-time tick test in short mode")
	}

	var calls atomic.Int32
	d := New(time.Second, clock.Func(clock.Now), func(clock.Time) {
		calls.Add(1)
	})

	require.NoError(t, d.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, 4*time.Second, 50*time.Millisecond)
	d.Stop()

	after := calls.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no tick after Stop")
	assert.Equal(t, uint64(after), d.Ticks())
}
