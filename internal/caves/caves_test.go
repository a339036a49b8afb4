package caves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/model"
)

// =============================================================================
// Initialize / Reset Tests
// =============================================================================

func TestInitialize(t *testing.T) {
	caves := Initialize(DefaultCount)
	require.Len(t, caves, 4)

	for i, c := range caves {
		expected := model.NewCave(c.ID)
		assert.Equal(t, expected, c)
		assert.Equal(t, []string{"1", "2", "3", "4"}[i], c.ID)
	}
}

func TestInitializeNegativeCount(t *testing.T) {
	assert.Empty(t, Initialize(-1))
	assert.Empty(t, Initialize(0))
}

func TestReset(t *testing.T) {
	now := clock.New(9, 0)
	caves := Initialize(4)
	caves = SetCooldown(caves, "2", clock.New(0, 30), now)
	caves = SetStartTime(caves, "2", clock.New(8, 0), now)
	caves = SetStartTime(caves, "4", clock.New(8, 30), now)
	require.Equal(t, model.StatusWorking, caves[1].Status)

	reset := Reset(len(caves))
	require.Len(t, reset, 4)
	for i, c := range reset {
		assert.Equal(t, []string{"1", "2", "3", "4"}[i], c.ID)
		assert.Equal(t, model.StatusEmpty, c.Status)
		assert.Equal(t, clock.Zero, c.StartTime)
		assert.Zero(t, c.Progress)
	}
}

// =============================================================================
// Tick Tests
// =============================================================================

func TestTickIsPure(t *testing.T) {
	caves := Initialize(4)
	caves = SetStartTime(caves, "1", clock.New(8, 0), clock.New(8, 0))

	now := clock.New(11, 0)
	first := Tick(caves, now)
	second := Tick(caves, now)

	assert.Equal(t, first, second)
	assert.Equal(t, first, Tick(first, now))
	// Input slice untouched.
	assert.Equal(t, model.StatusEmpty, caves[0].Status)
}

func TestTickBoundaryResets(t *testing.T) {
	caves := SetStartTime(Initialize(1), "1", clock.New(8, 0), clock.New(8, 0))
	require.Equal(t, clock.New(14, 0), caves[0].EndTime)

	atEnd := Tick(caves, clock.New(14, 0))
	assert.Zero(t, atEnd[0].Progress)
	assert.Equal(t, model.StatusEmpty, atEnd[0].Status)

	past := Tick(caves, clock.New(15, 0))
	assert.Zero(t, past[0].Progress)
	assert.Equal(t, model.StatusEmpty, past[0].Status)
	assert.Equal(t, clock.Zero, past[0].Remaining)
}

// =============================================================================
// Setter Tests
// =============================================================================

func TestSetStartTimeScenario(t *testing.T) {
	caves := Initialize(4)
	require.Equal(t, clock.New(1, 0), caves[0].Cooldown)

	caves = SetStartTime(caves, "1", clock.New(8, 0), clock.New(8, 0))
	assert.Equal(t, clock.New(8, 0), caves[0].StartTime)
	assert.Equal(t, clock.New(14, 0), caves[0].EndTime)

	caves = Tick(caves, clock.New(11, 0))
	assert.InDelta(t, 0.5, caves[0].Progress, 1e-9)
	assert.Equal(t, model.StatusWorking, caves[0].Status)
	assert.Equal(t, clock.New(3, 0), caves[0].Remaining)

	for _, c := range caves[1:] {
		assert.Equal(t, model.StatusEmpty, c.Status)
		assert.Equal(t, clock.Zero, c.StartTime)
		assert.Equal(t, clock.Zero, c.EndTime)
		assert.Zero(t, c.Progress)
	}
}

func TestTickClearsFreshRemaining(t *testing.T) {
	caves := Initialize(1)
	require.Equal(t, clock.New(6, 0), caves[0].Remaining)

	caves = Tick(caves, clock.New(11, 0))
	assert.Equal(t, clock.Zero, caves[0].Remaining)
	assert.Equal(t, model.StatusEmpty, caves[0].Status)
	assert.Equal(t, clock.New(1, 0), caves[0].Cooldown)
}

func TestSetStartTimeRecomputesAgainstNow(t *testing.T) {
	caves := SetStartTime(Initialize(2), "2", clock.New(8, 0), clock.New(9, 30))

	assert.InDelta(t, 0.25, caves[1].Progress, 1e-9)
	assert.Equal(t, model.StatusWorking, caves[1].Status)
	assert.Equal(t, clock.New(4, 30), caves[1].Remaining)
}

func TestSetCooldown(t *testing.T) {
	now := clock.New(9, 0)
	caves := SetStartTime(Initialize(2), "1", clock.New(8, 0), now)

	caves = SetCooldown(caves, "1", clock.New(0, 20), now)
	assert.Equal(t, clock.New(0, 20), caves[0].Cooldown)
	assert.Equal(t, clock.New(10, 0), caves[0].EndTime)
	assert.InDelta(t, 0.5, caves[0].Progress, 1e-9)
	assert.Equal(t, clock.New(1, 0), caves[0].Remaining)

	// Cooldown on a cave that was never started derives from 00:00.
	caves = SetCooldown(caves, "2", clock.New(2, 0), now)
	assert.Equal(t, clock.New(12, 0), caves[1].EndTime)
	assert.InDelta(t, 0.75, caves[1].Progress, 1e-9)
}

func TestSettersUnknownID(t *testing.T) {
	caves := Initialize(4)
	now := clock.New(9, 0)

	assert.Equal(t, caves, SetStartTime(caves, "9", clock.New(8, 0), now))
	assert.Equal(t, caves, SetCooldown(caves, "", clock.New(2, 0), now))
}

func TestSettersDoNotMutateInput(t *testing.T) {
	caves := Initialize(2)
	_ = SetStartTime(caves, "1", clock.New(8, 0), clock.New(9, 0))
	_ = SetCooldown(caves, "2", clock.New(3, 0), clock.New(9, 0))

	assert.Equal(t, Initialize(2), caves)
}

func TestFind(t *testing.T) {
	caves := Initialize(3)
	c, ok := Find(caves, "3")
	assert.True(t, ok)
	assert.Equal(t, "3", c.ID)

	_, ok = Find(caves, "4")
	assert.False(t, ok)
}
