package runtime

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/cavetimer/internal/clock"
	errs "github.com/manav03panchal/cavetimer/internal/errors"
	"github.com/manav03panchal/cavetimer/internal/logging"
	"github.com/manav03panchal/cavetimer/internal/model"
	"github.com/manav03panchal/cavetimer/internal/output"
	"github.com/manav03panchal/cavetimer/internal/parser"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()

	opts := DefaultOptions()
	opts.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	opts.ColorMode = output.ColorNever

	c, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = c.Close()
		logging.Init(logging.DefaultConfig())
	})

	c.Clock = clock.Fixed(clock.New(12, 0))
	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local) }
	return c
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
	assert.NotEmpty(t, opts.ConfigPath)
}

func TestNew(t *testing.T) {
	c := newTestContext(t)

	assert.Equal(t, 4, c.Config.Board.CaveCount)
	assert.True(t, c.IsCLI())
	assert.False(t, c.IsJSON())
	assert.NotNil(t, c.CLIFormatter())
	assert.NotNil(t, c.JSONFormatter())
}

func TestNewInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeFile(path, "board: [not a map"))

	opts := DefaultOptions()
	opts.ConfigPath = path

	_, err := New(opts)
	require.Error(t, err)
	assert.True(t, errs.IsUserError(err))
}

func TestNewBoard(t *testing.T) {
	c := newTestContext(t)
	b := c.NewBoard()

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, clock.New(12, 0), b.Now)
	assert.Equal(t, clock.New(6, 0), b.Caves[0].Remaining)
}

func TestApplyAssignments(t *testing.T) {
	c := newTestContext(t)

	t.Run("start_and_cooldown", func(t *testing.T) {
		b, err := c.ApplyAssignments(c.NewBoard(), []string{"1=09:00"}, []string{"1=01:00", "2=00:30"})
		require.NoError(t, err)

		assert.Equal(t, clock.New(9, 0), b.Caves[0].StartTime)
		assert.Equal(t, clock.New(15, 0), b.Caves[0].EndTime)
		assert.Equal(t, model.StatusWorking, b.Caves[0].Status)
		assert.InDelta(t, 0.5, b.Caves[0].Progress, 1e-9)
		assert.Equal(t, clock.New(0, 30), b.Caves[1].Cooldown)
	})

	t.Run("natural_start", func(t *testing.T) {
		b, err := c.ApplyAssignments(c.NewBoard(), []string{"2=now"}, nil)
		require.NoError(t, err)
		assert.Equal(t, clock.New(12, 0), b.Caves[1].StartTime)
	})

	t.Run("unknown_cave", func(t *testing.T) {
		_, err := c.ApplyAssignments(c.NewBoard(), []string{"9=09:00"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnknownCave)
	})

	t.Run("bad_pair", func(t *testing.T) {
		_, err := c.ApplyAssignments(c.NewBoard(), nil, []string{"1"})
		assert.ErrorIs(t, err, errs.ErrInvalidAssignment)
	})

	t.Run("bad_cooldown", func(t *testing.T) {
		_, err := c.ApplyAssignments(c.NewBoard(), nil, []string{"1=soon"})
		assert.ErrorIs(t, err, errs.ErrInvalidTime)
	})
}

func TestLogToFile(t *testing.T) {
	c := newTestContext(t)
	c.Config.Logging.File = filepath.Join(t.TempDir(), "logs", "cavetimer.log")

	require.NoError(t, c.LogToFile())
	assert.FileExists(t, c.Config.Logging.File)
	require.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestFormatError(t *testing.T) {
	err := errs.InvalidValue(errs.ErrInvalidTime, "time", "25:99")
	msg := FormatError(err)

	assert.Contains(t, msg, err.Error())
	assert.Contains(t, msg, "HH:MM")
}

func TestGetSuggestionCategory(t *testing.T) {
	err := errs.NewSystemError("boom", nil)
	assert.NotEmpty(t, GetSuggestion(err))
}

func TestSignalContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := SignalContext(parent)
	defer stop()

	cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with parent")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestFormatErrorExamples(t *testing.T) {
	_, err := parser.ParseCooldown("later")
	require.Error(t, err)

	msg := FormatError(err)
	assert.Contains(t, msg, "later")
	for _, ex := range parser.CooldownExamples {
		assert.Contains(t, msg, ex)
	}
}

func TestNewLogsConfigLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeFile(path, "logging:\n  level: verbose\n"))

	stderr, err := os.Create(filepath.Join(dir, "stderr.log"))
	require.NoError(t, err)
	prev := os.Stderr
	os.Stderr = stderr
	t.Cleanup(func() {
		os.Stderr = prev
		logging.Init(logging.DefaultConfig())
	})

	opts := DefaultOptions()
	opts.ConfigPath = path
	opts.Debug = true
	_, err = New(opts)
	require.NoError(t, err)
	require.NoError(t, stderr.Close())

	data, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "unknown log level")
	assert.Contains(t, string(data), "config_load")
	assert.Contains(t, string(data), path)
}
