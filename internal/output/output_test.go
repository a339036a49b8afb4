package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/model"
)

func testBoard() caves.Board {
	return caves.NewBoard(2, clock.New(12, 0)).SetStartTime("1", clock.New(9, 0))
}

func newTestFormatter(format Format) (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Formatter{Writer: &buf, Format: format, ColorMode: ColorNever}, &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.NotNil(t, f.Writer)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatCLI, ParseFormat("cli"))
	assert.Equal(t, FormatCLI, ParseFormat("bogus"))
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorAlways, ParseColorMode("always"))
	assert.Equal(t, ColorNever, ParseColorMode("never"))
	assert.Equal(t, ColorAuto, ParseColorMode("auto"))
	assert.Equal(t, ColorAuto, ParseColorMode(""))
}

func TestFormatterIsColorEnabled(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		mode   ColorMode
		want   bool
	}{
		{"always", FormatCLI, ColorAlways, true},
		{"never", FormatCLI, ColorNever, false},
		{"auto_buffer", FormatCLI, ColorAuto, false},
		{"plain_overrides_always", FormatPlain, ColorAlways, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Formatter{Writer: &bytes.Buffer{}, Format: tt.format, ColorMode: tt.mode}
			assert.Equal(t, tt.want, f.IsColorEnabled())
		})
	}
}

func TestFormatterPrint(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)

	f.Print("a")
	f.Println("b")
	f.Printf("%s-%d\n", "c", 1)

	assert.Equal(t, "ab\nc-1\n", buf.String())
}

// =============================================================================
// View Tests
// =============================================================================

func TestNewBoardOutput(t *testing.T) {
	view := NewBoardOutput(testBoard())

	assert.Equal(t, "12:00", view.Time)
	require.Len(t, view.Caves, 2)

	c := view.Caves[0]
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "working", c.Status)
	assert.True(t, c.Started)
	assert.Equal(t, "09:00", c.Start)
	assert.Equal(t, "01:00", c.Cooldown)
	assert.Equal(t, "15:00", c.End)
	assert.Equal(t, "03:00", c.Remaining)
	assert.InDelta(t, 0.5, c.Progress, 1e-9)
	assert.Equal(t, 50, c.Percent)

	idle := view.Caves[1]
	assert.Equal(t, "empty", idle.Status)
	assert.False(t, idle.Started)
	assert.Equal(t, "06:00", idle.Remaining)
}

func TestCaveOutputLabels(t *testing.T) {
	t.Run("started", func(t *testing.T) {
		c := NewBoardOutput(testBoard()).Caves[0]

		assert.Equal(t, "st: 09:00", c.StartLabel())
		assert.Equal(t, "cd: 01:00", c.CooldownLabel())
		assert.Equal(t, "e: 15:00", c.EndLabel())
		assert.Equal(t, "r: 03:00", c.RemainingLabel())
		assert.Equal(t, "50%", c.PercentLabel())
	})

	t.Run("placeholders", func(t *testing.T) {
		c := NewCaveOutput(model.NewCave("3"))

		assert.Equal(t, PlaceholderStart, c.StartLabel())
		assert.Equal(t, "end /", c.EndLabel())
		assert.Equal(t, PlaceholderRemaining, c.RemainingLabel())
		assert.Equal(t, "cd: 01:00", c.CooldownLabel())
	})
}

func TestReadyOutput(t *testing.T) {
	r := NewReadyOutput(caves.ReadyEvent{ID: "2", At: clock.New(18, 0)})

	assert.Equal(t, "ready", r.Event)
	assert.Equal(t, "18:00", r.At)
	assert.Equal(t, "Cave 2 is ready", r.Message())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(0.5, 10))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
	assert.Equal(t, "████", ProgressBar(2, 4))
	assert.Empty(t, ProgressBar(0.5, 0))
}

// =============================================================================
// CLI Tests
// =============================================================================

func TestCLIPrintBoard(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	NewCLIFormatter(f).PrintBoard(testBoard())

	out := buf.String()
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "Cave 1")
	assert.Contains(t, out, "working")
	assert.Contains(t, out, "st: 09:00")
	assert.Contains(t, out, "r: 03:00")
	assert.Contains(t, out, ProgressBar(0.5, BarWidth))
	assert.Contains(t, out, "Cave 2")
	assert.Contains(t, out, "rest")
	assert.NotContains(t, out, "\x1b[")
}

func TestCLIStreamBoard(t *testing.T) {
	f, buf := newTestFormatter(FormatPlain)
	NewCLIFormatter(f).StreamBoard(testBoard())

	line := strings.TrimSpace(buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.True(t, strings.HasPrefix(line, "12:00 | 1 working"))
	assert.Contains(t, line, "50% r 03:00")
	assert.Contains(t, line, "| 2 empty")
}

func TestCLIStreamReady(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	NewCLIFormatter(f).StreamReady(caves.ReadyEvent{ID: "1", At: clock.New(15, 0)})

	assert.Contains(t, buf.String(), "15:00 Cave 1 is ready")
}

func TestCLIMessages(t *testing.T) {
	f, buf := newTestFormatter(FormatCLI)
	c := NewCLIFormatter(f)

	c.Title("title")
	c.Success("ok")
	c.Warning("careful")
	c.Error("bad")
	c.Muted("quiet")

	out := buf.String()
	for _, s := range []string{"title", "✓ ok", "⚠ careful", "✗ bad", "quiet"} {
		assert.Contains(t, out, s)
	}
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestJSONPrintBoard(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).PrintBoard(testBoard()))

	var got BoardOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, NewBoardOutput(testBoard()), got)
}

func TestJSONStream(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	j := NewJSONFormatter(f)

	require.NoError(t, j.StreamBoard(testBoard()))
	require.NoError(t, j.StreamReady(caves.ReadyEvent{ID: "1", At: clock.New(15, 0)}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ready ReadyOutput
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &ready))
	assert.Equal(t, ReadyOutput{Event: "ready", ID: "1", At: "15:00"}, ready)
}

func TestJSONPrintError(t *testing.T) {
	f, buf := newTestFormatter(FormatJSON)
	require.NoError(t, NewJSONFormatter(f).PrintError("error", "invalid time", "use HH:MM"))

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, ErrorResponse{Status: "error", Error: "invalid time", Suggestion: "use HH:MM"}, got)
}
