// Package runtime provides application runtime context for cavetimer.
package runtime

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/config"
	errs "github.com/manav03panchal/cavetimer/internal/errors"
	"github.com/manav03panchal/cavetimer/internal/logging"
	"github.com/manav03panchal/cavetimer/internal/output"
	"github.com/manav03panchal/cavetimer/internal/parser"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Formatter *output.Formatter
	Clock     clock.Clock

	// Debug mode
	Debug bool

	logFile *os.File
	now     func() time.Time
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
		Debug:      false,
	}
}

// New creates a new runtime context. It loads the configuration and points
// the global logger at stderr.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	c := &Context{
		Config:    cfg,
		Formatter: formatter,
		Clock:     clock.System{},
		Debug:     opts.Debug,
		now:       time.Now,
	}
	logging.Init(c.logConfig())

	if lvl := cfg.Logging.Level; !strings.EqualFold(logging.ParseLevel(lvl).String(), lvl) {
		logging.Warn("unknown log level, using info", "level", lvl)
	}
	logging.LogOperation("config_load",
		"path", opts.ConfigPath,
		logging.KeyCount, cfg.Board.CaveCount,
		logging.KeyInterval, cfg.Tick.Interval.String(),
	)

	return c, nil
}

func (c *Context) logConfig() logging.Config {
	if c.Debug {
		return logging.DebugConfig()
	}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Config.Logging.Level)
	return cfg
}

// LogToFile redirects logging to the configured log file, keeping the
// terminal free for the dashboard.
func (c *Context) LogToFile() error {
	cfg := c.logConfig()
	cfg.AddSource = false

	file, err := logging.InitFile(c.Config.Logging.File, cfg)
	if err != nil {
		return errs.NewSystemErrorWithOp("log", "failed to open log file", err)
	}
	c.logFile = file
	logging.DebugLog("logging to file", slog.String("path", file.Name()))
	return nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.logFile == nil {
		return nil
	}
	logging.Init(logging.DefaultConfig())
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// Now returns the current wall-clock time.
func (c *Context) Now() time.Time {
	return c.now()
}

// NewBoard creates a board from the configuration, sampled at the current time.
func (c *Context) NewBoard() caves.Board {
	return caves.NewBoardWithCooldown(
		c.Config.Board.CaveCount,
		c.Clock.Now(),
		c.Config.Board.DefaultCooldown,
	)
}

// ApplyAssignments applies "ID=HH:MM" cooldowns and "ID=TIME" start times
// given on the command line.
func (c *Context) ApplyAssignments(b caves.Board, starts, cooldowns []string) (caves.Board, error) {
	cds, err := parser.ParseCooldownAssignments(cooldowns)
	if err != nil {
		return b, err
	}
	sts, err := parser.ParseStartAssignments(starts, c.Now())
	if err != nil {
		return b, err
	}

	for _, a := range cds {
		if !b.Has(a.ID) {
			return b, errs.InvalidValue(errs.ErrUnknownCave, "cave", a.ID)
		}
		b = b.SetCooldown(a.ID, a.Time)
		logging.DebugLog("cooldown set", logging.KeyCave, a.ID, logging.KeyTime, a.Time.String())
	}
	for _, a := range sts {
		if !b.Has(a.ID) {
			return b, errs.InvalidValue(errs.ErrUnknownCave, "cave", a.ID)
		}
		b = b.SetStartTime(a.ID, a.Time)
		logging.DebugLog("start time set", logging.KeyCave, a.ID, logging.KeyTime, a.Time.String())
	}
	return b, nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}
