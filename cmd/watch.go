package cmd

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/clock"
	errs "github.com/manav03panchal/cavetimer/internal/errors"
	"github.com/manav03panchal/cavetimer/internal/logging"
	"github.com/manav03panchal/cavetimer/internal/runtime"
	"github.com/manav03panchal/cavetimer/internal/store"
	"github.com/manav03panchal/cavetimer/internal/ticker"
	"github.com/manav03panchal/cavetimer/internal/tui"
)

// Watch command flags.
var (
	watchFlagStream bool
	watchFlagTicks  int
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w", "dashboard", "dash", "tui"},
	Short:   "Watch the caves count down",
	Long: `Watch every cave count down until it is ready again.

On a terminal this opens the dashboard. When stdout is not a terminal, or
with --stream, one line per tick is printed instead.

Keyboard Controls:
  ←/→, tab  - Select cave
  1-9       - Jump to cave
  s         - Pick a start time (defaults to now)
  n         - Start the selected cave now
  c         - Pick a cooldown
  r         - Reset all caves
  q         - Quit

Examples:
  cavetimer watch
  cavetimer watch --start 1=08:30 --cooldown 1=00:45
  cavetimer watch --stream --format json
  cavetimer watch --stream --ticks 5`,
	RunE: runWatchCommand,
}

func init() {
	watchCmd.Flags().BoolVar(&watchFlagStream, "stream", false, "Print one line per tick instead of opening the dashboard")
	watchCmd.Flags().IntVarP(&watchFlagTicks, "ticks", "n", 0, "Stop streaming once the driver has delivered N ticks (0 streams until interrupted)")
	addBoardFlags(watchCmd)

	rootCmd.AddCommand(watchCmd)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	if watchFlagStream || !isTerminal() {
		return runStream(cmd, args)
	}
	return runDashboard(cmd, args)
}

// runRootDashboard opens the dashboard and refuses to run off a terminal.
func runRootDashboard(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errs.InvalidValue(errs.ErrNotTerminal, "stdout", os.Stdout.Name())
	}
	return runDashboard(cmd, args)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	board, err := initialBoard()
	if err != nil {
		return err
	}

	if err := ctx.LogToFile(); err != nil {
		return err
	}

	sigCtx, stop := runtime.SignalContext(cmd.Context())
	defer stop()

	_, err = tui.Run(sigCtx, tui.DashboardConfig{
		Board:    board,
		Clock:    ctx.Clock,
		Interval: ctx.Config.Tick.Interval,
	})
	if errors.Is(err, tea.ErrProgramKilled) && sigCtx.Err() != nil {
		return nil
	}
	return err
}

// runStream drives a store from the tick driver and prints every snapshot.
func runStream(cmd *cobra.Command, args []string) error {
	board, err := initialBoard()
	if err != nil {
		return err
	}

	sigCtx, stop := runtime.SignalContext(cmd.Context())
	defer stop()
	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	st := store.New(board)
	updates := st.Subscribe()
	log := logging.FromContext(logging.WithRequestID(runCtx, st.SessionID()))

	g, gctx := errgroup.WithContext(runCtx)

	var driver *ticker.Driver
	driver = ticker.New(ctx.Config.Tick.Interval, ctx.Clock, func(now clock.Time) {
		if err := st.Dispatch(gctx, store.TickCmd{Now: now}); err != nil {
			if gctx.Err() == nil {
				log.Warn("tick dropped", logging.KeyError, err)
			}
			return
		}
		if tickLimitReached(driver.Ticks(), watchFlagTicks) {
			cancel()
		}
	})

	g.Go(func() error {
		return st.Run(gctx)
	})

	g.Go(func() error {
		if err := driver.Start(gctx); err != nil {
			return err
		}
		driver.TickNow()
		<-gctx.Done()
		driver.Stop()
		return nil
	})

	g.Go(func() error {
		for u := range updates {
			for _, ev := range u.Ready {
				if err := printReady(ev); err != nil {
					return err
				}
			}
			if err := printBoard(u.Board); err != nil {
				return err
			}
		}
		return nil
	})

	streamLog := log.With(logging.KeyInterval, driver.Interval().String())
	streamLog.Debug("streaming")
	if err := g.Wait(); err != nil {
		streamLog.Error("stream failed", logging.KeyError, err)
		return err
	}
	return nil
}

// tickLimitReached reports whether a stream limited to limit ticks is done.
// A limit of zero never stops.
func tickLimitReached(delivered uint64, limit int) bool {
	return limit > 0 && delivered >= uint64(limit)
}

func printBoard(b caves.Board) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().StreamBoard(b)
	}
	ctx.CLIFormatter().StreamBoard(b)
	return nil
}

func printReady(ev caves.ReadyEvent) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().StreamReady(ev)
	}
	ctx.CLIFormatter().StreamReady(ev)
	return nil
}
