// Package store owns the live cave board. A single goroutine applies
// commands in arrival order and publishes every resulting snapshot.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/logging"
)

// ErrClosed is returned by Dispatch once Run has returned.
var ErrClosed = errors.New("store closed")

// Update is a published snapshot together with the readiness events the
// command produced.
type Update struct {
	Board  caves.Board
	Ready  []caves.ReadyEvent
	Source string
}

// Store applies commands to a caves.Board from one goroutine.
type Store struct {
	sessionID string
	commands  chan Command
	closed    chan struct{}

	mu          sync.RWMutex
	board       caves.Board
	subscribers []chan Update
}

// New creates a Store holding initial. Run must be called to apply commands.
func New(initial caves.Board) *Store {
	return &Store{
		sessionID: logging.GenerateRequestID(),
		commands:  make(chan Command),
		closed:    make(chan struct{}),
		board:     initial,
	}
}

// SessionID identifies this store in logs.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Snapshot returns the most recent board.
func (s *Store) Snapshot() caves.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Subscribe returns a channel receiving every new snapshot. The channel
// holds one pending update; a slow reader only sees the latest board but
// still receives every ready event. It is closed when Run returns.
func (s *Store) Subscribe() <-chan Update {
	ch := make(chan Update, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.closed:
		close(ch)
	default:
		s.subscribers = append(s.subscribers, ch)
	}
	return ch
}

// Dispatch hands cmd to the owning goroutine and blocks until it was
// accepted, ctx is done, or the store is closed.
func (s *Store) Dispatch(ctx context.Context, cmd Command) error {
	select {
	case s.commands <- cmd:
		return nil
	case <-s.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies commands until ctx is cancelled.
func (s *Store) Run(ctx context.Context) error {
	ctx = logging.WithRequestID(ctx, s.sessionID)
	log := logging.FromContext(ctx)
	log.Debug("store running", logging.KeyCount, s.Snapshot().Len())

	defer s.shutdown()

	for {
		select {
		case <-ctx.Done():
			log.Debug("store stopped")
			return nil
		case cmd := <-s.commands:
			s.apply(log, cmd)
		}
	}
}

func (s *Store) apply(log *logging.ContextLogger, cmd Command) {
	s.mu.Lock()
	prev := s.board
	next := cmd.Apply(prev)
	s.board = next
	subs := s.subscribers
	s.mu.Unlock()

	update := Update{
		Board:  next,
		Ready:  caves.ReadyEvents(prev, next),
		Source: cmd.Name(),
	}
	for _, ev := range update.Ready {
		log.Info("cave ready", logging.KeyCave, ev.ID, logging.KeyTime, ev.At.String())
	}
	if _, isTick := cmd.(TickCmd); !isTick {
		log.Debug("command applied", logging.KeyOperation, cmd.Name())
	}

	for _, ch := range subs {
		publish(ch, update)
	}
}

// publish replaces any unread update with u, carrying over its ready events.
func publish(ch chan Update, u Update) {
	for {
		select {
		case ch <- u:
			return
		default:
		}
		select {
		case old := <-ch:
			u.Ready = slices.Concat(old.Ready, u.Ready)
		default:
		}
	}
}

func (s *Store) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.closed)
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}
