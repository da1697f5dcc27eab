// Package fetch owns the single feed load and the job collection it produces.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jimezsa/jobfeed/internal/feed"
	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/rs/zerolog"
)

// FailureMessage is the only transport error text shown to users.
const FailureMessage = "Failed to load jobs. Please try again later."

var (
	ErrInFlight = errors.New("a feed load is already in flight")
	ErrClosed   = errors.New("loader is closed")
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Source yields the raw feed rows.
type Source interface {
	Fetch(ctx context.Context) ([]feed.Row, error)
}

// Snapshot is a consistent view of the loader. Jobs is never mutated after
// it is published.
type Snapshot struct {
	State    State        `json:"state"`
	Jobs     []models.Job `json:"-"`
	Error    string       `json:"error,omitempty"`
	LoadID   string       `json:"load_id,omitempty"`
	LoadedAt time.Time    `json:"loaded_at,omitzero"`
}

// Loading reports whether a load is in flight.
func (s Snapshot) Loading() bool {
	return s.State == StateLoading
}

// Loader runs feed loads one at a time and swaps the job collection in a
// single step when a load settles.
type Loader struct {
	source Source
	logger zerolog.Logger
	now    func() time.Time

	mu         sync.RWMutex
	snapshot   Snapshot
	generation uint64
	closed     bool
}

func NewLoader(source Source, logger zerolog.Logger) *Loader {
	return &Loader{
		source:   source,
		logger:   logger,
		now:      time.Now,
		snapshot: Snapshot{State: StateIdle, Jobs: []models.Job{}},
	}
}

func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

// Load fetches and normalizes the feed. On failure the collection is cleared
// and FailureMessage is published; the cause is returned to the caller.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.snapshot.State == StateLoading {
		l.mu.Unlock()
		return ErrInFlight
	}
	l.generation++
	generation := l.generation
	loadID := uuid.NewString()
	l.snapshot = Snapshot{State: StateLoading, Jobs: []models.Job{}, LoadID: loadID}
	l.mu.Unlock()

	log := l.logger.With().Str("load_id", loadID).Logger()
	log.Debug().Msg("feed load started")
	start := l.now()

	rows, err := l.source.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", l.now().Sub(start)).Msg("feed load failed")
		if !l.settle(generation, Snapshot{State: StateFailed, Jobs: []models.Job{}, Error: FailureMessage, LoadID: loadID}) {
			return nil
		}
		return fmt.Errorf("load feed: %w", err)
	}

	jobs := feed.Normalize(rows)
	if !l.settle(generation, Snapshot{State: StateReady, Jobs: jobs, LoadID: loadID, LoadedAt: l.now()}) {
		log.Debug().Msg("discarding feed result after close")
		return nil
	}
	log.Info().
		Int("rows", len(rows)).
		Int("jobs", len(jobs)).
		Dur("elapsed", l.now().Sub(start)).
		Msg("feed loaded")
	return nil
}

// Close discards any in-flight result and rejects further loads.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.generation++
	l.snapshot = Snapshot{State: StateIdle, Jobs: []models.Job{}}
}

func (l *Loader) settle(generation uint64, next Snapshot) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || generation != l.generation {
		return false
	}
	l.snapshot = next
	return true
}
