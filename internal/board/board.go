// Package board implements the live event board: a seeded collection of
// simulated detection events that advances on a fixed period while live.
package board

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/couchcryptid/seismowatch/internal/domain"
	"github.com/couchcryptid/seismowatch/internal/observability"
	"github.com/jonboulle/clockwork"
)

// DefaultPeriod is the tick period used when Options.Period is zero.
const DefaultPeriod = 3 * time.Second

// Snapshot is an immutable view of a board's state. Events is a private copy.
type Snapshot struct {
	BoardID string `json:"board_id"`
	// Revision increments on every committed change, tick or toggle.
	Revision uint64 `json:"revision"`
	// Ticks counts committed simulated steps; a new value means a new collection.
	Ticks  uint64               `json:"ticks"`
	Live   bool                 `json:"live"`
	Events []domain.EventRecord `json:"events"`
}

// SeedSnapshot is the state a freshly started board shows before its first
// tick. Pages render it until their socket delivers a live board.
func SeedSnapshot() Snapshot {
	return Snapshot{Live: true, Events: domain.SeedEvents()}
}

// Options configures a Board. Zero values select defaults.
type Options struct {
	ID     string
	Period time.Duration
	// Seed is the collection installed on first activation. Nil selects
	// domain.SeedEvents.
	Seed  []domain.EventRecord
	Clock clockwork.Clock
	Rand  *rand.Rand
	// OnChange receives the state after each committed tick. It runs on the
	// board's scheduling goroutine, outside the board lock.
	OnChange func(Snapshot)
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

// Board owns a collection of simulated events and the schedule that advances
// it. All methods are safe for concurrent use.
type Board struct {
	id       string
	period   time.Duration
	seed     []domain.EventRecord
	clock    clockwork.Clock
	onChange func(Snapshot)
	logger   *slog.Logger
	metrics  *observability.Metrics

	mu       sync.Mutex
	rng      *rand.Rand
	events   []domain.EventRecord
	started  bool
	live     bool
	closed   bool
	revision uint64
	ticks    uint64

	// gen identifies the current schedule. A tick carrying any other value
	// was queued before a cancellation and must not touch state.
	gen    uint64
	ticker clockwork.Ticker
	stop   chan struct{}

	done chan struct{}
}

// New validates the options and returns an inactive board. Call Start to
// populate it and begin ticking.
func New(opts Options) (*Board, error) {
	seed := opts.Seed
	if seed == nil {
		seed = domain.SeedEvents()
	}
	if err := domain.ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	if opts.Period < 0 {
		return nil, fmt.Errorf("invalid period %s", opts.Period)
	}

	b := &Board{
		id:       opts.ID,
		period:   opts.Period,
		seed:     domain.CloneEvents(seed),
		clock:    opts.Clock,
		rng:      opts.Rand,
		onChange: opts.OnChange,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		done:     make(chan struct{}),
	}
	if b.period == 0 {
		b.period = DefaultPeriod
	}
	if b.clock == nil {
		b.clock = clockwork.NewRealClock()
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.metrics == nil {
		b.metrics = observability.NewMetricsForTesting()
	}
	b.logger = b.logger.With("board_id", b.id)
	return b, nil
}

// ID returns the board's identifier.
func (b *Board) ID() string { return b.id }

// Period returns the tick period.
func (b *Board) Period() time.Duration { return b.period }

// Start activates the board. The first call installs the seed collection;
// every call turns the live flag on.
func (b *Board) Start() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	if !b.started {
		b.started = true
		b.events = domain.CloneEvents(b.seed)
		b.revision++
		b.logger.Debug("board populated", "events", len(b.events))
	}
	b.mu.Unlock()

	b.SetLive(true)
}

// Stop turns the live flag off.
func (b *Board) Stop() { b.SetLive(false) }

// SetLive turns ticking on or off. Turning it on schedules the next tick one
// full period from now; turning it off cancels the pending schedule before
// returning. It is a no-op after Close and before Start.
func (b *Board) SetLive(live bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || !b.started || b.live == live {
		return
	}

	b.live = live
	b.revision++
	if live {
		b.scheduleLocked()
		b.metrics.BoardsLive.Inc()
		b.metrics.Toggles.WithLabelValues("live").Inc()
	} else {
		b.cancelLocked()
		b.metrics.BoardsLive.Dec()
		b.metrics.Toggles.WithLabelValues("paused").Inc()
	}
	b.logger.Debug("live flag changed", "live", live)
}

// Close tears the board down. Any pending tick is cancelled before Close
// returns and the board never changes again. Close is idempotent.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	if b.live {
		b.live = false
		b.metrics.BoardsLive.Dec()
	}
	b.cancelLocked()
}

// Done is closed when the board is torn down.
func (b *Board) Done() <-chan struct{} { return b.done }

// Live reports whether the board is ticking.
func (b *Board) Live() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.live
}

// Closed reports whether Close has been called.
func (b *Board) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() Snapshot {
	return Snapshot{
		BoardID:  b.id,
		Revision: b.revision,
		Ticks:    b.ticks,
		Live:     b.live,
		Events:   domain.CloneEvents(b.events),
	}
}

func (b *Board) scheduleLocked() {
	b.gen++
	b.ticker = b.clock.NewTicker(b.period)
	b.stop = make(chan struct{})
	go b.run(b.gen, b.ticker, b.stop)
}

func (b *Board) cancelLocked() {
	b.gen++
	if b.ticker == nil {
		return
	}
	b.ticker.Stop()
	close(b.stop)
	b.ticker = nil
	b.stop = nil
}

// run delivers ticks for one schedule until it is cancelled. Ticks are
// handled one at a time, so a tick never starts before the previous one has
// committed.
func (b *Board) run(gen uint64, ticker clockwork.Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			b.tick(gen)
		}
	}
}

func (b *Board) tick(gen uint64) {
	b.mu.Lock()
	if b.closed || !b.live || gen != b.gen {
		b.mu.Unlock()
		b.metrics.TicksDropped.Inc()
		return
	}
	b.events = domain.Advance(b.events, b.rng)
	b.ticks++
	b.revision++
	snap := b.snapshotLocked()
	b.mu.Unlock()

	b.metrics.TicksApplied.Inc()
	b.logger.Debug("tick applied", "ticks", snap.Ticks)

	if b.onChange != nil {
		b.onChange(snap)
	}
}
