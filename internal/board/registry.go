package board

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/couchcryptid/seismowatch/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrRegistryClosed is returned by Mount once shutdown has begun.
	ErrRegistryClosed = errors.New("board registry is closed")
	// ErrCapacity is returned by Mount when the mounted-board limit is reached.
	ErrCapacity = errors.New("board capacity reached")
)

// RegistryConfig configures the boards a Registry mounts.
type RegistryConfig struct {
	Period    time.Duration
	MaxBoards int
	// RandSeed makes every board's random stream deterministic when non-zero.
	RandSeed uint64
	Clock    clockwork.Clock
}

// Registry tracks mounted boards so every one of them is torn down on
// shutdown. It implements the HTTP readiness check.
type Registry struct {
	cfg     RegistryConfig
	logger  *slog.Logger
	metrics *observability.Metrics

	mu     sync.Mutex
	boards map[string]*Board
	seq    uint64
	closed bool
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig, logger *slog.Logger, metrics *observability.Metrics) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Registry{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		boards:  make(map[string]*Board),
	}
}

// Mount creates and registers a new inactive board. The returned release
// function closes the board and unregisters it; it is safe to call more than
// once.
func (r *Registry) Mount(onChange func(Snapshot)) (*Board, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		r.metrics.MountsTotal.WithLabelValues("rejected").Inc()
		return nil, nil, ErrRegistryClosed
	}
	if r.cfg.MaxBoards > 0 && len(r.boards) >= r.cfg.MaxBoards {
		r.metrics.MountsTotal.WithLabelValues("rejected").Inc()
		return nil, nil, ErrCapacity
	}

	r.seq++
	b, err := New(Options{
		ID:       uuid.NewString(),
		Period:   r.cfg.Period,
		Clock:    r.cfg.Clock,
		Rand:     r.newRandLocked(),
		OnChange: onChange,
		Logger:   r.logger,
		Metrics:  r.metrics,
	})
	if err != nil {
		return nil, nil, err
	}

	r.boards[b.ID()] = b
	r.metrics.BoardsMounted.Inc()
	r.metrics.MountsTotal.WithLabelValues("ok").Inc()
	r.logger.Info("board mounted", "board_id", b.ID(), "mounted", len(r.boards))

	var once sync.Once
	release := func() {
		once.Do(func() { r.unmount(b) })
	}
	return b, release, nil
}

func (r *Registry) newRandLocked() *rand.Rand {
	if r.cfg.RandSeed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(r.cfg.RandSeed, r.seq))
}

func (r *Registry) unmount(b *Board) {
	b.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boards[b.ID()]; !ok {
		return
	}
	delete(r.boards, b.ID())
	r.metrics.BoardsMounted.Dec()
	r.logger.Info("board unmounted", "board_id", b.ID(), "mounted", len(r.boards))
}

// Mounted returns the number of mounted boards.
func (r *Registry) Mounted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

// Close rejects further mounts and tears down every mounted board.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	boards := make([]*Board, 0, len(r.boards))
	for _, b := range r.boards {
		boards = append(boards, b)
	}
	clear(r.boards)
	r.metrics.BoardsMounted.Set(0)
	r.mu.Unlock()

	for _, b := range boards {
		b.Close()
	}
	r.logger.Info("board registry closed", "torn_down", len(boards))
}

// CheckReadiness returns an error once the registry has been closed.
func (r *Registry) CheckReadiness(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRegistryClosed
	}
	return nil
}
