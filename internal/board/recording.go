package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/couchcryptid/seismowatch/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Recording is a deterministic run of a board: the started state followed by
// the state after each tick.
type Recording struct {
	Seed      uint64     `json:"seed"`
	Period    string     `json:"period"`
	Snapshots []Snapshot `json:"snapshots"`
}

// tickTimeout bounds how long Record waits for a fired tick to commit.
const tickTimeout = 5 * time.Second

// Record runs a board seeded with rngSeed for the given number of ticks on a
// fake clock. The same arguments always produce the same recording.
func Record(ticks int, rngSeed uint64, period time.Duration) (Recording, error) {
	if ticks < 0 {
		return Recording{}, fmt.Errorf("invalid tick count %d", ticks)
	}
	if period <= 0 {
		period = DefaultPeriod
	}

	clock := clockwork.NewFakeClock()
	updates := make(chan Snapshot, 1)

	b, err := New(Options{
		ID:       fmt.Sprintf("recording-%d", rngSeed),
		Period:   period,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(rngSeed, rngSeed)),
		OnChange: func(s Snapshot) { updates <- s },
	})
	if err != nil {
		return Recording{}, err
	}
	defer b.Close()

	b.Start()
	rec := Recording{
		Seed:      rngSeed,
		Period:    period.String(),
		Snapshots: []Snapshot{b.Snapshot()},
	}

	for range ticks {
		clock.Advance(period)
		select {
		case s := <-updates:
			rec.Snapshots = append(rec.Snapshots, s)
		case <-time.After(tickTimeout):
			return Recording{}, fmt.Errorf("tick %d did not commit", len(rec.Snapshots))
		}
	}
	return rec, nil
}

// Verify checks every consecutive pair of snapshots in a recording against
// the board invariants and returns every violation found, joined.
func Verify(rec Recording) error {
	if len(rec.Snapshots) == 0 {
		return errors.New("recording has no snapshots")
	}
	if err := domain.ValidateSeed(rec.Snapshots[0].Events); err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}

	var errs []error
	for i := 1; i < len(rec.Snapshots); i++ {
		prev, next := rec.Snapshots[i-1], rec.Snapshots[i]
		if next.Ticks != prev.Ticks+1 {
			errs = append(errs, fmt.Errorf("snapshot %d: ticks %d follows %d", i, next.Ticks, prev.Ticks))
		}
		if next.Revision <= prev.Revision {
			errs = append(errs, fmt.Errorf("snapshot %d: revision %d does not advance past %d", i, next.Revision, prev.Revision))
		}
		if err := domain.CheckStep(prev.Events, next.Events); err != nil {
			errs = append(errs, fmt.Errorf("snapshot %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
