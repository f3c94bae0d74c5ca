package domain

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Per-step increment bounds.
const (
	maxTweetIncrement      = 9   // inclusive
	maxConfidenceIncrement = 2.0 // exclusive
)

// Advance returns the next simulated state of events as a new slice. The
// input slice and its records are left untouched.
func Advance(events []EventRecord, rng *rand.Rand) []EventRecord {
	next := make([]EventRecord, len(events))
	for i, e := range events {
		e.TweetCount += rng.IntN(maxTweetIncrement + 1)
		e.Confidence = math.Min(MaxConfidence, e.Confidence+rng.Float64()*maxConfidenceIncrement)
		next[i] = e
	}
	return next
}

// CheckStep verifies that next is a legal single simulated step from prev:
// same ids and statuses in the same order, bounded non-negative increments and
// confidence within range. It returns every violation found, joined.
func CheckStep(prev, next []EventRecord) error {
	if len(prev) != len(next) {
		return fmt.Errorf("event count changed from %d to %d", len(prev), len(next))
	}

	var errs []error
	for i := range prev {
		p, n := prev[i], next[i]
		if p.ID != n.ID {
			errs = append(errs, fmt.Errorf("event %d: id changed from %q to %q", i, p.ID, n.ID))
			continue
		}
		if p.Status != n.Status {
			errs = append(errs, fmt.Errorf("event %q: status changed from %s to %s", p.ID, p.Status, n.Status))
		}
		if d := n.TweetCount - p.TweetCount; d < 0 || d > maxTweetIncrement {
			errs = append(errs, fmt.Errorf("event %q: tweet count moved by %d", p.ID, d))
		}
		if n.Confidence < 0 || n.Confidence > MaxConfidence {
			errs = append(errs, fmt.Errorf("event %q: confidence %.4f out of range", p.ID, n.Confidence))
		}
		if d := n.Confidence - p.Confidence; d < 0 || d >= maxConfidenceIncrement {
			errs = append(errs, fmt.Errorf("event %q: confidence moved by %.4f", p.ID, d))
		}
		if !staticFieldsEqual(p, n) {
			errs = append(errs, fmt.Errorf("event %q: static fields changed", p.ID))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func staticFieldsEqual(a, b EventRecord) bool {
	a.TweetCount, b.TweetCount = 0, 0
	a.Confidence, b.Confidence = 0, 0
	return a == b
}
