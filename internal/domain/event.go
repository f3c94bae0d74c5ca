package domain

import (
	"errors"
	"fmt"
)

// MaxConfidence is the upper bound a simulated step clamps confidence to.
const MaxConfidence = 95.0

// Coordinates is a [longitude, latitude] pair.
type Coordinates [2]float64

// Lon returns the longitude.
func (c Coordinates) Lon() float64 { return c[0] }

// Lat returns the latitude.
func (c Coordinates) Lat() float64 { return c[1] }

// EventRecord is one simulated detection entry on the live board.
// It holds only value fields so a plain assignment is a full copy.
type EventRecord struct {
	ID          string      `json:"id"`
	Location    string      `json:"location"`
	Magnitude   float64     `json:"magnitude"`
	Confidence  float64     `json:"confidence"`
	TweetCount  int         `json:"tweet_count"`
	Timestamp   string      `json:"timestamp"`
	Status      Status      `json:"status"`
	TopTweet    string      `json:"top_tweet"`
	Coordinates Coordinates `json:"coordinates"`
}

// ValidateSeed checks a seed collection against the record invariants and
// returns every problem found, joined.
func ValidateSeed(events []EventRecord) error {
	var errs []error
	seen := make(map[string]struct{}, len(events))
	for i, e := range events {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("event %d: empty id", i))
		} else if _, dup := seen[e.ID]; dup {
			errs = append(errs, fmt.Errorf("event %d: duplicate id %q", i, e.ID))
		}
		seen[e.ID] = struct{}{}

		if e.Confidence < 0 || e.Confidence > MaxConfidence {
			errs = append(errs, fmt.Errorf("event %q: confidence %.2f outside [0, %.0f]", e.ID, e.Confidence, MaxConfidence))
		}
		if e.TweetCount < 0 {
			errs = append(errs, fmt.Errorf("event %q: negative tweet count %d", e.ID, e.TweetCount))
		}
	}
	return errors.Join(errs...)
}

// CloneEvents returns a copy of events that shares no backing array.
func CloneEvents(events []EventRecord) []EventRecord {
	if events == nil {
		return nil
	}
	out := make([]EventRecord, len(events))
	copy(out, events)
	return out
}
