// Command validate checks a recording written by cmd/simulate against the
// live board invariants: bounded non-negative tweet and confidence
// increments, confidence within [0, 95], stable ids and statuses, and
// advancing tick and revision counters.
//
// Usage:
//
//	go run ./cmd/validate -in data/fixtures/board_40.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/seismowatch/internal/board"
)

func main() {
	in := flag.String("in", "", "recording to validate (JSON from cmd/simulate)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	n, err := validate(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s\n%v\n", *in, err)
		os.Exit(1)
	}
	fmt.Printf("OK %s: %d snapshots\n", *in, n)
}

func validate(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read recording: %w", err)
	}

	var rec board.Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("parse recording: %w", err)
	}
	if len(rec.Snapshots) == 0 {
		return 0, errors.New("recording has no snapshots")
	}
	return len(rec.Snapshots), board.Verify(rec)
}
