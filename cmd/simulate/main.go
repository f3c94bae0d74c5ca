// Command simulate runs a seeded live board against a fake clock and writes
// the snapshot after every tick as a JSON fixture. The output is fully
// determined by the flags, which makes it suitable for golden files and for
// cmd/validate.
//
// Usage:
//
//	go run ./cmd/simulate -ticks 40 -seed 7 -out data/fixtures/board_40.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/seismowatch/internal/board"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ticks := flag.Int("ticks", 20, "number of ticks to simulate")
	seed := flag.Uint64("seed", 1, "random seed")
	period := flag.Duration("period", board.DefaultPeriod, "tick period")
	out := flag.String("out", "", "output path (default stdout)")
	flag.Parse()

	if *ticks < 1 {
		flag.Usage()
		return fmt.Errorf("-ticks must be positive")
	}

	rec, err := board.Record(*ticks, *seed, *period)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recording: %w", err)
	}
	data = append(data, '\n')

	if *out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	log.Printf("wrote %d snapshots to %s", len(rec.Snapshots), *out)
	return nil
}
