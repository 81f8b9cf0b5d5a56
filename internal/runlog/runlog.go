// Package runlog appends one JSON line per finished run to runs.jsonl.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"raywizard/internal/engine"

	"github.com/sirupsen/logrus"
)

// FileName is the log file inside the data directory.
const FileName = "runs.jsonl"

// Record is the summary of one run, from the first turn to death, victory
// or quitting.
type Record struct {
	EndedAt      time.Time `json:"ended_at"`
	Seed         int64     `json:"seed"`
	LevelReached int       `json:"level_reached"`
	Turns        int       `json:"turns"`
	Outcome      string    `json:"outcome"`
	CauseOfDeath string    `json:"cause_of_death,omitempty"`
}

// FromWorld summarises a finished world.
func FromWorld(w *engine.World, now time.Time) Record {
	r := Record{
		EndedAt: now,
		Seed:    w.Seed,
		Turns:   w.Turn,
		Outcome: w.Outcome.String(),
	}
	if w.Level != nil {
		r.LevelReached = w.Level.Number
	}
	if w.Outcome == engine.OutcomeDied {
		r.CauseOfDeath = w.LastHurt
	}
	return r
}

// Append writes rec as a single line to dir/runs.jsonl, creating the
// directory if needed.
func Append(dir string, rec Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("runlog: create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runlog: open: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("runlog: marshal: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("runlog: write: %w", err)
	}
	return nil
}

// Save is Append for callers that must not fail on a disk problem: errors
// are logged and dropped.
func Save(dir string, rec Record, log logrus.FieldLogger) {
	if err := Append(dir, rec); err != nil {
		log.WithError(err).Warn("run log not written")
		return
	}
	log.WithFields(logrus.Fields{"outcome": rec.Outcome, "turns": rec.Turns}).Debug("run logged")
}
