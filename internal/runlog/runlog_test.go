package runlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"raywizard/internal/engine"
	"raywizard/internal/gamemap"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestAppend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	rec := Record{Seed: 7, LevelReached: 2, Turns: 42, Outcome: "died", CauseOfDeath: "acid"}
	if err := Append(dir, rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("log entry should end with newline; got: %q", content)
	}
	var got Record
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &got); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if got != rec {
		t.Errorf("got %+v, want %+v", got, rec)
	}
}

func TestAppendMultiple(t *testing.T) {
	dir := t.TempDir()
	for i := range 3 {
		if err := Append(dir, Record{LevelReached: i + 1}); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestSaveLogsFailures(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	log, hook := test.NewNullLogger()
	Save(filepath.Join(blocker, "dir"), Record{}, log)
	if len(hook.Entries) != 1 || hook.LastEntry().Message != "run log not written" {
		t.Errorf("entries = %+v", hook.Entries)
	}
}

type room struct{}

func (room) Generate(w *engine.World, level int) (*engine.Level, error) {
	l := engine.NewLevel(level, gamemap.New(3, 3, gamemap.TileFloor))
	w.PlacePlayer(l, 1, 1)
	return l, nil
}

func TestFromWorld(t *testing.T) {
	w, err := engine.New(&engine.Config{Seed: 99, Level: 2, Generator: room{}})
	if err != nil {
		t.Fatal(err)
	}
	w.Turn = 12
	w.Outcome = engine.OutcomeDied
	w.LastHurt = "heat"
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got := FromWorld(w, now)
	want := Record{EndedAt: now, Seed: 99, LevelReached: 2, Turns: 12, Outcome: "died", CauseOfDeath: "heat"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	w.Outcome = engine.OutcomeWon
	if got := FromWorld(w, now); got.CauseOfDeath != "" || got.Outcome != "won" {
		t.Errorf("won run: %+v", got)
	}
}
