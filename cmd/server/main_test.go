package main

import (
	"os"
	"path/filepath"
	"testing"

	"raywizard/internal/config"
	"raywizard/internal/engine"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテストです", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestWantsContinue(t *testing.T) {
	if !wantsContinue([]string{"continue"}) {
		t.Error("continue should resume")
	}
	if wantsContinue(nil) || wantsContinue([]string{"play"}) {
		t.Error("only continue resumes")
	}
}

func TestFarewell(t *testing.T) {
	cases := []struct {
		outcome engine.Outcome
		id      string
		want    string
	}{
		{engine.OutcomeWon, "", "You escaped. Thanks for playing!"},
		{engine.OutcomeDied, "", "You died. Thanks for playing!"},
		{engine.OutcomeQuit, "01ARZ3NDEKTSV4RRFFQ69G5FAV", "Game saved. Resume with: ssh -t -p 2222 <host> continue"},
		{engine.OutcomeQuit, "", "Goodbye."},
	}
	for _, tc := range cases {
		if got := farewell(tc.outcome, tc.id, 2222); got != tc.want {
			t.Errorf("farewell(%v, %q) = %q, want %q", tc.outcome, tc.id, got, tc.want)
		}
	}
}

func TestHostKeyIsPersisted(t *testing.T) {
	log, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatal(err)
	}
	if string(first.PublicKey().Marshal()) != string(second.PublicKey().Marshal()) {
		t.Error("reloaded key differs")
	}
}

func TestFlags(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cmd, err := newRootCmd()
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.ParseFlags([]string{"--port", "2022", "--key", "k.pem", "--save", "none"}); err != nil {
		t.Fatal(err)
	}
	for flag, want := range map[string]string{"port": "2022", "key": "k.pem", "save": config.SaveNone, "level": "1"} {
		if got := cmd.Flags().Lookup(flag).Value.String(); got != want {
			t.Errorf("--%s = %q, want %q", flag, got, want)
		}
	}
}
