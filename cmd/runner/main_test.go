package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

func TestLoadGameConfigPresets(t *testing.T) {
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  speed: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		difficulty  string
		wantEnabled bool
		wantLevel   float64
	}{
		{"", true, 0},
		{"hard", true, 0.7},
		{"fixed", false, 0},
	}

	for _, tt := range tests {
		t.Run("preset="+tt.difficulty, func(t *testing.T) {
			flagConfig, flagDifficulty = path, tt.difficulty
			cfg, err := loadGameConfig(nil)
			if err != nil {
				t.Fatalf("loadGameConfig failed: %v", err)
			}
			if cfg.Physics.Speed != 1.5 {
				t.Errorf("speed = %v, want 1.5 from file", cfg.Physics.Speed)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled || cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
		})
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	flagConfig, flagDifficulty = "", "insane"
	if _, err := loadGameConfig(nil); err == nil {
		t.Error("unknown difficulty should fail")
	}

	flagConfig, flagDifficulty = filepath.Join(t.TempDir(), "missing.yaml"), ""
	if _, err := loadGameConfig(nil); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(func() { flagLogLevel = "info" })

	flagLogLevel = "debug"
	if _, err := newLogger(io.Discard, "test"); err != nil {
		t.Errorf("debug level rejected: %v", err)
	}

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestGameFactoryBuildsFreshRuns(t *testing.T) {
	newGame := newGameFactory(config.DefaultRunnerConfig())
	a, b := newGame(), newGame()
	if a == b {
		t.Error("factory should return a new game each call")
	}
	if a.ID() != runner.ID {
		t.Errorf("ID = %q, want %q", a.ID(), runner.ID)
	}
}

func runScoresCmd(t *testing.T, args ...string) string {
	t.Helper()
	reset := func() {
		flagLimit, flagInteractive, flagClear = 10, false, false
		flagDBPath = "~/.runner/scores.db"
	}
	// Cobra keeps parsed values between Execute calls.
	reset()
	t.Cleanup(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"scores"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scores %v failed: %v", args, err)
	}
	return out.String()
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	out := runScoresCmd(t, "--db", dbPath)
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("empty db output:\n%s", out)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, s := range []int{4, 12, 7} {
		if _, err := store.SaveScore(runner.ID, "alice", s); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	store.Close()

	out = runScoresCmd(t, "--db", dbPath, "--limit", "2")
	if !strings.Contains(out, "alice") || !strings.Contains(out, "Best: 12   Runs: 3") {
		t.Errorf("scores output:\n%s", out)
	}
	if strings.Count(out, "alice") != 2 {
		t.Errorf("limit 2 should list two rows:\n%s", out)
	}

	out = runScoresCmd(t, "--db", dbPath, "--clear")
	if !strings.Contains(out, "Scores cleared.") {
		t.Errorf("clear output:\n%s", out)
	}
	out = runScoresCmd(t, "--db", dbPath)
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("after clear:\n%s", out)
	}
}

func TestDifficultyPresetCurves(t *testing.T) {
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		difficulty string
		at0, at20  float64
	}{
		{"", 2.5, 0.5},
		{"easy", 2.5, 0.5},
		{"normal", 1.9, 0.5},
		{"hard", 1.1, 0.5},
		{"fixed", 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run("preset="+tt.difficulty, func(t *testing.T) {
			flagConfig, flagDifficulty = path, tt.difficulty
			cfg, err := loadGameConfig(nil)
			if err != nil {
				t.Fatalf("loadGameConfig failed: %v", err)
			}
			diff := config.NewDifficultyManager(cfg.Difficulty)
			for _, c := range []struct{ elapsed, want float64 }{{0, tt.at0}, {20, tt.at20}} {
				got := diff.MaxInterval(cfg.Spawn.MaxInterval, cfg.Spawn.MinInterval, 0, c.elapsed)
				if math.Abs(got-c.want) > 1e-9 {
					t.Errorf("max interval at %vs = %v, want %v", c.elapsed, got, c.want)
				}
			}
		})
	}
}
