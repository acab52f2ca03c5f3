package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/endless-runner/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Esc/Q      - Quit

Difficulty options:
  (unset) - Use the config file; the default is the classic curve, where
            the longest gap between blocks shrinks from 2.5s to 0.5s
            over the first 20 seconds
  easy    - Same curve as the default, forced on even if the config
            disables progression
  normal  - Start at 30% difficulty (longest gap 1.9s), progresses to max
  hard    - Start at 70% difficulty (longest gap 1.1s), progresses to max
  fixed   - No progression, stays at config's initial level

Logs would corrupt the full-screen view, so they are discarded unless
--log-file is given.

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name stored with your scores")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "runner")
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Player: flagPlayer}
	return tui.Run(newGameFactory(cfg)(), store, logger, runtimeConfig(width, height), opts)
}
