package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/endless-runner/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
	flagPlayer string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and start a run.

Controls:
  Space/Up/W - Jump (a press in mid-air jumps again on landing)
  P          - Pause
  R          - Restart (after game over)
  Esc/Q      - Quit

Without --difficulty the classic curve applies: the longest gap between
blocks shrinks from 2.5s to 0.5s over the first 20 seconds. See
'runner play --help' for the presets.

Examples:
  runner window
  runner window --width 1280 --height 720
  runner window --seed 42 --difficulty fixed`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
	windowCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name stored with your scores")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "runner")
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := window.Options{Width: flagWidth, Height: flagHeight, Player: flagPlayer}
	if err := window.Run(newGameFactory(cfg)(), store, logger, runtimeConfig(flagWidth, flagHeight), opts); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
