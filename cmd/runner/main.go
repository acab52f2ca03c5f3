// runner is a minimal endless runner: jump over the blocks for as long as
// you can.
//
// Usage:
//
//	runner window    - Play in a desktop window
//	runner play      - Play in the terminal
//	runner serve     - Start SSH server for remote play
//	runner scores    - Show high scores
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.runner/scores.db)
//	--config <path>        - Load a custom runner.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed; unset keeps the classic curve
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump the blocks, don't touch them",
	Long: `Endless Runner is a one-button game: a blue block runs along the
ground while red blocks scroll in from the right. Jump over them for as
long as you can. Blocks arrive faster the longer you survive.

Available commands:
  window   - Play in a desktop window
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  runner window
  runner play --difficulty hard
  runner serve --ssh :2222
  runner scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (unset keeps the config file's curve)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the structured logger shared by every subcommand.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadGameConfig resolves the runner config from --config and --difficulty.
func loadGameConfig(logger *log.Logger) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.Load(flagConfig, logger)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg.ApplyPreset(preset)
	return cfg, nil
}

// newGameFactory returns a constructor for runs that share cfg.
func newGameFactory(cfg config.RunnerConfig) func() core.Game {
	return func() core.Game {
		return runner.New(cfg)
	}
}

// openStore opens the score database. Failures leave the game playable
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config for a screen of w by h.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// defaultPlayer names the local player for saved scores.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
