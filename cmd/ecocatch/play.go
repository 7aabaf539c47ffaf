package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecocatch/internal/core"
	"github.com/vovakirdan/ecocatch/internal/platform/tui"
	"github.com/vovakirdan/ecocatch/internal/storage"
)

var (
	flagLogPath   string
	flagNoSummary bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Rounds played are kept for this run only. When you quit, a summary of the
session is printed.

Examples:
  ecocatch play
  ecocatch play --seed 42
  ecocatch play --config ./my-ecocatch.yaml
  ecocatch play --log ./ecocatch.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	playCmd.Flags().BoolVar(&flagNoSummary, "no-summary", false, "Do not print the session summary on exit")

	// The root command plays too, so it accepts the same flags
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(_ *cobra.Command, _ []string) {
	eco := loadGameConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.ModelOption{tui.WithPlayer(localPlayer())}

	// The terminal belongs to the game, so logs only go to a file
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		logger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "ecocatch",
			Level:           log.DebugLevel,
		})
		logger.Info("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", width, height))
		opts = append(opts, tui.WithLogger(logger))
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round log: %v\n", err)
		// Continue without round log - game still works
		store = nil
	}

	runErr := tui.Run(eco, store, cfg, opts...)

	if runErr == nil && !flagNoSummary {
		summary, sumErr := tui.RenderSummary(store)
		if sumErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read round log: %v\n", sumErr)
		} else if summary != "" {
			fmt.Print(summary)
		}
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localPlayer names the player in the round log.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
