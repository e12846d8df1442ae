package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
	"github.com/vovakirdan/hotdog-arcade/internal/platform/window"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the specified variant (default: hotdog).

The window reports real key releases, so movement stops the moment a key
is let go. The button strip under the playfield works with mouse and touch.

Controls:
  A/D, Left/Right    - Move
  W, Up, Space       - Jump
  E                  - Fire
  R                  - Restart
  Q/Esc              - Quit

Examples:
  hotdog window
  hotdog window hotdog-happy --scale 0.75`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x880 canvas")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := hotdog.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if err := checkConfig(); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	game, ok := created.(window.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be drawn in a window", gameID)
	}

	store := openLedger(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(logger)
	defer sound.Close()

	return window.Run(game, window.Options{
		Store:    store,
		Sound:    sound,
		Logger:   logger,
		Player:   playerName(),
		Scale:    flagScale,
		TickRate: flagFPS,
	})
}
