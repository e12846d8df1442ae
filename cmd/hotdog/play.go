package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotdog-arcade/internal/platform/tui"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant.

Controls:
  A/D, Left/Right    - Move
  W, Up, Space       - Jump
  E                  - Fire
  R                  - Restart
  B/Esc, Q/Ctrl+C    - Quit
  Ctrl+S             - Screenshot

The bottom row holds touch buttons for mouse or touch terminals.

Examples:
  hotdog play hotdog
  hotdog play hotdog-happy --fps 30
  hotdog play hotdog --config ./my-hotdog.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'hotdog list' to see available games)", gameID)
	}

	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openLedger(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(logger)
	defer sound.Close()

	logger.Info("playing", "game", gameID)
	return tui.Run(game, terminalConfig(), tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	})
}
