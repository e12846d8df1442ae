package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotdog-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a variant and Tab to see
the rounds played so far. After a game, B or Esc returns to the menu.

Examples:
  hotdog menu
  hotdog menu --fps 30 --log-file ./hotdog.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openLedger(logger)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(logger)
	defer sound.Close()

	return tui.RunSession(terminalConfig(), tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	})
}
