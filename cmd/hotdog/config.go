package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hotdog-arcade/internal/config"
	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant plays with, after the config file
search and the variant overlay. The output is valid YAML and can be saved
as a starting point for --config.

Examples:
  hotdog config
  hotdog config hotdog-happy > my-hotdog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := hotdog.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	variant, err := variantName(gameID)
	if err != nil {
		return err
	}

	cfg, err := config.LoadHotdog(flagConfig)
	if err != nil {
		return err
	}
	cfg, err = cfg.Variant(variant)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// variantName maps a game ID to its config variant.
func variantName(gameID string) (string, error) {
	switch {
	case gameID == hotdog.GameID:
		return "", nil
	case strings.HasPrefix(gameID, hotdog.GameID+"-"):
		return strings.TrimPrefix(gameID, hotdog.GameID+"-"), nil
	default:
		return "", fmt.Errorf("unknown game %q (run 'hotdog list' to see available games)", gameID)
	}
}
