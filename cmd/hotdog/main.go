// hotdog is a small platform shooter: a hotdog, four platforms, five shots
// and one enemy circling overhead.
//
// Usage:
//
//	hotdog list              - List available variants
//	hotdog play <game>       - Play a variant in the terminal
//	hotdog menu              - Pick variants interactively, see past rounds
//	hotdog serve             - Start SSH server for remote play
//	hotdog window [game]     - Play in a desktop window
//	hotdog config [game]     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination for terminal commands
//	--mute               - Disable sound
//	--volume <0..1>      - Sound volume
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hotdog-arcade/internal/audio"
	"github.com/vovakirdan/hotdog-arcade/internal/config"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
	"github.com/vovakirdan/hotdog-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotdog",
	Short: "Hotdog - a tiny platform shooter",
	Long: `Hotdog is a small platform shooter. Jump across four platforms and
shoot down the enemy circling overhead before it touches you. You have
five shots; R brings everything back.

Available commands:
  list     - Show all variants
  play     - Play a variant in the terminal
  menu     - Interactive variant picker with past rounds
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  hotdog play hotdog
  hotdog menu
  hotdog serve --ssh :2222
  hotdog window hotdog-happy`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		hotdog.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal commands (default: no logs)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0.0 - 1.0)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the root logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "hotdog",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// terminalLogger creates a logger for commands that own the terminal.
// Logs go to --log-file when set and are discarded otherwise.
func terminalLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// checkConfig rejects an explicit --config that cannot be loaded.
// Without the flag the game falls back to the usual search path.
func checkConfig() error {
	if flagConfig == "" {
		return nil
	}
	if _, err := config.LoadHotdog(flagConfig); err != nil {
		return fmt.Errorf("invalid --config: %w", err)
	}
	return nil
}

// openLedger opens the in-memory round ledger. Playing works without it.
func openLedger(logger *log.Logger) *storage.Store {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("round ledger unavailable", "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker. Playing works without it.
func openSound(logger *log.Logger) *audio.Player {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !flagMute
	cfg.Volume = flagVolume

	player := audio.NewPlayer(cfg, logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return player
}

// terminalConfig returns the runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName names the local player in the ledger.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
