// linetiles is a terminal puzzle: shift the rows and columns of a wrapping
// board until the line segments on its tiles join into closed groups.
//
// Usage:
//
//	linetiles list              - List game modes
//	linetiles play <mode>       - Play a mode
//	linetiles menu              - Pick modes and levels interactively
//	linetiles serve             - Start SSH server for remote play
//	linetiles levels            - Print the campaign levels
//	linetiles check <file>      - Load a layout and print its groups
//	linetiles verify            - Property-check random boards
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error (default: info)
//	--levels-dir <dir>  - Read campaign levels from a directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linetiles/internal/config"
	"github.com/vovakirdan/linetiles/internal/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLevelDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "linetiles",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linetiles",
	Short: "Line Tiles - a sliding tile puzzle for your terminal",
	Long: `Line Tiles is a puzzle played on a wrapping grid of tiles. Each tile
carries line segments; shifting a row or column moves its tiles one cell,
and the tile pushed off one end comes back at the other. Tiles whose
segments meet form groups, and a group with no loose ends is closed.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  levels   - Print the campaign levels
  check    - Print the groups of a layout file
  verify   - Property-check random boards

Examples:
  linetiles play linetiles
  linetiles play linetiles_random --difficulty hard
  linetiles menu
  linetiles serve --ssh :2222
  linetiles check ./my_level.yaml --shift up:0,left:1`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.linetiles/configs, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels-dir", "", "Directory of campaign level files (default: builtin levels)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(verifyCmd)
}

// loadConfig loads the config file and applies a difficulty preset and
// size overrides on top. Zero sizes keep the loaded values.
func loadConfig(difficulty string, width, height int) (config.LineTilesConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if width > 0 {
		cfg.Board.Width = width
	}
	if height > 0 {
		cfg.Board.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded",
		"preset", cfg.Difficulty.Preset,
		"width", cfg.Board.Width,
		"height", cfg.Board.Height,
	)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// levelLoader returns the loader for --levels-dir, or the builtin levels.
func levelLoader() *levels.Loader {
	if flagLevelDir == "" {
		return levels.Builtin()
	}
	return levels.NewLoader(flagLevelDir)
}

// applyGameSettings loads the config and the level source and hands them
// to the game package.
func applyGameSettings(difficulty string, width, height int) {
	cfg, err := loadConfig(difficulty, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	linetiles.SetConfig(cfg)
	linetiles.SetLevelSource(levelLoader())
}
