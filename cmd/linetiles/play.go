package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linetiles/internal/games/linetiles"
	"github.com/vovakirdan/linetiles/internal/platform/tui"
	"github.com/vovakirdan/linetiles/internal/registry"
)

var (
	flagLevel      string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Modes:
  linetiles         - Campaign of hand-made layouts
  linetiles_random  - Randomly dealt boards

Controls:
  Arrows/hjkl  - Move the column and row cursor
  W/S          - Shift the selected column up/down
  A/D          - Shift the selected row left/right
  [ / ]        - Previous/next layout (random mode: deal a new board)
  R            - Restart the layout or deal a new board
  P            - Pause
  ?            - Show all keys
  Esc/B        - Leave
  Q/Ctrl+C     - Quit

Difficulty options (random mode):
  easy   - 4x4 boards, mostly corners and lines
  normal - 6x6 boards
  hard   - 8x8 boards with many branching tiles
  fixed  - Keep the size and weights from the config file

Examples:
  linetiles play linetiles
  linetiles play linetiles --level 03_lattice
  linetiles play linetiles_random --difficulty easy
  linetiles play linetiles_random --width 10 --height 5 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level ID to start on")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Random board width (overrides config and preset)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Random board height (overrides config and preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'linetiles list' to see available modes.")
		os.Exit(1)
	}

	applyGameSettings(flagDifficulty, flagWidth, flagHeight)

	if flagLevel != "" {
		if _, err := levelLoader().LoadByID(flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'linetiles levels' to see available levels.")
			os.Exit(1)
		}
		linetiles.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
