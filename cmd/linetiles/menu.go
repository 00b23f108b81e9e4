package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linetiles/internal/games/linetiles"
	"github.com/vovakirdan/linetiles/internal/platform/tui"
	"github.com/vovakirdan/linetiles/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes and levels interactively",
	Long: `Start linetiles in interactive menu mode.

Pick a mode, or browse the campaign levels and start on any of them.
Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  linetiles menu
  linetiles menu --levels-dir ./my_levels
  linetiles menu --config ./linetiles.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameSettings("", 0, 0)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		gameID := menuResult.GameID
		if menuResult.WantsLevels {
			level, goBack, lvlErr := tui.RunLevelBrowser(levelLoader(), cfg.ScreenW, cfg.ScreenH)
			if lvlErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", lvlErr)
				continue
			}
			if level == nil {
				if goBack {
					continue
				}
				return
			}
			linetiles.SetStartLevel(level.ID)
			gameID = linetiles.CampaignID
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A new board per visit unless a seed was given.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
