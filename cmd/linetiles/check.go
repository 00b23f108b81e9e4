package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

var (
	flagShifts string
	flagSolved bool
)

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Print the groups of a layout file",
	Long: `Loads a level file, applies its scramble (unless --solved) and any
--shift moves, then prints the board and every match group.

Shifts are written dir:index and separated by commas. Up and down move a
column, left and right move a row. Row 0 is the bottom row.

Examples:
  linetiles check ./levels/01_square.yaml
  linetiles check ./levels/01_square.yaml --solved
  linetiles check ./levels/01_square.yaml --shift left:0,up:1`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagShifts, "shift", "", "Shifts to apply, e.g. up:2,left:0")
	checkCmd.Flags().BoolVar(&flagSolved, "solved", false, "Start from the solved layout instead of the scrambled one")
}

func runCheck(_ *cobra.Command, args []string) {
	lvl, err := levels.LoadPath(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shifts, err := tiles.ParseShifts(flagShifts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var b *tiles.Board
	if flagSolved {
		b, err = lvl.Solved()
	} else {
		b, err = lvl.NewBoard()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, s := range shifts {
		if err := b.Apply(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: shift %s: %v\n", s, err)
			os.Exit(1)
		}
		logger.Debug("applied shift", "shift", s.String(), "generation", b.Generation())
	}

	pt, err := tiles.Recompute(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s), %dx%d\n\n", lvl.Name, lvl.ID, b.Width(), b.Height())
	for _, line := range b.Layout() {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
	fmt.Printf("%d groups, %d closed\n\n", len(pt.Groups), pt.ClosedCount())

	for i, g := range pt.Groups {
		state := "open  "
		if g.Closed {
			state = "closed"
		}
		positions := make([]string, 0, g.Len())
		for _, p := range g.Positions() {
			positions = append(positions, p.String())
		}
		fmt.Printf("  #%-2d %s %2d tiles  %s\n", i, state, g.Len(), strings.Join(positions, " "))
	}
}
