package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the campaign levels",
	Long: `Lists the campaign levels with their size, the number of scramble
shifts, and the groups of the scrambled start and of the solved layout.

Files that fail to load are skipped; use 'linetiles check' on a single
file to see why.

Examples:
  linetiles levels
  linetiles levels --levels-dir ./my_levels`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levelLoader()
	lvls, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Printf("No levels in %s.\n", loader.Root)
		return
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Printf("Levels in %s:\n\n", loader.Root)
	fmt.Printf("  %-*s  %-5s  %-6s  %-13s  %-13s  %s\n", maxIDLen, "ID", "Size", "Shifts", "Start", "Solved", "Name")
	fmt.Printf("  %-*s  %-5s  %-6s  %-13s  %-13s  %s\n", maxIDLen, "--", "----", "------", "-----", "------", "----")

	for _, lvl := range lvls {
		start, solved, err := levelCounts(lvl)
		if err != nil {
			logger.Warn("skipping level", "id", lvl.ID, "error", err)
			continue
		}
		fmt.Printf("  %-*s  %-5s  %-6d  %-13s  %-13s  %s\n",
			maxIDLen, lvl.ID,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			len(lvl.Scramble),
			start, solved, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'linetiles play linetiles --level <id>' to play a level.")
}

// levelCounts returns "closed/groups" for the scrambled start and for the
// solved layout.
func levelCounts(lvl levels.Level) (start, solved string, err error) {
	b, err := lvl.NewBoard()
	if err != nil {
		return "", "", err
	}
	if start, err = countGroups(b); err != nil {
		return "", "", err
	}
	if b, err = lvl.Solved(); err != nil {
		return "", "", err
	}
	if solved, err = countGroups(b); err != nil {
		return "", "", err
	}
	return start, solved, nil
}

func countGroups(b *tiles.Board) (string, error) {
	pt, err := tiles.Recompute(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%d closed", pt.ClosedCount(), len(pt.Groups)), nil
}
