// Package config provides YAML-based game configuration loading and
// difficulty presets for linetiles.
package config

import (
	"errors"
	"fmt"
)

// LineTilesConfig contains all configuration for the line tiles puzzle.
type LineTilesConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Shapes     ShapeWeights     `yaml:"shapes"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the size of randomly dealt boards. Campaign layouts
// carry their own size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShapeWeights are relative odds for each shape when dealing a random
// board. Rotations are always uniform.
type ShapeWeights struct {
	Nub      int `yaml:"nub"`
	Line     int `yaml:"line"`
	Corner   int `yaml:"corner"`
	Threeway int `yaml:"threeway"`
	Cross    int `yaml:"cross"`
}

// Total returns the sum of all weights.
func (w ShapeWeights) Total() int {
	return w.Nub + w.Line + w.Corner + w.Threeway + w.Cross
}

// Slice returns the weights in shape order: nub, line, corner, threeway,
// cross.
func (w ShapeWeights) Slice() []int {
	return []int{w.Nub, w.Line, w.Corner, w.Threeway, w.Cross}
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	FlashPeriod int  `yaml:"flash_period"` // Ticks per half-cycle of the closed-group flash; 0 disables flashing
	ShowCursor  bool `yaml:"show_cursor"`
}

// DifficultyConfig records which preset produced the current values.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Limits for random boards. Larger boards do not fit an 80x24 terminal.
const (
	MinBoardSize = 1
	MaxBoardSize = 16
)

var (
	ErrInvalidBoardSize = errors.New("config: invalid board size")
	ErrInvalidWeights   = errors.New("config: invalid shape weights")
	ErrInvalidDisplay   = errors.New("config: invalid display settings")
)

// Validate checks that the configuration can deal a board.
func (c LineTilesConfig) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		return fmt.Errorf("%w: width %d not in [%d,%d]", ErrInvalidBoardSize, c.Board.Width, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		return fmt.Errorf("%w: height %d not in [%d,%d]", ErrInvalidBoardSize, c.Board.Height, MinBoardSize, MaxBoardSize)
	}
	for _, w := range c.Shapes.Slice() {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %d", ErrInvalidWeights, w)
		}
	}
	if c.Shapes.Total() == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}
	if c.Display.FlashPeriod < 0 {
		return fmt.Errorf("%w: flash_period %d", ErrInvalidDisplay, c.Display.FlashPeriod)
	}
	return nil
}
