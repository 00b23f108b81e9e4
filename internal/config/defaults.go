package config

import (
	_ "embed"
)

//go:embed defaults/linetiles.yaml
var defaultLineTilesYAML []byte

// DefaultLineTilesConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultLineTilesConfig() LineTilesConfig {
	return LineTilesConfig{
		Board: BoardConfig{
			Width:  6,
			Height: 6,
		},
		Shapes: ShapeWeights{
			Nub:      2,
			Line:     3,
			Corner:   4,
			Threeway: 2,
			Cross:    1,
		},
		Display: DisplayConfig{
			FlashPeriod: 15,
			ShowCursor:  true,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLineTilesYAML
}
