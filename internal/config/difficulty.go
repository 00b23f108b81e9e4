package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset. The empty string means
// fixed, i.e. keep whatever the config file says.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset. Bigger
// boards with more branching shapes are harder to close. Fixed leaves the
// loaded values alone.
func ApplyPreset(cfg *LineTilesConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Board = BoardConfig{Width: 4, Height: 4}
		cfg.Shapes = ShapeWeights{Nub: 3, Line: 4, Corner: 6, Threeway: 1, Cross: 0}
	case DifficultyNormal:
		cfg.Board = BoardConfig{Width: 6, Height: 6}
		cfg.Shapes = ShapeWeights{Nub: 2, Line: 3, Corner: 4, Threeway: 2, Cross: 1}
	case DifficultyHard:
		cfg.Board = BoardConfig{Width: 8, Height: 8}
		cfg.Shapes = ShapeWeights{Nub: 2, Line: 2, Corner: 3, Threeway: 3, Cross: 2}
	}
}
