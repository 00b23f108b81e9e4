// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file. The board is
// given either as glyph rows (top row first, as drawn) or as an explicit
// tile list; rows win when both are present.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows,omitempty"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	Tiles    []YAMLTile        `yaml:"tiles,omitempty"`
	Scramble []string          `yaml:"scramble,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions for tile lists.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLTile places one tile. Row 0 is the bottom row; rotation is in
// degrees.
type YAMLTile struct {
	Col      int    `yaml:"col"`
	Row      int    `yaml:"row"`
	Shape    string `yaml:"shape"`
	Rotation int    `yaml:"rotation"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Specs    [][]core.TileSpec // bottom row first
	Scramble []core.Shift
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	var specs [][]core.TileSpec
	var err error
	if len(yl.Rows) > 0 {
		specs, err = core.ParseLayout(yl.Rows)
	} else {
		specs, err = tileSpecs(yl.Size, yl.Tiles)
	}
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	if _, err := core.NewBoardFromSpecs(specs); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Height:   len(specs),
		Width:    len(specs[0]),
		Specs:    specs,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	for _, text := range yl.Scramble {
		s, err := core.ParseShift(text)
		if err != nil {
			return Level{}, fmt.Errorf("level %s: scramble: %w", yl.ID, err)
		}
		level.Scramble = append(level.Scramble, s)
	}

	return level, nil
}

// tileSpecs builds a spec grid from an explicit tile list. Every cell must
// be given exactly once.
func tileSpecs(size YAMLSize, tiles []YAMLTile) ([][]core.TileSpec, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", core.ErrInvalidDimensions, size.W, size.H)
	}

	specs := make([][]core.TileSpec, size.H)
	set := make([][]bool, size.H)
	for row := range specs {
		specs[row] = make([]core.TileSpec, size.W)
		set[row] = make([]bool, size.W)
	}

	for _, t := range tiles {
		if t.Col < 0 || t.Col >= size.W || t.Row < 0 || t.Row >= size.H {
			return nil, fmt.Errorf("%w: tile at (%d,%d)", core.ErrOutOfBounds, t.Col, t.Row)
		}
		if set[t.Row][t.Col] {
			return nil, fmt.Errorf("tile at (%d,%d) given twice", t.Col, t.Row)
		}
		shape, ok := core.ParseShape(t.Shape)
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrInvalidShape, t.Shape)
		}
		rot, ok := rotationFromDegrees(t.Rotation)
		if !ok {
			return nil, fmt.Errorf("%w: %d degrees", core.ErrInvalidRotation, t.Rotation)
		}
		specs[t.Row][t.Col] = core.TileSpec{Shape: shape, Rotation: rot}
		set[t.Row][t.Col] = true
	}

	for row := range set {
		for col, ok := range set[row] {
			if !ok {
				return nil, fmt.Errorf("no tile at (%d,%d)", col, row)
			}
		}
	}
	return specs, nil
}

func rotationFromDegrees(deg int) (core.Rotation, bool) {
	for _, r := range core.Rotations() {
		if r.Degrees() == deg {
			return r, true
		}
	}
	return 0, false
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
