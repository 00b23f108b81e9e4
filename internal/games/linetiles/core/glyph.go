package core

import (
	"fmt"
	"strings"
)

// glyphs draws each edge mask with box-drawing characters, indexed by mask.
// Row 0 of the board is drawn last, so Top points up on screen.
var glyphs = [16]rune{
	'·', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// asciiGlyphs are accepted in layouts as aliases for common tiles.
var asciiGlyphs = map[rune]EdgeMask{
	'|': EdgeTop | EdgeBottom,
	'-': EdgeRight | EdgeLeft,
	'+': EdgeAll,
}

// Glyph returns the box-drawing character for a mask.
func Glyph(m EdgeMask) rune {
	return glyphs[m&EdgeAll]
}

// SpecFor returns the first (shape, rotation) in table order that produces
// mask m. Fails for the empty mask, which no tile has.
func SpecFor(m EdgeMask) (TileSpec, error) {
	for _, s := range Shapes() {
		for _, r := range Rotations() {
			if edgeMasks[s][r] == m {
				return TileSpec{Shape: s, Rotation: r}, nil
			}
		}
	}
	return TileSpec{}, fmt.Errorf("%w: no tile has mask %s", ErrInvalidGlyph, m)
}

// ParseGlyph converts a layout character into a tile spec.
func ParseGlyph(r rune) (TileSpec, error) {
	if m, ok := asciiGlyphs[r]; ok {
		return SpecFor(m)
	}
	for m, g := range glyphs {
		if g == r && m != 0 {
			return SpecFor(EdgeMask(m))
		}
	}
	return TileSpec{}, fmt.Errorf("%w: %q", ErrInvalidGlyph, r)
}

// ParseLayout builds tile specs from glyph rows written top row first, the
// way they appear on screen. The result is indexed bottom row first, as
// NewBoardFromSpecs expects.
func ParseLayout(rows []string) ([][]TileSpec, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	specs := make([][]TileSpec, len(rows))
	for i, line := range rows {
		row := len(rows) - 1 - i
		for col, r := range []rune(line) {
			spec, err := ParseGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			specs[row] = append(specs[row], spec)
		}
	}
	return specs, nil
}

// BoardFromLayout is ParseLayout followed by NewBoardFromSpecs.
func BoardFromLayout(rows ...string) (*Board, error) {
	specs, err := ParseLayout(rows)
	if err != nil {
		return nil, err
	}
	return NewBoardFromSpecs(specs)
}

// Layout returns the board as glyph rows, top row first.
func (b *Board) Layout() []string {
	rows := make([]string, 0, b.h)
	for row := b.h - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < b.w; col++ {
			sb.WriteRune(Glyph(b.cells[b.index(P(col, row))].mask))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String draws the board with one glyph per cell, top row first.
func (b *Board) String() string {
	return strings.Join(b.Layout(), "\n")
}
