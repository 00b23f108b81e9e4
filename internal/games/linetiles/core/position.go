package core

import "fmt"

// Position is a cell on the board. Col increases to the right, Row
// increases upward: row 0 is the bottom row and a tile's Top side faces
// Row+1.
type Position struct {
	Col int
	Row int
}

// P is a convenience constructor for Position.
func P(col, row int) Position {
	return Position{Col: col, Row: row}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Add returns a new Position offset by (dc, dr).
func (p Position) Add(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// Toward returns the single side of p that faces other, or EdgeNone when
// the two positions are not orthogonal neighbours.
func (p Position) Toward(other Position) EdgeMask {
	dc := other.Col - p.Col
	dr := other.Row - p.Row
	switch {
	case dc == 0 && dr == 1:
		return EdgeTop
	case dc == 1 && dr == 0:
		return EdgeRight
	case dc == 0 && dr == -1:
		return EdgeBottom
	case dc == -1 && dr == 0:
		return EdgeLeft
	default:
		return EdgeNone
	}
}

// Less orders positions in scan order: column first, then row.
func (p Position) Less(other Position) bool {
	if p.Col != other.Col {
		return p.Col < other.Col
	}
	return p.Row < other.Row
}
