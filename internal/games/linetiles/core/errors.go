package core

import "errors"

// Sentinel errors for board and partition operations.
var (
	// ErrOutOfBounds indicates a row, column or position outside the board.
	ErrOutOfBounds = errors.New("linetiles: out of bounds")
	// ErrInvalidShape indicates a shape value outside the declared set.
	ErrInvalidShape = errors.New("linetiles: invalid tile shape")
	// ErrInvalidRotation indicates a rotation that is not a quarter turn.
	ErrInvalidRotation = errors.New("linetiles: invalid tile rotation")
	// ErrInvalidDirection indicates a shift direction that does not fit the axis.
	ErrInvalidDirection = errors.New("linetiles: invalid shift direction")
	// ErrNotAdjacent indicates two positions that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("linetiles: positions are not adjacent")
	// ErrInvalidDimensions indicates a board with no rows or no columns.
	ErrInvalidDimensions = errors.New("linetiles: board must have at least one row and one column")
	// ErrMalformedBoard indicates a board whose tiles disagree with their cells.
	ErrMalformedBoard = errors.New("linetiles: malformed board")
	// ErrInvalidShift indicates move text that is not in dir:index form.
	ErrInvalidShift = errors.New("linetiles: invalid shift")
	// ErrInvalidGlyph indicates a layout character that names no tile.
	ErrInvalidGlyph = errors.New("linetiles: invalid tile glyph")
)
