package core

import "fmt"

// Board is a dense W×H grid of tiles. Cells are stored in row-major order:
// index = row*W + col. Every cell holds exactly one tile for the board's
// whole lifetime; shifts only move tiles between cells.
type Board struct {
	w, h       int
	cells      []Tile
	generation uint64
}

// NewBoard populates a board by asking factory for the shape and rotation
// of every cell. Tile IDs follow scan order (column, then row).
func NewBoard(w, h int, factory func(Position) TileSpec) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}

	b := &Board{w: w, h: h, cells: make([]Tile, w*h)}
	id := 0
	for col := 0; col < w; col++ {
		for row := 0; row < h; row++ {
			pos := P(col, row)
			spec := factory(pos)
			tile, err := NewTile(id, spec.Shape, spec.Rotation, pos)
			if err != nil {
				return nil, fmt.Errorf("tile at %s: %w", pos, err)
			}
			b.cells[b.index(pos)] = tile
			id++
		}
	}
	return b, nil
}

// NewBoardFromSpecs builds a board from rows of specs. specs[0] is the
// bottom row; all rows must have the same length.
func NewBoardFromSpecs(specs [][]TileSpec) (*Board, error) {
	if len(specs) == 0 || len(specs[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	w := len(specs[0])
	for row, line := range specs {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d",
				ErrInvalidDimensions, row, len(line), w)
		}
	}
	return NewBoard(w, len(specs), func(p Position) TileSpec {
		return specs[p.Row][p.Col]
	})
}

// index converts a position to a flat array index.
func (b *Board) index(p Position) int {
	return p.Row*b.w + p.Col
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Size returns the number of cells.
func (b *Board) Size() int { return b.w * b.h }

// Generation counts the shifts applied so far. Anything computed from the
// board is stale once the generation moves on.
func (b *Board) Generation() uint64 { return b.generation }

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < b.w && p.Row >= 0 && p.Row < b.h
}

func (b *Board) checkBounds(p Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: position %s on %dx%d board", ErrOutOfBounds, p, b.w, b.h)
	}
	return nil
}

// TileAt returns the tile occupying p.
func (b *Board) TileAt(p Position) (Tile, error) {
	if err := b.checkBounds(p); err != nil {
		return Tile{}, err
	}
	return b.cells[b.index(p)], nil
}

// EdgeMaskOf returns the mask of the tile occupying p.
func (b *Board) EdgeMaskOf(p Position) (EdgeMask, error) {
	t, err := b.TileAt(p)
	if err != nil {
		return EdgeNone, err
	}
	return t.mask, nil
}

// Tiles returns a copy of every tile in scan order (column, then row).
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, len(b.cells))
	for col := 0; col < b.w; col++ {
		for row := 0; row < b.h; row++ {
			tiles = append(tiles, b.cells[b.index(P(col, row))])
		}
	}
	return tiles
}

// Positions returns every position in scan order (column, then row).
func (b *Board) Positions() []Position {
	positions := make([]Position, 0, len(b.cells))
	for col := 0; col < b.w; col++ {
		for row := 0; row < b.h; row++ {
			positions = append(positions, P(col, row))
		}
	}
	return positions
}

// ShiftColumn moves every tile in column col one cell up or down. The tile
// leaving one end re-enters at the other.
func (b *Board) ShiftColumn(col int, dir Direction) error {
	if col < 0 || col >= b.w {
		return fmt.Errorf("%w: column %d not in [0,%d)", ErrOutOfBounds, col, b.w)
	}
	var step int
	switch dir {
	case DirUp:
		step = 1
	case DirDown:
		step = -1
	default:
		return fmt.Errorf("%w: cannot shift a column %s", ErrInvalidDirection, dir)
	}

	column := make([]Tile, b.h)
	for row := 0; row < b.h; row++ {
		column[row] = b.cells[b.index(P(col, row))]
	}
	for row, t := range column {
		next := P(col, wrap(row+step, b.h))
		t.pos = next
		b.cells[b.index(next)] = t
	}
	b.generation++
	return nil
}

// ShiftRow moves every tile in row row one cell right or left. The tile
// leaving one end re-enters at the other.
func (b *Board) ShiftRow(row int, dir Direction) error {
	if row < 0 || row >= b.h {
		return fmt.Errorf("%w: row %d not in [0,%d)", ErrOutOfBounds, row, b.h)
	}
	var step int
	switch dir {
	case DirRight:
		step = 1
	case DirLeft:
		step = -1
	default:
		return fmt.Errorf("%w: cannot shift a row %s", ErrInvalidDirection, dir)
	}

	line := make([]Tile, b.w)
	for col := 0; col < b.w; col++ {
		line[col] = b.cells[b.index(P(col, row))]
	}
	for col, t := range line {
		next := P(wrap(col+step, b.w), row)
		t.pos = next
		b.cells[b.index(next)] = t
	}
	b.generation++
	return nil
}

// Apply performs a shift: vertical directions move a column, horizontal
// directions move a row.
func (b *Board) Apply(s Shift) error {
	if s.Dir.Vertical() {
		return b.ShiftColumn(s.Index, s.Dir)
	}
	if s.Dir.Horizontal() {
		return b.ShiftRow(s.Index, s.Dir)
	}
	return fmt.Errorf("%w: %d", ErrInvalidDirection, s.Dir)
}

// Neighbors returns the orthogonally adjacent positions of p that are on
// the board, in the order left, right, below, above. Adjacency does not
// wrap even though shifts do.
func (b *Board) Neighbors(p Position) ([]Position, error) {
	if err := b.checkBounds(p); err != nil {
		return nil, err
	}
	return b.neighbors(p), nil
}

func (b *Board) neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	if p.Col > 0 {
		out = append(out, p.Add(-1, 0))
	}
	if p.Col < b.w-1 {
		out = append(out, p.Add(1, 0))
	}
	if p.Row > 0 {
		out = append(out, p.Add(0, -1))
	}
	if p.Row < b.h-1 {
		out = append(out, p.Add(0, 1))
	}
	return out
}

// Connection classifies the edge between the tile at base and the tile at
// other from base's point of view. The relation is not symmetric.
func (b *Board) Connection(base, other Position) (Connection, error) {
	if err := b.checkBounds(base); err != nil {
		return ConnectionInvalid, err
	}
	if err := b.checkBounds(other); err != nil {
		return ConnectionInvalid, err
	}
	side := base.Toward(other)
	if side == EdgeNone {
		return ConnectionInvalid, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, base, other)
	}
	return Connect(b.cells[b.index(base)].mask, b.cells[b.index(other)].mask, side), nil
}

// TouchesBoundaryWithSolidEdge reports whether the tile at p has a solid
// side facing off the board.
func (b *Board) TouchesBoundaryWithSolidEdge(p Position) (bool, error) {
	if err := b.checkBounds(p); err != nil {
		return false, err
	}
	return b.touchesBoundary(p), nil
}

func (b *Board) touchesBoundary(p Position) bool {
	return b.boundarySides(p)&b.cells[b.index(p)].mask != 0
}

// boundarySides returns the sides of cell p that face off the board.
func (b *Board) boundarySides(p Position) EdgeMask {
	sides := EdgeNone
	if p.Row == b.h-1 {
		sides |= EdgeTop
	}
	if p.Col == b.w-1 {
		sides |= EdgeRight
	}
	if p.Row == 0 {
		sides |= EdgeBottom
	}
	if p.Col == 0 {
		sides |= EdgeLeft
	}
	return sides
}

// Validate checks that every tile records the cell it occupies and that
// tile IDs are unique.
func (b *Board) Validate() error {
	if b.w <= 0 || b.h <= 0 || len(b.cells) != b.w*b.h {
		return fmt.Errorf("%w: %dx%d board with %d cells", ErrMalformedBoard, b.w, b.h, len(b.cells))
	}
	seen := make(map[int]bool, len(b.cells))
	for _, p := range b.Positions() {
		t := b.cells[b.index(p)]
		if t.pos != p {
			return fmt.Errorf("%w: tile #%d at %s records position %s", ErrMalformedBoard, t.id, p, t.pos)
		}
		if seen[t.id] {
			return fmt.Errorf("%w: tile #%d appears twice", ErrMalformedBoard, t.id)
		}
		seen[t.id] = true
	}
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells, generation: b.generation}
}

// Equal returns true if two boards have the same dimensions and the same
// tiles in the same cells.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, t := range b.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// wrap maps i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
