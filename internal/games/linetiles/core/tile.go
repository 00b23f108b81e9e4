package core

import "fmt"

// edgeMasks maps (shape, rotation) to the solid sides of a tile.
var edgeMasks = [shapeCount][rotationCount]EdgeMask{
	ShapeNub: {
		EdgeTop,
		EdgeRight,
		EdgeBottom,
		EdgeLeft,
	},
	ShapeLine: {
		EdgeTop | EdgeBottom,
		EdgeRight | EdgeLeft,
		EdgeTop | EdgeBottom,
		EdgeRight | EdgeLeft,
	},
	ShapeCorner: {
		EdgeTop | EdgeRight,
		EdgeRight | EdgeBottom,
		EdgeBottom | EdgeLeft,
		EdgeLeft | EdgeTop,
	},
	ShapeThreeway: {
		EdgeTop | EdgeRight | EdgeBottom,
		EdgeRight | EdgeBottom | EdgeLeft,
		EdgeBottom | EdgeLeft | EdgeTop,
		EdgeLeft | EdgeTop | EdgeRight,
	},
	ShapeCross: {EdgeAll, EdgeAll, EdgeAll, EdgeAll},
}

// MaskFor returns the edge mask of a shape at a rotation.
func MaskFor(s Shape, r Rotation) (EdgeMask, error) {
	if !s.Valid() {
		return EdgeNone, fmt.Errorf("%w: %d", ErrInvalidShape, s)
	}
	if !r.Valid() {
		return EdgeNone, fmt.Errorf("%w: %d", ErrInvalidRotation, r)
	}
	return edgeMasks[s][r], nil
}

// Tile is a single piece on the board. Its mask is derived from shape and
// rotation once at construction; only the board moves it.
type Tile struct {
	id       int
	shape    Shape
	rotation Rotation
	mask     EdgeMask
	pos      Position
}

// NewTile creates a tile at pos. Fails if the shape or rotation is invalid.
func NewTile(id int, s Shape, r Rotation, pos Position) (Tile, error) {
	mask, err := MaskFor(s, r)
	if err != nil {
		return Tile{}, err
	}
	return Tile{id: id, shape: s, rotation: r, mask: mask, pos: pos}, nil
}

// ID returns the tile's identity, fixed at population time.
func (t Tile) ID() int { return t.id }

// Shape returns the tile's shape.
func (t Tile) Shape() Shape { return t.shape }

// Rotation returns the tile's rotation.
func (t Tile) Rotation() Rotation { return t.rotation }

// Mask returns the tile's solid sides.
func (t Tile) Mask() EdgeMask { return t.mask }

// Position returns the cell the tile occupied when this value was read.
func (t Tile) Position() Position { return t.pos }

// String returns a short description of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("#%d %s/%s %s@%s", t.id, t.shape, t.rotation, t.mask, t.pos)
}

// TileSpec is what a tile factory supplies for one cell.
type TileSpec struct {
	Shape    Shape
	Rotation Rotation
}
