// Package core provides the tile board and match-group partitioning for the
// LineTiles puzzle. This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is the structural kind of a tile before rotation.
type Shape uint8

const (
	ShapeNub Shape = iota
	ShapeLine
	ShapeCorner
	ShapeThreeway
	ShapeCross

	shapeCount
)

// Shapes lists every valid shape in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeNub, ShapeLine, ShapeCorner, ShapeThreeway, ShapeCross}
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool {
	return s < shapeCount
}

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeNub:
		return "Nub"
	case ShapeLine:
		return "Line"
	case ShapeCorner:
		return "Corner"
	case ShapeThreeway:
		return "Threeway"
	case ShapeCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// ParseShape converts a case-insensitive shape name to a Shape.
func ParseShape(name string) (Shape, bool) {
	switch strings.ToLower(name) {
	case "nub":
		return ShapeNub, true
	case "line":
		return ShapeLine, true
	case "corner":
		return ShapeCorner, true
	case "threeway":
		return ShapeThreeway, true
	case "cross":
		return ShapeCross, true
	default:
		return 0, false
	}
}

// Rotation is one of four quarter turns, clockwise.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270

	rotationCount
)

// Rotations lists every valid rotation in declaration order.
func Rotations() []Rotation {
	return []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}
}

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	return r < rotationCount
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// String returns the string representation of a rotation.
func (r Rotation) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return strconv.Itoa(r.Degrees())
}

// EdgeMask encodes which sides of a tile are solid.
//
//	===== 1 =====
//	|           |
//	8           2
//	|           |
//	===== 4 =====
type EdgeMask uint8

const (
	EdgeNone   EdgeMask = 0
	EdgeTop    EdgeMask = 1
	EdgeRight  EdgeMask = 2
	EdgeBottom EdgeMask = 4
	EdgeLeft   EdgeMask = 8

	EdgeAll = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
)

// Has reports whether every bit of side is solid in m.
func (m EdgeMask) Has(side EdgeMask) bool {
	return side != 0 && m&side == side
}

// Count returns the number of solid sides.
func (m EdgeMask) Count() int {
	n := 0
	for _, side := range []EdgeMask{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		if m&side != 0 {
			n++
		}
	}
	return n
}

// Opposite returns the reciprocal side of a single-side mask.
func (m EdgeMask) Opposite() EdgeMask {
	switch m {
	case EdgeTop:
		return EdgeBottom
	case EdgeRight:
		return EdgeLeft
	case EdgeBottom:
		return EdgeTop
	case EdgeLeft:
		return EdgeRight
	default:
		return EdgeNone
	}
}

// String lists the solid sides, e.g. "T|R".
func (m EdgeMask) String() string {
	if m&EdgeAll == 0 {
		return "-"
	}
	s := ""
	for _, part := range []struct {
		side EdgeMask
		name string
	}{{EdgeTop, "T"}, {EdgeRight, "R"}, {EdgeBottom, "B"}, {EdgeLeft, "L"}} {
		if m&part.side == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += part.name
	}
	return s
}

// Direction is the direction of a row or column shift.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a case-insensitive direction name to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(name) {
	case "up", "u":
		return DirUp, true
	case "right", "r":
		return DirRight, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	default:
		return 0, false
	}
}

// Vertical reports whether d moves tiles along a column.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Horizontal reports whether d moves tiles along a row.
func (d Direction) Horizontal() bool {
	return d == DirRight || d == DirLeft
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Shift is a single user move: the column (for Up/Down) or row (for
// Right/Left) at Index moves one cell in Dir, wrapping around.
type Shift struct {
	Dir   Direction
	Index int
}

// String returns the shift in "dir:index" form.
func (s Shift) String() string {
	return strings.ToLower(s.Dir.String()) + ":" + strconv.Itoa(s.Index)
}

// Inverse returns the shift that undoes s.
func (s Shift) Inverse() Shift {
	return Shift{Dir: s.Dir.Opposite(), Index: s.Index}
}

// ParseShift parses the "dir:index" form produced by Shift.String.
func ParseShift(text string) (Shift, error) {
	name, index, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return Shift{}, fmt.Errorf("%w: %q, want dir:index", ErrInvalidShift, text)
	}
	dir, ok := ParseDirection(strings.TrimSpace(name))
	if !ok {
		return Shift{}, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return Shift{}, fmt.Errorf("%w: %q: %v", ErrInvalidShift, text, err)
	}
	return Shift{Dir: dir, Index: n}, nil
}

// ParseShifts parses a comma-separated list of shifts. Empty input yields
// no shifts.
func ParseShifts(text string) ([]Shift, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []Shift
	for _, part := range strings.Split(text, ",") {
		s, err := ParseShift(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Connection classifies how a base tile meets one of its neighbours.
type Connection uint8

const (
	// ConnectionInvalid: the base tile's solid side meets an open side.
	ConnectionInvalid Connection = iota

	// ConnectionOpenSide: the base tile is open on the facing side, so
	// nothing can mismatch there.
	ConnectionOpenSide

	// ConnectionSolidMatch: both facing sides are solid.
	ConnectionSolidMatch
)

// String returns the string representation of a connection.
func (c Connection) String() string {
	switch c {
	case ConnectionInvalid:
		return "Invalid"
	case ConnectionOpenSide:
		return "OpenSide"
	case ConnectionSolidMatch:
		return "SolidMatch"
	default:
		return "Unknown"
	}
}

// Connect compares the base tile's bit on the side facing the other tile
// with the other tile's bit on the reciprocal side. side must be a single
// side bit of the base tile.
func Connect(base, other EdgeMask, side EdgeMask) Connection {
	if base&side == 0 {
		return ConnectionOpenSide
	}
	if other&side.Opposite() != 0 {
		return ConnectionSolidMatch
	}
	return ConnectionInvalid
}
