package core

import (
	"fmt"
	"sort"
)

// MatchGroup is a maximal set of tiles joined by matching solid edges.
// Tiles are value snapshots in scan order; they describe the board as it
// was when the partition was computed.
type MatchGroup struct {
	Tiles  []Tile
	Closed bool
}

// Len returns the number of tiles in the group.
func (g MatchGroup) Len() int {
	return len(g.Tiles)
}

// Positions returns the cells covered by the group, in scan order.
func (g MatchGroup) Positions() []Position {
	out := make([]Position, len(g.Tiles))
	for i, t := range g.Tiles {
		out[i] = t.pos
	}
	return out
}

// Contains reports whether the group covers p.
func (g MatchGroup) Contains(p Position) bool {
	for _, t := range g.Tiles {
		if t.pos == p {
			return true
		}
	}
	return false
}

// Partition is the full set of match groups for one board generation.
type Partition struct {
	// Generation is the board generation the groups were computed from.
	Generation uint64
	// Groups in seed order: a group's seed is the first unvisited cell in
	// scan order (column, then row).
	Groups []MatchGroup
	// Examined counts base-tile examinations. A complete traversal
	// examines every cell exactly once.
	Examined int

	w, h    int
	groupOf []int // row-major cell index -> group index
}

// GroupAt returns the index into Groups of the group covering p, or -1 if p
// is off the board.
func (pt Partition) GroupAt(p Position) int {
	if p.Col < 0 || p.Col >= pt.w || p.Row < 0 || p.Row >= pt.h {
		return -1
	}
	return pt.groupOf[p.Row*pt.w+p.Col]
}

// ClosedCount returns the number of closed groups.
func (pt Partition) ClosedCount() int {
	n := 0
	for _, g := range pt.Groups {
		if g.Closed {
			n++
		}
	}
	return n
}

// TileCount returns the number of tiles across all groups.
func (pt Partition) TileCount() int {
	n := 0
	for _, g := range pt.Groups {
		n += g.Len()
	}
	return n
}

// Partitioner computes match groups. It only reads the board.
type Partitioner struct{}

// NewPartitioner creates a new partitioner.
func NewPartitioner() *Partitioner {
	return &Partitioner{}
}

// Recompute partitions the board using a fresh Partitioner.
func Recompute(b *Board) (Partition, error) {
	return NewPartitioner().Recompute(b)
}

// Recompute rescans the whole board and returns every match group with its
// closed flag. Either every cell ends up in exactly one group or an error
// is returned; a partial partition is never produced.
func (pp *Partitioner) Recompute(b *Board) (Partition, error) {
	if err := b.Validate(); err != nil {
		return Partition{}, err
	}

	const unassigned = -1
	n := b.Size()
	groupOf := make([]int, n)
	for i := range groupOf {
		groupOf[i] = unassigned
	}
	visited := make([]bool, n)

	pt := Partition{
		Generation: b.generation,
		w:          b.w,
		h:          b.h,
	}

	for _, seed := range b.Positions() {
		if groupOf[b.index(seed)] != unassigned {
			continue
		}

		gid := len(pt.Groups)
		group := MatchGroup{Closed: true}
		members := []Position{seed}
		groupOf[b.index(seed)] = gid
		worklist := []Position{seed}

		for len(worklist) > 0 {
			p := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			for _, q := range b.neighbors(p) {
				conn := Connect(b.cells[b.index(p)].mask, b.cells[b.index(q)].mask, p.Toward(q))
				switch conn {
				case ConnectionSolidMatch:
					qi := b.index(q)
					switch groupOf[qi] {
					case gid:
						// already a member
					case unassigned:
						groupOf[qi] = gid
						members = append(members, q)
						worklist = append(worklist, q)
					default:
						// A solid match is mutual, so q's group would
						// already have claimed p.
						return Partition{}, fmt.Errorf("%w: %s matches %s across groups %d and %d",
							ErrMalformedBoard, p, q, groupOf[qi], gid)
					}
				case ConnectionInvalid:
					group.Closed = false
				}
			}

			if b.touchesBoundary(p) {
				group.Closed = false
			}

			visited[b.index(p)] = true
			pt.Examined++
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].Less(members[j])
		})
		group.Tiles = make([]Tile, len(members))
		for i, p := range members {
			group.Tiles[i] = b.cells[b.index(p)]
		}
		pt.Groups = append(pt.Groups, group)
	}

	for i, ok := range visited {
		if !ok {
			return Partition{}, fmt.Errorf("%w: cell %d never examined", ErrMalformedBoard, i)
		}
	}

	pt.groupOf = groupOf
	return pt, nil
}
