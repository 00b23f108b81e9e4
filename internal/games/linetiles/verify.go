package linetiles

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/go-cmp/cmp"

	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
)

// Property violations reported by VerifyBoard.
var (
	ErrIncomplete = errors.New("linetiles: partition does not cover the board exactly once")
	ErrUnstable   = errors.New("linetiles: recomputing an unchanged board gave different groups")
	ErrClosedness = errors.New("linetiles: closed flag disagrees with the board")
	ErrRoundTrip  = errors.New("linetiles: full shift cycle did not restore the board")
)

// groupShape is the part of a group compared between two partitions.
type groupShape struct {
	Positions []tiles.Position
	Closed    bool
}

func shapesOf(pt tiles.Partition) []groupShape {
	out := make([]groupShape, len(pt.Groups))
	for i, g := range pt.Groups {
		out[i] = groupShape{Positions: g.Positions(), Closed: g.Closed}
	}
	return out
}

// VerifyBoard checks the partition of b against the board, then shifts one
// column and one row (picked with rng) through a full cycle. b is left
// unchanged.
func VerifyBoard(b *tiles.Board, rng *rand.Rand) error {
	pt, err := tiles.Recompute(b)
	if err != nil {
		return err
	}
	if err := checkCoverage(b, pt); err != nil {
		return err
	}
	if err := checkClosed(b, pt); err != nil {
		return err
	}

	again, err := tiles.Recompute(b)
	if err != nil {
		return err
	}
	if diff := cmp.Diff(shapesOf(pt), shapesOf(again)); diff != "" {
		return fmt.Errorf("%w (-first +second):\n%s", ErrUnstable, diff)
	}

	return checkRoundTrip(b, rng)
}

// checkCoverage checks that every cell is in exactly one group and was
// examined once.
func checkCoverage(b *tiles.Board, pt tiles.Partition) error {
	if pt.TileCount() != b.Size() {
		return fmt.Errorf("%w: %d tiles in groups, %d cells", ErrIncomplete, pt.TileCount(), b.Size())
	}
	if pt.Examined != b.Size() {
		return fmt.Errorf("%w: %d examinations, %d cells", ErrIncomplete, pt.Examined, b.Size())
	}
	for _, p := range b.Positions() {
		gi := pt.GroupAt(p)
		if gi < 0 || !pt.Groups[gi].Contains(p) {
			return fmt.Errorf("%w: %s not in its group", ErrIncomplete, p)
		}
	}
	return nil
}

// checkClosed re-derives each group's closed flag from the board: a group
// is closed when none of its tiles has a solid side facing the edge of the
// board or an open side.
func checkClosed(b *tiles.Board, pt tiles.Partition) error {
	for gi, g := range pt.Groups {
		closed := true
		for _, p := range g.Positions() {
			touches, err := b.TouchesBoundaryWithSolidEdge(p)
			if err != nil {
				return err
			}
			if touches {
				closed = false
			}
			neighbors, err := b.Neighbors(p)
			if err != nil {
				return err
			}
			for _, q := range neighbors {
				conn, err := b.Connection(p, q)
				if err != nil {
					return err
				}
				if conn == tiles.ConnectionInvalid {
					closed = false
				}
			}
		}
		if closed != g.Closed {
			return fmt.Errorf("%w: group %d at %s is marked closed=%v", ErrClosedness, gi, g.Positions()[0], g.Closed)
		}
	}
	return nil
}

// checkRoundTrip shifts a column up Height times and a row right Width
// times on a copy of b.
func checkRoundTrip(b *tiles.Board, rng *rand.Rand) error {
	work := b.Clone()
	col := rng.Intn(b.Width())
	row := rng.Intn(b.Height())

	for range b.Height() {
		if err := work.ShiftColumn(col, tiles.DirUp); err != nil {
			return err
		}
	}
	if !work.Equal(b) {
		return fmt.Errorf("%w: column %d after %d shifts up", ErrRoundTrip, col, b.Height())
	}

	for range b.Width() {
		if err := work.ShiftRow(row, tiles.DirRight); err != nil {
			return err
		}
	}
	if !work.Equal(b) {
		return fmt.Errorf("%w: row %d after %d shifts right", ErrRoundTrip, row, b.Width())
	}
	return nil
}
