package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/linetiles/internal/games/linetiles/core"
)

// mustLayout builds a board from glyph rows (top row first).
func mustLayout(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b, err := core.BoardFromLayout(rows...)
	if err != nil {
		t.Fatalf("BoardFromLayout(%q) failed: %v", rows, err)
	}
	return b
}

// randomBoard fills a board with seeded random tiles.
func randomBoard(t *testing.T, w, h int, seed int64) *core.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b, err := core.NewBoard(w, h, func(core.Position) core.TileSpec {
		return core.TileSpec{
			Shape:    core.Shapes()[rng.Intn(len(core.Shapes()))],
			Rotation: core.Rotations()[rng.Intn(len(core.Rotations()))],
		}
	})
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) failed: %v", w, h, err)
	}
	return b
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := core.NewBoard(dims[0], dims[1], func(core.Position) core.TileSpec { return core.TileSpec{} })
		if !errors.Is(err, core.ErrInvalidDimensions) {
			t.Errorf("NewBoard(%d, %d): expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestNewBoardRejectsBadSpec(t *testing.T) {
	_, err := core.NewBoard(2, 2, func(p core.Position) core.TileSpec {
		if p == core.P(1, 1) {
			return core.TileSpec{Shape: core.Shape(42)}
		}
		return core.TileSpec{Shape: core.ShapeCross}
	})
	if !errors.Is(err, core.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestNewBoardFromSpecsRagged(t *testing.T) {
	cross := core.TileSpec{Shape: core.ShapeCross}
	_, err := core.NewBoardFromSpecs([][]core.TileSpec{{cross, cross}, {cross}})
	if !errors.Is(err, core.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions for ragged rows, got %v", err)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	rows := []string{"┌─┐", "│╵│", "└─┘"}
	b := mustLayout(t, rows...)

	if b.Width() != 3 || b.Height() != 3 {
		t.Fatalf("expected 3x3 board, got %dx%d", b.Width(), b.Height())
	}
	if diff := cmp.Diff(rows, b.Layout()); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}

	// Row 0 is the bottom row.
	mask, err := b.EdgeMaskOf(core.P(0, 0))
	if err != nil {
		t.Fatalf("EdgeMaskOf failed: %v", err)
	}
	if mask != core.EdgeTop|core.EdgeRight {
		t.Errorf("EdgeMaskOf(0,0) = %s, expected T|R", mask)
	}
}

func TestEdgeMaskOfOutOfBounds(t *testing.T) {
	b := mustLayout(t, "┼┼", "┼┼")

	for _, p := range []core.Position{core.P(-1, 0), core.P(0, -1), core.P(2, 0), core.P(0, 2)} {
		if _, err := b.EdgeMaskOf(p); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("EdgeMaskOf(%v): expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestNeighbors(t *testing.T) {
	b := randomBoard(t, 3, 3, 1)

	tests := []struct {
		pos      core.Position
		expected []core.Position
	}{
		{core.P(0, 0), []core.Position{core.P(1, 0), core.P(0, 1)}},
		{core.P(2, 2), []core.Position{core.P(1, 2), core.P(2, 1)}},
		{core.P(1, 0), []core.Position{core.P(0, 0), core.P(2, 0), core.P(1, 1)}},
		{core.P(0, 1), []core.Position{core.P(1, 1), core.P(0, 0), core.P(0, 2)}},
		{core.P(1, 1), []core.Position{core.P(0, 1), core.P(2, 1), core.P(1, 0), core.P(1, 2)}},
	}

	for _, tc := range tests {
		got, err := b.Neighbors(tc.pos)
		if err != nil {
			t.Fatalf("Neighbors(%v) failed: %v", tc.pos, err)
		}
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("Neighbors(%v) mismatch (-want +got):\n%s", tc.pos, diff)
		}
	}

	if _, err := b.Neighbors(core.P(3, 0)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("Neighbors off board: expected ErrOutOfBounds, got %v", err)
	}
}

func TestConnectionNotSymmetric(t *testing.T) {
	// Both tiles are nubs pointing right.
	b := mustLayout(t, "╶╶")

	got, err := b.Connection(core.P(0, 0), core.P(1, 0))
	if err != nil {
		t.Fatalf("Connection failed: %v", err)
	}
	if got != core.ConnectionInvalid {
		t.Errorf("Connection(base, neighbor) = %s, expected Invalid", got)
	}

	got, err = b.Connection(core.P(1, 0), core.P(0, 0))
	if err != nil {
		t.Fatalf("Connection failed: %v", err)
	}
	if got != core.ConnectionOpenSide {
		t.Errorf("Connection(neighbor, base) = %s, expected OpenSide", got)
	}
}

func TestConnectionSolidMatchVertical(t *testing.T) {
	// Top tile points down, bottom tile points up.
	b := mustLayout(t, "╷", "╵")

	got, err := b.Connection(core.P(0, 0), core.P(0, 1))
	if err != nil {
		t.Fatalf("Connection failed: %v", err)
	}
	if got != core.ConnectionSolidMatch {
		t.Errorf("Connection = %s, expected SolidMatch", got)
	}
}

func TestConnectionErrors(t *testing.T) {
	b := mustLayout(t, "┼┼┼", "┼┼┼")

	if _, err := b.Connection(core.P(0, 0), core.P(2, 0)); !errors.Is(err, core.ErrNotAdjacent) {
		t.Errorf("distant cells: expected ErrNotAdjacent, got %v", err)
	}
	if _, err := b.Connection(core.P(0, 0), core.P(1, 1)); !errors.Is(err, core.ErrNotAdjacent) {
		t.Errorf("diagonal cells: expected ErrNotAdjacent, got %v", err)
	}
	if _, err := b.Connection(core.P(0, 0), core.P(0, 0)); !errors.Is(err, core.ErrNotAdjacent) {
		t.Errorf("same cell: expected ErrNotAdjacent, got %v", err)
	}
	if _, err := b.Connection(core.P(2, 1), core.P(3, 1)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("off-board neighbor: expected ErrOutOfBounds, got %v", err)
	}
}

func TestTouchesBoundaryWithSolidEdge(t *testing.T) {
	b := mustLayout(t,
		"╵╷",
		"╵╴",
	)

	tests := []struct {
		pos      core.Position
		expected bool
	}{
		{core.P(0, 1), true},  // top row, Top solid
		{core.P(1, 1), false}, // top row, only Bottom solid
		{core.P(0, 0), false}, // bottom row, only Top solid
		{core.P(1, 0), false}, // right column, only Left solid
	}

	for _, tc := range tests {
		got, err := b.TouchesBoundaryWithSolidEdge(tc.pos)
		if err != nil {
			t.Fatalf("TouchesBoundaryWithSolidEdge(%v) failed: %v", tc.pos, err)
		}
		if got != tc.expected {
			t.Errorf("TouchesBoundaryWithSolidEdge(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}

	cross := mustLayout(t, "┼┼", "┼┼")
	for _, p := range cross.Positions() {
		if got, _ := cross.TouchesBoundaryWithSolidEdge(p); !got {
			t.Errorf("cross at %v should touch the boundary", p)
		}
	}
}

func TestShiftColumnUpWraps(t *testing.T) {
	b := mustLayout(t,
		"╵",
		"─",
		"┼",
	)

	if err := b.ShiftColumn(0, core.DirUp); err != nil {
		t.Fatalf("ShiftColumn failed: %v", err)
	}

	// The top tile re-enters at the bottom.
	expected := []string{"─", "┼", "╵"}
	if diff := cmp.Diff(expected, b.Layout()); diff != "" {
		t.Errorf("Layout after shift up mismatch (-want +got):\n%s", diff)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("tile positions out of sync after shift: %v", err)
	}
	if b.Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1", b.Generation())
	}
}

func TestShiftColumnDownWraps(t *testing.T) {
	b := mustLayout(t,
		"╵",
		"─",
		"┼",
	)

	if err := b.ShiftColumn(0, core.DirDown); err != nil {
		t.Fatalf("ShiftColumn failed: %v", err)
	}

	// The bottom tile re-enters at the top.
	expected := []string{"┼", "╵", "─"}
	if diff := cmp.Diff(expected, b.Layout()); diff != "" {
		t.Errorf("Layout after shift down mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftRowWraps(t *testing.T) {
	b := mustLayout(t, "┌─┐")

	if err := b.ShiftRow(0, core.DirRight); err != nil {
		t.Fatalf("ShiftRow failed: %v", err)
	}
	if diff := cmp.Diff([]string{"┐┌─"}, b.Layout()); diff != "" {
		t.Errorf("Layout after shift right mismatch (-want +got):\n%s", diff)
	}

	if err := b.ShiftRow(0, core.DirLeft); err != nil {
		t.Fatalf("ShiftRow failed: %v", err)
	}
	if diff := cmp.Diff([]string{"┌─┐"}, b.Layout()); diff != "" {
		t.Errorf("Layout after shift left mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftOnlyTouchesOneLine(t *testing.T) {
	b := mustLayout(t,
		"╵╷╴",
		"┌─┐",
		"└┼┘",
	)

	if err := b.Apply(core.Shift{Dir: core.DirLeft, Index: 1}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	expected := []string{"╵╷╴", "─┐┌", "└┼┘"}
	if diff := cmp.Diff(expected, b.Layout()); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftErrors(t *testing.T) {
	b := randomBoard(t, 3, 4, 2)
	before := b.Clone()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"negative column", func() error { return b.ShiftColumn(-1, core.DirUp) }, core.ErrOutOfBounds},
		{"column past width", func() error { return b.ShiftColumn(3, core.DirDown) }, core.ErrOutOfBounds},
		{"negative row", func() error { return b.ShiftRow(-1, core.DirLeft) }, core.ErrOutOfBounds},
		{"row past height", func() error { return b.ShiftRow(4, core.DirRight) }, core.ErrOutOfBounds},
		{"column moved sideways", func() error { return b.ShiftColumn(0, core.DirLeft) }, core.ErrInvalidDirection},
		{"row moved vertically", func() error { return b.ShiftRow(0, core.DirUp) }, core.ErrInvalidDirection},
		{"unknown direction", func() error { return b.Apply(core.Shift{Dir: core.Direction(9)}) }, core.ErrInvalidDirection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if !b.Equal(before) || b.Generation() != 0 {
		t.Error("failed shifts must leave the board untouched")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	const w, h = 4, 5
	b := randomBoard(t, w, h, 3)
	original := b.Clone()

	for i := 1; i <= h; i++ {
		if err := b.ShiftColumn(0, core.DirUp); err != nil {
			t.Fatalf("ShiftColumn failed: %v", err)
		}
		if i < h && b.Equal(original) {
			t.Errorf("column returned to start after %d shifts, expected period %d", i, h)
		}
	}
	if !b.Equal(original) {
		t.Errorf("column did not return to start after %d shifts up", h)
	}

	for i := 1; i <= w; i++ {
		if err := b.ShiftRow(2, core.DirLeft); err != nil {
			t.Fatalf("ShiftRow failed: %v", err)
		}
		if i < w && b.Equal(original) {
			t.Errorf("row returned to start after %d shifts, expected period %d", i, w)
		}
	}
	if !b.Equal(original) {
		t.Errorf("row did not return to start after %d shifts left", w)
	}

	for _, s := range []core.Shift{{Dir: core.DirDown, Index: 3}, {Dir: core.DirRight, Index: 4}} {
		if err := b.Apply(s); err != nil {
			t.Fatalf("Apply(%v) failed: %v", s, err)
		}
		if err := b.Apply(s.Inverse()); err != nil {
			t.Fatalf("Apply(%v) failed: %v", s.Inverse(), err)
		}
	}
	if !b.Equal(original) {
		t.Error("shift followed by its inverse should restore the board")
	}
}

func TestShiftKeepsTilePositionsInSync(t *testing.T) {
	b := randomBoard(t, 5, 4, 4)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		var s core.Shift
		if rng.Intn(2) == 0 {
			s = core.Shift{Dir: []core.Direction{core.DirUp, core.DirDown}[rng.Intn(2)], Index: rng.Intn(b.Width())}
		} else {
			s = core.Shift{Dir: []core.Direction{core.DirLeft, core.DirRight}[rng.Intn(2)], Index: rng.Intn(b.Height())}
		}
		if err := b.Apply(s); err != nil {
			t.Fatalf("Apply(%v) failed: %v", s, err)
		}
	}

	for _, p := range b.Positions() {
		tile, err := b.TileAt(p)
		if err != nil {
			t.Fatalf("TileAt(%v) failed: %v", p, err)
		}
		if tile.Position() != p {
			t.Errorf("tile #%d at %v records %v", tile.ID(), p, tile.Position())
		}
	}
	if len(b.Tiles()) != b.Size() {
		t.Errorf("Tiles() returned %d tiles, expected %d", len(b.Tiles()), b.Size())
	}
}
