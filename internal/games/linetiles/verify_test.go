package linetiles

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/linetiles/internal/config"
	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

func TestVerifyRandomBoards(t *testing.T) {
	gen := NewGenerator(7, config.DefaultLineTilesConfig().Shapes)
	rng := rand.New(rand.NewSource(7))

	for i := range 50 {
		w, h := 1+i%6, 1+(i/6)%6
		b, err := gen.Board(w, h)
		if err != nil {
			t.Fatalf("Board(%d, %d) error = %v", w, h, err)
		}
		if err := VerifyBoard(b, rng); err != nil {
			t.Errorf("board %d (%dx%d):\n%s\nVerifyBoard() error = %v", i, w, h, b, err)
		}
	}
}

func TestVerifyBuiltinLevels(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	rng := rand.New(rand.NewSource(1))

	for _, lvl := range lvls {
		b, err := lvl.NewBoard()
		if err != nil {
			t.Fatalf("level %s: NewBoard() error = %v", lvl.ID, err)
		}
		if err := VerifyBoard(b, rng); err != nil {
			t.Errorf("level %s: VerifyBoard() error = %v", lvl.ID, err)
		}
	}
}

func TestVerifyLeavesBoardAlone(t *testing.T) {
	b, err := tiles.BoardFromLayout("┌┬┐", "├┼┤", "└┴┘")
	if err != nil {
		t.Fatalf("BoardFromLayout() error = %v", err)
	}
	before := b.Clone()

	if err := VerifyBoard(b, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("VerifyBoard() error = %v", err)
	}
	if !b.Equal(before) || b.Generation() != before.Generation() {
		t.Error("VerifyBoard() modified the board")
	}
}

func TestVerifyMalformedBoard(t *testing.T) {
	err := VerifyBoard(&tiles.Board{}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, tiles.ErrMalformedBoard) {
		t.Errorf("VerifyBoard(empty) error = %v, expected ErrMalformedBoard", err)
	}
}
