package levels_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

func TestBuiltinLevels(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 6 {
		t.Fatalf("expected 6 builtin levels, got %d", len(lvls))
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			solved, err := lvl.Solved()
			if err != nil {
				t.Fatalf("Solved failed: %v", err)
			}
			pt, err := core.Recompute(solved)
			if err != nil {
				t.Fatalf("Recompute failed: %v", err)
			}
			if pt.ClosedCount() == 0 {
				t.Error("designed layout should contain at least one closed group")
			}

			b, err := lvl.NewBoard()
			if err != nil {
				t.Fatalf("NewBoard failed: %v", err)
			}
			if b.Width() != lvl.Width || b.Height() != lvl.Height {
				t.Errorf("board is %dx%d, level says %dx%d", b.Width(), b.Height(), lvl.Width, lvl.Height)
			}
			if len(lvl.Scramble) == 0 {
				t.Fatal("builtin levels should be scrambled")
			}

			// Undoing the scramble in reverse order restores the design.
			for i := len(lvl.Scramble) - 1; i >= 0; i-- {
				if err := b.Apply(lvl.Scramble[i].Inverse()); err != nil {
					t.Fatalf("Apply failed: %v", err)
				}
			}
			if diff := cmp.Diff(solved.Layout(), b.Layout()); diff != "" {
				t.Errorf("unscrambled layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuiltinTileListMatchesGlyphs(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("06_hooks")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	solved, err := lvl.Solved()
	if err != nil {
		t.Fatalf("Solved failed: %v", err)
	}
	if diff := cmp.Diff([]string{"┌─┐", "└─┘"}, solved.Layout()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	loader := levels.NewLoader(filepath.Join("testdata", "levels"))

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a_bar", "b_tower"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(filepath.Join("testdata", "levels"))

	lvl, err := loader.LoadByID("b_tower")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "b_tower" {
		t.Errorf("Name = %q, expected the ID as fallback", lvl.Name)
	}
	if lvl.Width != 1 || lvl.Height != 3 {
		t.Errorf("expected 1x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.FilePath != filepath.Join("testdata", "levels", "nested", "b_tower.yml") {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	b, err := lvl.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	// Shifting the column up moves the top nub to the bottom.
	if diff := cmp.Diff([]string{"│", "╵", "╷"}, b.Layout()); diff != "" {
		t.Errorf("scrambled layout mismatch (-want +got):\n%s", diff)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for unknown IDs")
	}
}

func TestLoadPath(t *testing.T) {
	lvl, err := levels.LoadPath(filepath.Join("testdata", "levels", "a_bar.yaml"))
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	b, err := lvl.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	pt, err := core.Recompute(b)
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(pt.Groups) != 1 || !pt.Groups[0].Closed {
		t.Errorf("expected one closed group, got %d groups (%d closed)", len(pt.Groups), pt.ClosedCount())
	}

	if _, err := levels.LoadPath(filepath.Join("testdata", "levels", "broken.yaml")); err == nil {
		t.Error("LoadPath should fail on an unknown glyph")
	}
	if _, err := levels.LoadPath(filepath.Join("testdata", "levels", "notes.txt")); err == nil {
		t.Error("LoadPath should fail on unsupported extensions")
	}
}
