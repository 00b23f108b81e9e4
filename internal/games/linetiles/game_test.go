package linetiles

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/linetiles/internal/config"
	"github.com/vovakirdan/linetiles/internal/core"
	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newCampaign(t *testing.T) *Game {
	t.Helper()
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g.Reset(cfg)
	if g.Puzzle() == nil {
		t.Fatalf("campaign failed to load: %v", g.loadErr)
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{CampaignID, RandomID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestCampaignStartsScrambled(t *testing.T) {
	g := newCampaign(t)
	snap := g.Snapshot()

	if snap.Level != "01_square" {
		t.Fatalf("Level = %q, expected 01_square", snap.Level)
	}
	if diff := cmp.Diff([]string{"┌┐", "┘└"}, snap.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if snap.Closed != 0 {
		t.Errorf("Closed = %d, expected 0", snap.Closed)
	}
	if snap.Cursor != [2]int{0, 1} {
		t.Errorf("Cursor = %v, expected top-left", snap.Cursor)
	}
}

func TestShiftClosesSquare(t *testing.T) {
	g := newCampaign(t)

	g.Step(frame(core.ActionCursorDown))
	if g.Cursor() != tiles.P(0, 0) {
		t.Fatalf("Cursor() = %v, expected (0,0)", g.Cursor())
	}

	res := g.Step(frame(core.ActionShiftLeft))
	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", res.State.Moves)
	}
	if res.State.Closed != 1 || res.State.Groups != 1 {
		t.Errorf("Groups/Closed = %d/%d, expected 1/1", res.State.Groups, res.State.Closed)
	}
	if diff := cmp.Diff([]string{"┌┐", "└┘"}, g.Snapshot().Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnShiftUsesCursorColumn(t *testing.T) {
	g := newCampaign(t)

	g.Step(frame(core.ActionCursorRight))
	g.Step(frame(core.ActionShiftUp))

	// Column 1 ("┐" over "└") rotates; column 0 stays.
	if diff := cmp.Diff([]string{"┌└", "┘┐"}, g.Snapshot().Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorWraps(t *testing.T) {
	g := newCampaign(t)

	g.Step(frame(core.ActionCursorLeft))
	g.Step(frame(core.ActionCursorUp))
	if g.Cursor() != tiles.P(1, 0) {
		t.Errorf("Cursor() = %v, expected (1,0) after wrapping", g.Cursor())
	}
}

func TestLevelNavigation(t *testing.T) {
	g := newCampaign(t)

	g.Step(frame(core.ActionPrevLevel))
	if got := g.Snapshot().Level; got != "06_hooks" {
		t.Errorf("previous from the first level = %q, expected 06_hooks", got)
	}
	g.Step(frame(core.ActionNextLevel))
	g.Step(frame(core.ActionNextLevel))
	if got := g.Snapshot().Level; got != "02_twins" {
		t.Errorf("Level = %q, expected 02_twins", got)
	}
	if g.LevelName() != "Twins" {
		t.Errorf("LevelName() = %q, expected Twins", g.LevelName())
	}
}

func TestStartLevel(t *testing.T) {
	SetStartLevel("04_ladder")
	g := newCampaign(t)
	if got := g.Snapshot().Level; got != "04_ladder" {
		t.Errorf("Level = %q, expected 04_ladder", got)
	}

	// The selection only applies once.
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Level; got != "01_square" {
		t.Errorf("Level after second reset = %q, expected 01_square", got)
	}
}

func TestStartAt(t *testing.T) {
	SetStartLevel("03_lattice")
	defer SetStartLevel("")

	g := New()
	g.StartAt("05_frame")
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Level; got != "05_frame" {
		t.Errorf("Level = %q, expected 05_frame", got)
	}

	// StartAt sticks to the game and wins over the package setting.
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot().Level; got != "05_frame" {
		t.Errorf("Level after second reset = %q, expected 05_frame", got)
	}
}

func TestRestartReloadsLayout(t *testing.T) {
	g := newCampaign(t)
	start := g.Snapshot().Layout

	g.Step(frame(core.ActionShiftUp))
	g.Step(frame(core.ActionShiftRight))
	if g.State().Moves != 2 {
		t.Fatalf("Moves = %d, expected 2", g.State().Moves)
	}

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves after restart = %d, expected 0", snap.Moves)
	}
	if diff := cmp.Diff(start, snap.Layout); diff != "" {
		t.Errorf("restart layout mismatch (-want +got):\n%s", diff)
	}
}

func TestPauseBlocksShifts(t *testing.T) {
	g := newCampaign(t)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	g.Step(frame(core.ActionShiftUp))
	if g.State().Moves != 0 {
		t.Error("shifts should be ignored while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StatePaused)
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionShiftUp))
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1 after unpausing", g.State().Moves)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 6, 6
	g.Reset(cfg)

	res := g.Step(frame(core.ActionShiftUp))
	if !res.State.Paused || res.State.Moves != 0 {
		t.Errorf("tiny screen should pause the game, got %+v", res.State)
	}

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window") {
		t.Errorf("expected a too-small message, got:\n%s", screen.String())
	}

	// Growing the window keeps the board and unpauses.
	g.Resize(80, 24)
	g.Step(frame(core.ActionShiftUp))
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1 after resize", g.State().Moves)
	}
}

func TestRandomModeDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	inputs := []core.InputFrame{
		frame(core.ActionShiftUp),
		frame(core.ActionCursorRight),
		frame(core.ActionShiftLeft),
		frame(core.ActionNextLevel),
		frame(core.ActionShiftDown),
	}

	run := func() Snapshot {
		g := NewRandom()
		g.Reset(cfg)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different games (-first +second):\n%s", diff)
	}
	if a.Mode != string(ModeRandom) || a.Level != "" {
		t.Errorf("unexpected random snapshot: %+v", a)
	}
	w, h := config.DefaultLineTilesConfig().Board.Width, config.DefaultLineTilesConfig().Board.Height
	if len(a.Layout) != h || len([]rune(a.Layout[0])) != w {
		t.Errorf("random board is not %dx%d: %q", w, h, a.Layout)
	}
}

func TestRandomModeUsesConfig(t *testing.T) {
	cfg := config.DefaultLineTilesConfig()
	cfg.Board = config.BoardConfig{Width: 3, Height: 2}
	cfg.Shapes = config.ShapeWeights{Cross: 1}
	SetConfig(cfg)
	defer SetConfig(config.DefaultLineTilesConfig())

	g := NewRandom()
	g.Reset(core.DefaultConfig())

	if diff := cmp.Diff([]string{"┼┼┼", "┼┼┼"}, g.Snapshot().Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if g.LevelName() != "Random 3x2" {
		t.Errorf("LevelName() = %q", g.LevelName())
	}
}

func TestGeneratorWeights(t *testing.T) {
	gen := NewGenerator(7, config.ShapeWeights{Line: 1, Corner: 1})
	for i := 0; i < 500; i++ {
		s := gen.Spec()
		if s.Shape != tiles.ShapeLine && s.Shape != tiles.ShapeCorner {
			t.Fatalf("drew %s with zero weight", s.Shape)
		}
		if !s.Rotation.Valid() {
			t.Fatalf("drew invalid rotation %d", s.Rotation)
		}
	}
}

func TestRenderHighlightsClosedGroups(t *testing.T) {
	g := newCampaign(t)
	g.Step(frame(core.ActionCursorDown))
	g.Step(frame(core.ActionShiftLeft))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	text := screen.String()
	if !strings.Contains(text, "Closed: 1") {
		t.Errorf("HUD should report the closed group:\n%s", text)
	}
	if !strings.Contains(text, "Level 1/6: Square") {
		t.Errorf("HUD should name the level:\n%s", text)
	}

	fr := core.NewRect((80-frameWidth(2))/2, hudHeight+1, frameWidth(2), frameHeight(2))
	x, y := tileScreenPos(fr, 2, tiles.P(0, 1))
	cell := screen.GetCell(x, y)
	if cell.Rune != '┌' {
		t.Errorf("top-left tile drawn as %q, expected '┌'", cell.Rune)
	}
	if cell.Color != closedPalette[0] && cell.Color != closedPalette[0].Bright() {
		t.Errorf("closed tile color = %d, expected the first palette color", cell.Color)
	}
	if screen.Get(x+1, y) != '─' {
		t.Errorf("connector after '┌' = %q, expected '─'", screen.Get(x+1, y))
	}
}

func TestRenderReturns(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	for _, tc := range []struct {
		name string
		game *Game
	}{
		{"campaign", New()},
		{"random", NewRandom()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.game
			g.Reset(cfg)
			g.Step(frame(core.ActionShiftUp))

			screen := core.NewScreen(80, 30)
			done := make(chan struct{})
			go func() {
				g.Render(screen)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("Render did not return")
			}

			if !strings.Contains(screen.String(), "Moves: 1") {
				t.Errorf("HUD should count the shift:\n%s", screen.String())
			}
		})
	}
}

func TestRenderMalformedBoard(t *testing.T) {
	g := newCampaign(t)
	g.puzzle = tiles.NewPuzzle(&tiles.Board{})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	text := screen.String()
	if !strings.Contains(text, "BAD BOARD") {
		t.Errorf("Render should report the broken board:\n%s", text)
	}
	if !strings.Contains(text, "malformed") {
		t.Errorf("Render should show the partition error:\n%s", text)
	}
}

func TestRenderOpenGroupsPlain(t *testing.T) {
	g := newCampaign(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	fr := core.NewRect((80-frameWidth(2))/2, hudHeight+1, frameWidth(2), frameHeight(2))
	for _, p := range []tiles.Position{tiles.P(0, 0), tiles.P(1, 0), tiles.P(0, 1), tiles.P(1, 1)} {
		x, y := tileScreenPos(fr, 2, p)
		if c := screen.GetCell(x, y); c.Color != core.ColorDefault {
			t.Errorf("open tile at %v colored %d, expected default", p, c.Color)
		}
	}
}

func TestFlashAlternates(t *testing.T) {
	g := newCampaign(t)
	g.Step(frame(core.ActionCursorDown))
	g.Step(frame(core.ActionShiftLeft))
	pt, err := g.Puzzle().Partition()
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	period := uint64(g.cfg.Display.FlashPeriod)
	g.tick = 0
	dim := g.groupColors(pt)[0]
	g.tick = period
	lit := g.groupColors(pt)[0]
	if dim == lit {
		t.Errorf("closed group should flash: both phases colored %d", dim)
	}
	if lit != dim.Bright() {
		t.Errorf("lit phase = %d, expected %d", lit, dim.Bright())
	}
}
