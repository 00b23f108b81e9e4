// Package linetiles implements the line tiles puzzle: shift rows and columns
// of a wrapping board until tile edges join into closed groups.
package linetiles

import (
	"fmt"

	"github.com/vovakirdan/linetiles/internal/config"
	"github.com/vovakirdan/linetiles/internal/core"
	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
	"github.com/vovakirdan/linetiles/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeRandom   Mode = "random"
)

// Game IDs as registered with the platform.
const (
	CampaignID = "linetiles"
	RandomID   = "linetiles_random"
)

// Game implements the line tiles puzzle.
type Game struct {
	mode Mode
	cfg  config.LineTilesConfig
	gen  *Generator
	tick uint64

	levels     []levels.Level
	levelIndex int
	startLevel string
	puzzle     *tiles.Puzzle
	cursor     tiles.Position
	loadErr    error

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level settings applied to every new game.
var (
	gameConfig      = config.DefaultLineTilesConfig()
	levelSource     = levels.Builtin()
	selectedLevelID string
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.LineTilesConfig) {
	gameConfig = cfg
}

// SetLevelSource replaces the campaign levels, e.g. with a directory
// given on the command line.
func SetLevelSource(l *levels.Loader) {
	levelSource = l
}

// SetStartLevel selects the campaign level the next game starts on.
// Empty means the first level.
func SetStartLevel(id string) {
	selectedLevelID = id
}

// StartAt selects the campaign level this game starts on at its next
// Reset. It takes precedence over SetStartLevel and is safe to use when
// several games run at once.
func (g *Game) StartAt(id string) {
	g.startLevel = id
}

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewRandom creates a new game on randomly dealt boards.
func NewRandom() *Game {
	return &Game{mode: ModeRandom}
}

func init() {
	registry.Register(CampaignID, func() registry.Game {
		return New()
	})
	registry.Register(RandomID, func() registry.Game {
		return NewRandom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return RandomID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Line Tiles (Random)"
	}
	return "Line Tiles"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.gen = NewGenerator(cfg.Seed, g.cfg.Shapes)
	g.tick = 0
	g.paused = false
	g.loadErr = nil
	g.levels = nil
	g.levelIndex = 0

	if g.mode == ModeCampaign {
		lvls, err := levelSource.LoadAll()
		if err == nil && len(lvls) == 0 {
			err = fmt.Errorf("no levels in %s", levelSource.Root)
		}
		if err != nil {
			g.loadErr = err
			g.puzzle = nil
			g.Resize(cfg.ScreenW, cfg.ScreenH)
			return
		}
		g.levels = lvls
		start := g.startLevel
		if start == "" {
			start = selectedLevelID
			selectedLevelID = ""
		}
		for i, lvl := range lvls {
			if lvl.ID == start {
				g.levelIndex = i
			}
		}
	}

	g.loadBoard()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadBoard replaces the puzzle with the current level, or a freshly dealt
// board in random mode.
func (g *Game) loadBoard() {
	var b *tiles.Board
	var err error
	if g.mode == ModeRandom {
		b, err = g.gen.Board(g.cfg.Board.Width, g.cfg.Board.Height)
	} else {
		b, err = g.levels[g.levelIndex].NewBoard()
	}
	if err != nil {
		g.loadErr = err
		g.puzzle = nil
		return
	}

	g.loadErr = nil
	g.puzzle = tiles.NewPuzzle(b)
	g.cursor = tiles.P(0, b.Height()-1)
}

// Resize adapts the layout to a new screen size without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD, the board and the
// cursor markers around it.
func (g *Game) checkScreenSize() {
	if g.puzzle == nil {
		g.tooSmall = false
		return
	}
	minW := frameWidth(g.puzzle.Width()) + 4
	minH := frameHeight(g.puzzle.Height()) + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.puzzle == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.loadBoard()
	case in.Has(core.ActionNextLevel):
		g.changeLevel(1)
	case in.Has(core.ActionPrevLevel):
		g.changeLevel(-1)
	}
	if g.puzzle == nil {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	g.applyShift(in)

	return core.StepResult{State: g.State()}
}

// changeLevel moves through the campaign, wrapping at both ends. In random
// mode every change deals a new board.
func (g *Game) changeLevel(delta int) {
	if g.mode == ModeCampaign {
		g.levelIndex = core.Wrap(g.levelIndex+delta, len(g.levels))
	}
	g.loadBoard()
	g.checkScreenSize()
}

// moveCursor moves the selected column and row. The cursor wraps like the
// board does.
func (g *Game) moveCursor(in core.InputFrame) {
	w, h := g.puzzle.Width(), g.puzzle.Height()
	switch {
	case in.Has(core.ActionCursorLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, w)
	case in.Has(core.ActionCursorRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, w)
	}
	// Screen up is board row+1.
	switch {
	case in.Has(core.ActionCursorUp):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, h)
	case in.Has(core.ActionCursorDown):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, h)
	}
}

// applyShift performs at most one shift per tick on the selected column or
// row.
func (g *Game) applyShift(in core.InputFrame) {
	var s tiles.Shift
	switch {
	case in.Has(core.ActionShiftUp):
		s = tiles.Shift{Dir: tiles.DirUp, Index: g.cursor.Col}
	case in.Has(core.ActionShiftDown):
		s = tiles.Shift{Dir: tiles.DirDown, Index: g.cursor.Col}
	case in.Has(core.ActionShiftLeft):
		s = tiles.Shift{Dir: tiles.DirLeft, Index: g.cursor.Row}
	case in.Has(core.ActionShiftRight):
		s = tiles.Shift{Dir: tiles.DirRight, Index: g.cursor.Row}
	default:
		return
	}

	_ = g.puzzle.Shift(s)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.paused || g.tooSmall,
	}
	if g.puzzle == nil {
		return st
	}
	st.Moves = g.puzzle.Moves()
	if pt, err := g.puzzle.Partition(); err == nil {
		st.Groups = len(pt.Groups)
		st.Closed = pt.ClosedCount()
	}
	return st
}

// Puzzle exposes the board and its partition, mainly for tests and tools.
func (g *Game) Puzzle() *tiles.Puzzle {
	return g.puzzle
}

// Cursor returns the selected column and row.
func (g *Game) Cursor() tiles.Position {
	return g.cursor
}

// LevelName returns the name of the current layout.
func (g *Game) LevelName() string {
	if g.mode == ModeRandom {
		if g.puzzle == nil {
			return "Random"
		}
		return fmt.Sprintf("Random %dx%d", g.puzzle.Width(), g.puzzle.Height())
	}
	if len(g.levels) == 0 {
		return ""
	}
	return g.levels[g.levelIndex].Name
}
