package linetiles

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNoBoard     GameStateType = "no_board"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Level  string   // Layout ID, empty in random mode
	Layout []string // Glyph rows, top row first
	Moves  int
	Groups int
	Closed int
	Cursor [2]int // Column, row
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Cursor: [2]int{g.cursor.Col, g.cursor.Row},
		State:  StatePlaying,
	}
	if g.mode == ModeCampaign && len(g.levels) > 0 {
		snap.Level = g.levels[g.levelIndex].ID
	}

	switch {
	case g.puzzle == nil:
		snap.State = StateNoBoard
		return snap
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	}

	st := g.State()
	snap.Layout = g.puzzle.Board().Layout()
	snap.Moves = st.Moves
	snap.Groups = st.Groups
	snap.Closed = st.Closed
	return snap
}
