package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/linetiles/internal/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	return NewSessionModel(cfg, levels.Builtin(), log.New(io.Discard))
}

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	var ids []string
	for _, item := range m.items {
		ids = append(ids, item.GameID)
	}
	expected := []string{linetiles.CampaignID, linetiles.RandomID, ""}
	if len(ids) != len(expected) {
		t.Fatalf("menu items = %v, expected %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("item %d = %q, expected %q", i, ids[i], expected[i])
		}
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("view = %v, expected game", m.view)
	}

	m = send(t, m, runeKey('w'), tick())
	if got := m.gameModel.State().Moves; got != 1 {
		t.Errorf("Moves = %d, expected 1", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.gameModel != nil {
		t.Errorf("view = %v, expected menu after back", m.view)
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionLevelBrowser(t *testing.T) {
	m := newTestSession()

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.view != viewLevels {
		t.Fatalf("view = %v, expected level browser", m.view)
	}
	if len(m.browser.rows) != 6 {
		t.Errorf("browser rows = %d, expected 6", len(m.browser.rows))
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}

	game, ok := m.gameModel.game.(*linetiles.Game)
	if !ok {
		t.Fatalf("game is %T, expected *linetiles.Game", m.gameModel.game)
	}
	if got := game.Snapshot().Level; got != "02_twins" {
		t.Errorf("started on %q, expected 02_twins", got)
	}
}

func TestSessionBrowserBack(t *testing.T) {
	m := newTestSession()

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.view != viewMenu || m.quitting {
		t.Errorf("view = %v, quitting = %v, expected menu", m.view, m.quitting)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	next, cmd := m.Update(runeKey('q'))
	sm := next.(SessionModel)
	if !sm.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if sm.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('w'), tick())

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, tick())
	if got := m.gameModel.State().Moves; got != 1 {
		t.Errorf("Moves after resize = %d, expected 1", got)
	}
	if m.gameModel.screen.Height() != 29 {
		t.Errorf("game rows = %d, expected 29", m.gameModel.screen.Height())
	}
}
