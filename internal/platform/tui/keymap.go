package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/linetiles/internal/core"
)

// GameKeyMap defines the key bindings used while a board is on screen.
type GameKeyMap struct {
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	ShiftUp     key.Binding
	ShiftDown   key.Binding
	ShiftLeft   key.Binding
	ShiftRight  key.Binding
	NextLevel   key.Binding
	PrevLevel   key.Binding
	Restart     key.Binding
	Pause       key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding

	// Help-only summaries of the cursor and shift keys.
	move  key.Binding
	shift key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.shift, k.NextLevel, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight},
		{k.ShiftUp, k.ShiftDown, k.ShiftLeft, k.ShiftRight},
		{k.NextLevel, k.PrevLevel, k.Restart, k.Pause},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "row up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "row down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "column left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "column right"),
		),
		ShiftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "shift column up"),
		),
		ShiftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shift column down"),
		),
		ShiftLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "shift row left"),
		),
		ShiftRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "shift row right"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("]", "n"),
			key.WithHelp("]", "next"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "cursor"),
		),
		shift: key.NewBinding(
			key.WithKeys("w", "a", "s", "d"),
			key.WithHelp("wasd", "shift"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper for the given bindings.
func NewKeyMapperWith(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.CursorUp, core.ActionCursorUp},
			{keys.CursorDown, core.ActionCursorDown},
			{keys.CursorLeft, core.ActionCursorLeft},
			{keys.CursorRight, core.ActionCursorRight},
			{keys.ShiftUp, core.ActionShiftUp},
			{keys.ShiftDown, core.ActionShiftDown},
			{keys.ShiftLeft, core.ActionShiftLeft},
			{keys.ShiftRight, core.ActionShiftRight},
			{keys.NextLevel, core.ActionNextLevel},
			{keys.PrevLevel, core.ActionPrevLevel},
			{keys.Restart, core.ActionRestart},
			{keys.Pause, core.ActionPause},
			{keys.Back, core.ActionBack},
		},
	}
}

// Keys returns the bindings, e.g. for a help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && action != core.ActionQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
