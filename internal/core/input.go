package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorUp           // K, Up arrow - move the row cursor up
	ActionCursorDown         // J, Down arrow - move the row cursor down
	ActionCursorLeft         // H, Left arrow - move the column cursor left
	ActionCursorRight        // L, Right arrow - move the column cursor right
	ActionShiftUp            // W - shift the selected column up
	ActionShiftDown          // S - shift the selected column down
	ActionShiftLeft          // A - shift the selected row left
	ActionShiftRight         // D - shift the selected row right
	ActionNextLevel          // ] - next layout
	ActionPrevLevel          // [ - previous layout
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - reload the layout or deal a new board
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionCursorUp:    "CursorUp",
	ActionCursorDown:  "CursorDown",
	ActionCursorLeft:  "CursorLeft",
	ActionCursorRight: "CursorRight",
	ActionShiftUp:     "ShiftUp",
	ActionShiftDown:   "ShiftDown",
	ActionShiftLeft:   "ShiftLeft",
	ActionShiftRight:  "ShiftRight",
	ActionNextLevel:   "NextLevel",
	ActionPrevLevel:   "PrevLevel",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
