package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionPrev
	ActionNext
	ActionSubject1
	ActionSubject2
	ActionSubject3
	ActionBack
	ActionScreenshot
	ActionWireframe
	ActionStats
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionPause:      "pause",
	ActionPrev:       "prev",
	ActionNext:       "next",
	ActionSubject1:   "subject-1",
	ActionSubject2:   "subject-2",
	ActionSubject3:   "subject-3",
	ActionBack:       "back",
	ActionScreenshot: "screenshot",
	ActionWireframe:  "wireframe",
	ActionStats:      "stats",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Subject returns the zero-based subject slot for the subject actions.
func (a Action) Subject() (int, bool) {
	switch a {
	case ActionSubject1, ActionSubject2, ActionSubject3:
		return int(a - ActionSubject1), true
	}
	return 0, false
}

// Bindings maps keys to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings returns the viewer's keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_ESCAPE:    ActionQuit,
		sdl.SCANCODE_SPACE:     ActionPause,
		sdl.SCANCODE_LEFT:      ActionPrev,
		sdl.SCANCODE_RIGHT:     ActionNext,
		sdl.SCANCODE_1:         ActionSubject1,
		sdl.SCANCODE_2:         ActionSubject2,
		sdl.SCANCODE_3:         ActionSubject3,
		sdl.SCANCODE_BACKSPACE: ActionBack,
		sdl.SCANCODE_F12:       ActionScreenshot,
		sdl.SCANCODE_F2:        ActionWireframe,
		sdl.SCANCODE_F3:        ActionStats,
	}
}

// Lookup returns the action for a key-down event. Key repeats and other
// event types map to ActionNone.
func (b Bindings) Lookup(e Event) Action {
	if e.Type != EventKeyDown || e.Repeat {
		return ActionNone
	}
	return b[e.Key]
}
