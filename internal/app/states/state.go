// Package states implements the viewer's screens and the manager that
// switches between them.
package states

import (
	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/engine/input"
)

// State is one screen of the viewer (landing, demo).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame with the animation clock.
	Update(c anim.Clock) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleInput processes input events.
	HandleInput(event input.Event) error
}

// Labeler is implemented by states that name what they show, used for
// screenshot file names.
type Labeler interface {
	Label() string
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the start of the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates the current state.
func (m *Manager) Update(c anim.Clock) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(c)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(event input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(event)
	}
	return nil
}

// Label returns the current state's label, or "viewer" when it has none.
func (m *Manager) Label() string {
	if l, ok := m.current.(Labeler); ok {
		return l.Label()
	}
	return "viewer"
}
