package ui2d

// InputState holds the mouse state seen by widgets during one frame.
type InputState struct {
	MouseX      float32
	MouseY      float32
	MouseDeltaX float32
	MouseDeltaY float32

	MouseLeftDown     bool
	MouseLeftPressed  bool // went down this frame
	MouseLeftReleased bool // went up this frame

	ScrollY float32

	// consumed is set once a widget takes this frame's press.
	consumed bool

	prevMouseLeft bool
	prevMouseX    float32
	prevMouseY    float32
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseDeltaX = i.MouseX - i.prevMouseX
	i.MouseDeltaY = i.MouseY - i.prevMouseY

	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft

	i.prevMouseLeft = i.MouseLeftDown
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.ScrollY = 0
	i.consumed = false
}

// Consume marks this frame's press as handled so no other widget reacts to it.
func (i *InputState) Consume() {
	i.consumed = true
}

// Consumed reports whether a widget already took this frame's press.
func (i *InputState) Consumed() bool {
	return i.consumed
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(r Rect) bool {
	return r.Contains(i.MouseX, i.MouseY)
}
