package ui2d

import "fmt"

const (
	padding = 10
	spacing = 6
)

// Canvas is the drawing surface widgets emit to. Renderer implements it.
type Canvas interface {
	Begin()
	End()
	DrawRect(x, y, w, h float32, c Color)
	DrawRectOutline(x, y, w, h, thickness float32, c Color)
	DrawText(x, y float32, text string, scale float32, c Color)
	MeasureText(text string, scale float32) (float32, float32)
	Wrap(text string, maxWidth, scale float32) []string
	GetScreenSize() (int, int)
}

// Context lays out widgets inside panels and tracks the active widget.
type Context struct {
	canvas Canvas
	input  *InputState

	// TextScale multiplies every glyph; headings use twice this.
	TextScale float32

	activeWidget string
	hovered      bool

	panel *panelState

	cursorX float32
	cursorY float32
	rowH    float32
}

type panelState struct {
	ID string
	Rect
}

// NewContext creates a UI context drawing through a GL renderer.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return NewContextWithCanvas(r), nil
}

// NewContextWithCanvas creates a UI context on any canvas.
func NewContextWithCanvas(canvas Canvas) *Context {
	return &Context{
		canvas:    canvas,
		input:     &InputState{},
		TextScale: 1,
	}
}

// Close releases the renderer, if the canvas owns GL resources.
func (c *Context) Close() {
	if r, ok := c.canvas.(*Renderer); ok {
		r.Close()
	}
}

// Canvas returns the drawing surface for free-form drawing.
func (c *Context) Canvas() Canvas {
	return c.canvas
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	if r, ok := c.canvas.(*Renderer); ok {
		r.Resize(width, height)
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.hovered = false
	c.canvas.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.activeWidget != "" && !c.input.MouseLeftDown {
		c.activeWidget = ""
	}
	c.canvas.End()
	c.input.EndFrame()
}

// Hovered reports whether the mouse is over any panel drawn this frame.
// The viewport uses it to ignore drags that belong to the UI.
func (c *Context) Hovered() bool {
	return c.hovered
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.canvas.GetScreenSize()
	return float32(w), float32(h)
}

// BeginPanel starts a panel; widgets flow top to bottom inside it.
func (c *Context) BeginPanel(id string, r Rect, title string) {
	c.panel = &panelState{ID: id, Rect: r}
	if r.Contains(c.input.MouseX, c.input.MouseY) {
		c.hovered = true
	}

	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, ColorPanelBg)
	c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, ColorPanelBorder)

	c.cursorX = r.X + padding
	c.cursorY = r.Y + padding
	c.rowH = 0

	if title != "" {
		c.Heading(title)
	}
}

// EndPanel ends the current panel and returns the height its content used.
func (c *Context) EndPanel() float32 {
	if c.panel == nil {
		return 0
	}
	used := c.cursorY + c.rowH + padding - c.panel.Y
	c.panel = nil
	return used
}

// ContentWidth is the usable width of the current panel.
func (c *Context) ContentWidth() float32 {
	if c.panel == nil {
		return 0
	}
	return c.panel.W - 2*padding
}

// Columns returns the width of one of n equal columns across the panel.
func (c *Context) Columns(n int) float32 {
	if n < 1 {
		n = 1
	}
	return (c.ContentWidth() - float32(n-1)*spacing) / float32(n)
}

func (c *Context) newline() {
	c.cursorX = c.panel.X + padding
	if c.rowH > 0 {
		c.cursorY += c.rowH + spacing
	}
	c.rowH = 0
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.panel == nil {
		return
	}
	c.newline()
	c.rowH = height
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	if c.panel == nil {
		return
	}
	c.newline()
	c.cursorY += height
}

// Separator draws a horizontal rule across the panel.
func (c *Context) Separator() {
	if c.panel == nil {
		return
	}
	c.newline()
	c.canvas.DrawRect(c.cursorX, c.cursorY, c.ContentWidth(), 1, ColorPanelBorder)
	c.cursorY += 1 + spacing
}

func (c *Context) lineHeight(scale float32) float32 {
	_, h := c.canvas.MeasureText("A", scale)
	return h
}

// Text draws wrapped text as its own block.
func (c *Context) Text(text string, scale float32, color Color) {
	c.text(text, scale, color, false)
}

// TextCentered draws wrapped text centered in the panel.
func (c *Context) TextCentered(text string, scale float32, color Color) {
	c.text(text, scale, color, true)
}

func (c *Context) text(text string, scale float32, color Color, centered bool) {
	if c.panel == nil {
		return
	}
	c.newline()

	lh := c.lineHeight(scale)
	lines := c.canvas.Wrap(text, c.ContentWidth(), scale)
	for i, line := range lines {
		x := c.cursorX
		if centered {
			w, _ := c.canvas.MeasureText(line, scale)
			x += (c.ContentWidth() - w) / 2
		}
		c.canvas.DrawText(x, c.cursorY+float32(i)*lh, line, scale, color)
	}
	c.rowH = float32(len(lines)) * lh
}

// Heading draws a title line at double size.
func (c *Context) Heading(text string) {
	c.Text(text, 2*c.TextScale, ColorText)
}

// Paragraph draws dimmed body text.
func (c *Context) Paragraph(text string) {
	c.Text(text, c.TextScale, ColorTextDim)
}

// Label draws body text inline on the current row.
func (c *Context) Label(text string, color Color) {
	if c.panel == nil {
		return
	}
	w, h := c.canvas.MeasureText(text, c.TextScale)
	y := c.cursorY
	if c.rowH > h {
		y += (c.rowH - h) / 2
	} else {
		c.rowH = h
	}
	c.canvas.DrawText(c.cursorX, y, text, c.TextScale, color)
	c.cursorX += w + spacing
}

// Bullets draws a list with square markers; wrapped lines hang under the text.
func (c *Context) Bullets(items []string, marker Color) {
	if c.panel == nil {
		return
	}
	scale := c.TextScale
	lh := c.lineHeight(scale)
	indent := lh
	dot := lh / 3

	for _, item := range items {
		c.newline()
		c.canvas.DrawRect(c.cursorX+(indent-dot)/2, c.cursorY+(lh-dot)/2, dot, dot, marker)
		lines := c.canvas.Wrap(item, c.ContentWidth()-indent, scale)
		for i, line := range lines {
			c.canvas.DrawText(c.cursorX+indent, c.cursorY+float32(i)*lh, line, scale, ColorText)
		}
		c.rowH = float32(len(lines)) * lh
	}
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	return c.button(id, width, label, false, true)
}

// ToggleButton draws a button that shows a selected state.
func (c *Context) ToggleButton(id string, width float32, label string, selected bool) bool {
	return c.button(id, width, label, selected, true)
}

// ButtonDisabled draws a button that cannot be clicked.
func (c *Context) ButtonDisabled(id string, width float32, label string) {
	c.button(id, width, label, false, false)
}

func (c *Context) button(id string, width float32, label string, selected, enabled bool) bool {
	if c.panel == nil {
		return false
	}

	h := c.rowH
	if h == 0 {
		h = c.lineHeight(c.TextScale) + 16
		c.rowH = h
	}
	if width == 0 {
		width = c.panel.X + c.panel.W - padding - c.cursorX
	}

	fullID := c.panel.ID + "/" + id
	rect := Rect{c.cursorX, c.cursorY, width, h}
	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)

	clicked := false
	if enabled && hovered && c.input.MouseLeftPressed && !c.input.Consumed() {
		c.activeWidget = fullID
		c.input.Consume()
		clicked = true
	}

	bg, border, text := ColorButtonNormal, ColorPanelBorder, ColorText
	switch {
	case !enabled:
		bg, border, text = bg.Darken(0.3), border.Darken(0.3), ColorTextDim
	case selected || c.activeWidget == fullID:
		bg, border = ColorButtonActive, ColorHighlight
	case hovered:
		bg = ColorButtonHover
	}

	c.canvas.DrawRect(rect.X, rect.Y, rect.W, rect.H, bg)
	c.canvas.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, border)

	tw, th := c.canvas.MeasureText(label, c.TextScale)
	c.canvas.DrawText(rect.X+(rect.W-tw)/2, rect.Y+(rect.H-th)/2, label, c.TextScale, text)

	c.cursorX += width + spacing
	return clicked
}

// Checkbox draws a checkbox and returns the possibly toggled value.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.panel == nil {
		return checked
	}

	lh := c.lineHeight(c.TextScale)
	box := lh + 4
	c.rowH = max(c.rowH, box)

	rect := Rect{c.cursorX, c.cursorY, box, box}
	tw, _ := c.canvas.MeasureText(label, c.TextScale)
	hit := Rect{rect.X, rect.Y, box + spacing + tw, box}

	hovered := hit.Contains(c.input.MouseX, c.input.MouseY)
	if hovered && c.input.MouseLeftPressed && !c.input.Consumed() {
		c.input.Consume()
		checked = !checked
	}

	bg := ColorButtonNormal
	if hovered {
		bg = ColorButtonHover
	}
	c.canvas.DrawRect(rect.X, rect.Y, box, box, bg)
	c.canvas.DrawRectOutline(rect.X, rect.Y, box, box, 1, ColorPanelBorder)
	if checked {
		c.canvas.DrawRect(rect.X+4, rect.Y+4, box-8, box-8, ColorPrimary)
	}
	c.canvas.DrawText(rect.X+box+spacing, rect.Y+2, label, c.TextScale, ColorText)

	c.cursorX += hit.W + spacing
	return checked
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{r.X + d, r.Y + d, max(r.W-2*d, 0), max(r.H-2*d, 0)}
}
