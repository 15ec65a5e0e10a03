package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
	"github.com/Faultbox/learn3d/internal/viewer"
)

// Demo section copy.
const (
	DemoHeading = "Interactive Demo"
	DemoCopy    = "Experience the power of 3D learning with our interactive visualization tools. This is just a preview of what's possible with AR/VR education."
	TipsHeading = "Learning Tips"
)

const modelColumns = 3

// DemoState is the demo section: subject navigation, the viewport and the
// selector with its info panel.
type DemoState struct {
	env *Env

	// bound is the viewer the stage view was built for.
	bound *viewer.Viewer
	view  *StageView

	navH float32
}

// NewDemoState creates the demo screen.
func NewDemoState(env *Env) *DemoState {
	return &DemoState{env: env, navH: 110}
}

// Enter is called when entering this state.
func (s *DemoState) Enter() error {
	if s.env.Page.Viewer() == nil {
		s.env.Page.ShowDemo()
	}
	s.sync()
	return nil
}

// Exit is called when leaving this state.
func (s *DemoState) Exit() error {
	return nil
}

// sync rebuilds the stage view when the page switched subject.
func (s *DemoState) sync() *viewer.Viewer {
	v := s.env.Page.Viewer()
	if v == nil || v == s.bound {
		return v
	}
	s.bound = v
	s.view = NewStageView(v.Registry().Stage, s.env.Config.Camera)

	log := s.env.Log.With(zap.String("subject", s.env.Page.Subject))
	v.OnChange(func(index int, info viewer.InfoPanel) {
		log.Debug("model selected", zap.Int("index", index), zap.String("model", info.Title))
	})
	log.Info("subject opened", zap.String("model", v.Info().Title))
	return v
}

// Viewer returns the active subject viewer.
func (s *DemoState) Viewer() *viewer.Viewer {
	return s.sync()
}

// View returns the camera and rig of the active subject.
func (s *DemoState) View() *StageView {
	s.sync()
	return s.view
}

// Reconfigure applies new camera settings after a config reload.
func (s *DemoState) Reconfigure(cfg *config.Config) {
	if s.view != nil {
		s.view.Configure(cfg.Camera)
	}
}

// Update advances the active model's animations.
func (s *DemoState) Update(c anim.Clock) error {
	if v := s.sync(); v != nil {
		v.Tick(c)
	}
	return nil
}

// Label names the screen for screenshots.
func (s *DemoState) Label() string {
	v := s.sync()
	if v == nil {
		return "demo"
	}
	return s.env.Page.Subject + " " + v.Info().Title
}

// SelectSubject switches the viewer to another subject.
func (s *DemoState) SelectSubject(key string) {
	if s.env.Page.SelectSubject(key) {
		s.sync()
	}
}

// Back returns to the landing screen.
func (s *DemoState) Back() {
	s.env.Manager.Change(NewLandingState(s.env))
}

// HandleInput maps navigation keys, then gives the event to the orbit
// controls.
func (s *DemoState) HandleInput(event input.Event) error {
	v := s.sync()
	if v == nil {
		return nil
	}

	action := s.env.Keys.Lookup(event)
	switch action {
	case input.ActionPrev:
		v.Prev()
		return nil
	case input.ActionNext:
		v.Next()
		return nil
	case input.ActionBack:
		s.Back()
		return nil
	}
	if slot, ok := action.Subject(); ok {
		if keys := catalog.SubjectKeys(); slot < len(keys) {
			s.SelectSubject(keys[slot])
		}
		return nil
	}

	s.view.HandleEvent(event, s.env.UI.Hovered())
	return nil
}

// Layout splits the screen into the navigation bar, the square viewport and
// the info panel.
func Layout(width, height, navH float32) (nav, viewport, info ui2d.Rect) {
	nav = ui2d.Rect{X: margin, Y: margin, W: max(width-2*margin, 0), H: navH}

	top := nav.Y + nav.H + margin
	avail := max(height-top-margin, 0)
	side := min(avail, max((width-3*margin)*0.55, 0))
	viewport = ui2d.Rect{X: margin, Y: top, W: side, H: side}

	x := viewport.X + viewport.W + margin
	info = ui2d.Rect{X: x, Y: top, W: max(width-x-margin, 0), H: avail}
	return nav, viewport, info
}

// Render draws the viewport and the UI around it.
func (s *DemoState) Render() error {
	v := s.sync()
	if v == nil {
		return nil
	}

	nav, viewport, infoRect := Layout(s.env.Screen.Width, s.env.Screen.Height, s.navH)
	s.env.DrawViewport(viewport, v.Root(), s.view)

	ctx := s.env.UI
	ctx.Begin()
	defer ctx.End()

	s.drawNav(nav)
	s.drawInfo(infoRect, v)
	return nil
}

func (s *DemoState) drawNav(r ui2d.Rect) {
	ctx := s.env.UI
	ctx.BeginPanel("nav", r, DemoHeading)
	ctx.Paragraph(DemoCopy)
	ctx.Spacer(2)
	ctx.Row(0)

	subjects := catalog.Subjects()
	w := ctx.Columns(len(subjects) + 1)
	for _, subj := range subjects {
		if ctx.ToggleButton(subj.Key, w, subj.Title, subj.Key == s.env.Page.Subject) {
			s.SelectSubject(subj.Key)
		}
	}
	if ctx.Button("back", w, "Back to Home") {
		s.Back()
	}
	s.navH = max(ctx.EndPanel(), 60)
}

func (s *DemoState) drawInfo(r ui2d.Rect, v *viewer.Viewer) {
	ctx := s.env.UI
	reg := v.Registry()

	ctx.BeginPanel("info", r, reg.Title)
	ctx.Paragraph(reg.Tagline)
	ctx.Spacer(4)
	ctx.Text(reg.SelectLabel, ctx.TextScale, ui2d.ColorPrimary)

	w := ctx.Columns(modelColumns)
	for i, name := range reg.Names() {
		if i%modelColumns == 0 {
			ctx.Row(0)
		}
		if ctx.ToggleButton(fmt.Sprintf("model-%d", i), w, name, i == v.Selected()) {
			v.Select(i)
		}
	}

	info := v.Info()
	ctx.Separator()
	ctx.Heading(info.Title)
	if info.Period != "" {
		ctx.Text(info.Period, ctx.TextScale, ui2d.ColorAccent)
	}
	ctx.Paragraph(info.Description)

	if len(info.Facts) > 0 {
		heading := info.FactsHeading
		if heading == "" {
			heading = "Properties"
		}
		ctx.Spacer(2)
		ctx.Text(heading, ctx.TextScale, ui2d.ColorHighlight)
		ctx.Bullets(info.Facts, ui2d.ColorPrimary)
	}
	if len(info.Tips) > 0 {
		ctx.Spacer(2)
		ctx.Text(TipsHeading, ctx.TextScale, ui2d.ColorHighlight)
		ctx.Bullets(info.Tips, ui2d.ColorSecondary)
	}

	ctx.Separator()
	ctx.Row(0)
	paused := s.env.Ticker.Paused()
	if next := ctx.Checkbox("pause", "Pause animation", paused); next != paused {
		s.env.Ticker.SetPaused(next)
	}
	if s.env.Config.Graphics.ShowStats {
		st := v.Root().Stats()
		ctx.Label(fmt.Sprintf("%d nodes, %d meshes, %d animated", st.Nodes, st.Meshes, st.Animated), ui2d.ColorTextDim)
	}
	ctx.EndPanel()
}
