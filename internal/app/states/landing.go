package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
)

const (
	margin   = 20
	cardGap  = 16
	heroMaxW = 640
)

// LandingState is the hero screen: the floating background, the title block
// and the subject cards.
type LandingState struct {
	env  *Env
	view *StageView

	// Panel heights measured on the previous frame.
	heights map[string]float32
}

// NewLandingState creates the landing screen.
func NewLandingState(env *Env) *LandingState {
	return &LandingState{
		env:     env,
		view:    NewStageView(catalog.Hero().Stage, env.Config.Camera),
		heights: make(map[string]float32),
	}
}

// Enter is called when entering this state.
func (s *LandingState) Enter() error {
	s.env.Page.HideDemo()
	s.env.Log.Debug("landing shown")
	return nil
}

// Exit is called when leaving this state.
func (s *LandingState) Exit() error {
	return nil
}

// Update advances the background animation.
func (s *LandingState) Update(c anim.Clock) error {
	s.env.Page.Hero().Tick(c)
	return nil
}

// Label names the screen for screenshots.
func (s *LandingState) Label() string {
	return "landing"
}

// HandleInput opens a subject on its number key. The hero camera is fixed.
func (s *LandingState) HandleInput(event input.Event) error {
	if slot, ok := s.env.Keys.Lookup(event).Subject(); ok {
		keys := catalog.SubjectKeys()
		if slot < len(keys) {
			s.OpenSubject(keys[slot])
		}
	}
	return nil
}

// OpenDemo switches to the demo with the geometry viewer.
func (s *LandingState) OpenDemo() {
	s.env.Page.ShowDemo()
	s.env.Manager.Change(NewDemoState(s.env))
}

// OpenSubject switches to the demo with the viewer for key.
func (s *LandingState) OpenSubject(key string) {
	if !s.env.Page.SelectSubject(key) {
		s.env.Log.Warn("unknown subject", zap.String("subject", key))
		return
	}
	s.env.Manager.Change(NewDemoState(s.env))
}

func (s *LandingState) height(id string, fallback float32) float32 {
	if h, ok := s.heights[id]; ok && h > 0 {
		return h
	}
	return fallback
}

// Render draws the background full screen with the panels over it.
func (s *LandingState) Render() error {
	sw, sh := s.env.Screen.Width, s.env.Screen.Height
	s.env.DrawViewport(ui2d.Rect{W: sw, H: sh}, s.env.Page.Hero().Root(), s.view)

	ctx := s.env.UI
	scale := ctx.TextScale
	ctx.Begin()
	defer ctx.End()

	heroW := min(sw-2*margin, heroMaxW)
	hero := ui2d.Rect{X: (sw - heroW) / 2, Y: margin * 2, W: heroW, H: s.height("hero", 260)}
	ctx.BeginPanel("hero", hero, "")
	ctx.TextCentered(catalog.HeroTitle, 3*scale, ui2d.ColorText)
	ctx.TextCentered(catalog.HeroSubtitle, 3*scale, ui2d.ColorPrimary)
	ctx.Spacer(4)
	ctx.TextCentered(catalog.HeroTagline, scale, ui2d.ColorTextDim)
	ctx.TextCentered(catalog.HeroSubjects, scale, ui2d.ColorHighlight)
	ctx.Spacer(4)
	ctx.Row(0)
	if ctx.Button("demo", 0, catalog.HeroAction) {
		s.OpenDemo()
	}
	ctx.Spacer(2)
	ctx.Row(0)
	for _, h := range catalog.HeroHighlights {
		ctx.Label("* "+h, ui2d.ColorAccent)
	}
	s.heights["hero"] = ctx.EndPanel()

	reg := catalog.Hero()
	intro := ui2d.Rect{X: margin, Y: hero.Y + hero.H + margin, W: sw - 2*margin, H: s.height("intro", 70)}
	ctx.BeginPanel("intro", intro, reg.Title)
	ctx.Paragraph(reg.Tagline)
	s.heights["intro"] = ctx.EndPanel()

	subjects := catalog.Subjects()
	cardW := (intro.W - float32(len(subjects)-1)*cardGap) / float32(len(subjects))
	cardH := s.height("cards", 220)
	y := intro.Y + intro.H + cardGap
	var tallest float32
	for i, subj := range subjects {
		card := ui2d.Rect{X: intro.X + float32(i)*(cardW+cardGap), Y: y, W: cardW, H: cardH}
		ctx.BeginPanel("card-"+subj.Key, card, subj.Title)
		ctx.Paragraph(subj.Description)
		ctx.Bullets(subj.Features, ui2d.ColorPrimary)
		ctx.Spacer(4)
		ctx.Row(0)
		if subj.Available {
			if ctx.Button("open", 0, subj.Action()) {
				s.OpenSubject(subj.Key)
			}
		} else {
			ctx.ButtonDisabled("open", 0, subj.Action())
		}
		tallest = max(tallest, ctx.EndPanel())
	}
	s.heights["cards"] = tallest

	return nil
}
