// Package app wires the window, the renderers and the screens into the
// viewer's frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/anim"
	"github.com/Faultbox/learn3d/internal/app/states"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/debug"
	"github.com/Faultbox/learn3d/internal/engine/framebuffer"
	"github.com/Faultbox/learn3d/internal/engine/input"
	"github.com/Faultbox/learn3d/internal/engine/mesh"
	"github.com/Faultbox/learn3d/internal/engine/render"
	"github.com/Faultbox/learn3d/internal/engine/ui2d"
	"github.com/Faultbox/learn3d/internal/engine/window"
	"github.com/Faultbox/learn3d/internal/logger"
	"github.com/Faultbox/learn3d/internal/viewer"
)

// Title is the window title.
const Title = "Learn3D"

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	fb     *framebuffer.Framebuffer
	scene  *render.Renderer
	ui     *ui2d.Context
	ticker *anim.Ticker
	shots  *debug.ScreenshotCapture

	states    *states.Manager
	env       *states.Env
	reloads   <-chan *config.Config
	wireframe bool

	log *zap.Logger
}

// New creates the window and every GPU resource. On failure everything
// created so far is released.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		input:  input.New(),
		ticker: anim.NewTicker(cfg.Viewer.AnimationSpeed),
		shots:  debug.NewScreenshotCapture(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
		states: states.NewManager(),
		log:    logger.Named("app"),
	}
	a.ticker.SetPaused(cfg.Viewer.Paused)

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("subject", cfg.Viewer.Subject),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	a.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	if cfg.Graphics.MSAA > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	screen := a.screen()
	a.fb, err = framebuffer.New(int32(screen.Width*screen.Scale), int32(screen.Height*screen.Scale))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.scene, err = render.New(mesh.NewCache())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating scene renderer: %w", err)
	}
	a.scene.SetOutlines(cfg.Viewer.Outlines)

	a.ui, err = ui2d.NewContext(int(screen.Width), int(screen.Height))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating ui: %w", err)
	}
	a.ui.TextScale = cfg.Graphics.UIScale

	a.env = &states.Env{
		Config:  cfg,
		Page:    viewer.NewPage(),
		Manager: a.states,
		UI:      a.ui,
		Keys:    input.DefaultBindings(),
		Scene:   a.scene,
		Target:  a.fb,
		Ticker:  a.ticker,
		Screen:  screen,
		Log:     logger.Named("states"),
	}

	landing := states.NewLandingState(a.env)
	a.states.Change(landing)
	if cfg.Viewer.StartInDemo {
		landing.OpenSubject(cfg.Viewer.Subject)
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// screen reads the window size and HiDPI scale.
func (a *App) screen() states.Screen {
	ww, wh := a.window.GetSize()
	dw, _ := a.window.DrawableSize()
	scale := float32(1)
	if ww > 0 {
		scale = float32(dw) / float32(ww)
	}
	return states.Screen{Width: float32(ww), Height: float32(wh), Scale: scale}
}

// WatchConfig reloads path on every change until ctx is done.
func (a *App) WatchConfig(ctx context.Context, path string) error {
	ch, err := config.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	a.reloads = ch
	a.log.Info("watching config", zap.String("path", path))
	return nil
}

// Run starts the frame loop and returns when the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			a.running = false
			continue
		case cfg, ok := <-a.reloads:
			if ok {
				a.applyConfig(cfg)
			} else {
				a.reloads = nil
			}
		default:
		}

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Update
		clock := a.ticker.Sample(frameStart)
		if err := a.states.Update(clock); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		dw, dh := a.window.DrawableSize()
		gl.Viewport(0, 0, int32(dw), int32(dh))
		bg := ui2d.ColorBackground
		gl.ClearColor(bg.R, bg.G, bg.B, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		if err := a.states.Render(); err != nil {
			a.log.Error("render error", zap.Error(err))
		}

		// 4. Present
		a.window.SwapBuffers()
		a.limitFrame(frameStart)

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.scene.Stats()
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int("triangles", stats.Triangles),
				zap.Int("uploaded_shapes", a.scene.Uploaded()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) limitFrame(start time.Time) {
	if a.cfg.Graphics.FPSLimit <= 0 {
		return
	}
	budget := time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	if spent := time.Since(start); spent < budget {
		time.Sleep(budget - spent)
	}
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.resize()
		return
	case input.EventMouseMove:
		in := a.ui.Input()
		in.MouseX, in.MouseY = float32(ev.MouseX), float32(ev.MouseY)
	case input.EventMouseDown, input.EventMouseUp:
		in := a.ui.Input()
		in.MouseX, in.MouseY = float32(ev.MouseX), float32(ev.MouseY)
		if ev.Button == sdl.BUTTON_LEFT {
			in.MouseLeftDown = ev.Type == input.EventMouseDown
		}
	case input.EventMouseWheel:
		a.ui.Input().ScrollY += ev.Wheel
	}

	switch a.env.Keys.Lookup(ev) {
	case input.ActionQuit:
		a.running = false
		return
	case input.ActionPause:
		paused := a.ticker.TogglePause()
		a.log.Debug("animation paused", zap.Bool("paused", paused))
		return
	case input.ActionScreenshot:
		a.screenshot()
		return
	case input.ActionWireframe:
		a.wireframe = !a.wireframe
		a.scene.SetWireframe(a.wireframe)
		return
	case input.ActionStats:
		a.cfg.Graphics.ShowStats = !a.cfg.Graphics.ShowStats
		return
	}

	if err := a.states.HandleInput(ev); err != nil {
		a.log.Error("input error", zap.Error(err))
	}
}

func (a *App) resize() {
	screen := a.screen()
	a.env.Screen = screen
	a.ui.Resize(int(screen.Width), int(screen.Height))
	a.log.Debug("window resized",
		zap.Float32("width", screen.Width),
		zap.Float32("height", screen.Height),
		zap.Float32("scale", screen.Scale),
	)
}

func (a *App) screenshot() {
	path, err := a.shots.Capture(a.fb.Image(), a.states.Label())
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.env != nil {
		if v := a.env.Page.Viewer(); v != nil {
			v.Close()
		}
		a.env.Page.Hero().Close()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.fb != nil {
		a.fb.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
