package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/engine/debug"
	"github.com/Faultbox/learn3d/internal/logger"
)

// Setting names reported by Changes.
const (
	settingLogLevel    = "logging.level"
	settingSpeed       = "viewer.animation_speed"
	settingPaused      = "viewer.paused"
	settingOutlines    = "viewer.outlines"
	settingVSync       = "graphics.vsync"
	settingUIScale     = "graphics.ui_scale"
	settingFPSLimit    = "graphics.fps_limit"
	settingShowStats   = "graphics.show_stats"
	settingCamera      = "camera"
	settingScreenshots = "screenshots"
)

// Changes lists the live-reloadable settings that differ between two
// configs. Window size, fullscreen, MSAA and the log file need a restart and
// are not reported.
func Changes(old, next *config.Config) []string {
	var out []string
	if old.Logging.Level != next.Logging.Level {
		out = append(out, settingLogLevel)
	}
	if old.Viewer.AnimationSpeed != next.Viewer.AnimationSpeed {
		out = append(out, settingSpeed)
	}
	if old.Viewer.Paused != next.Viewer.Paused {
		out = append(out, settingPaused)
	}
	if old.Viewer.Outlines != next.Viewer.Outlines {
		out = append(out, settingOutlines)
	}
	if old.Graphics.VSync != next.Graphics.VSync {
		out = append(out, settingVSync)
	}
	if old.Graphics.UIScale != next.Graphics.UIScale {
		out = append(out, settingUIScale)
	}
	if old.Graphics.FPSLimit != next.Graphics.FPSLimit {
		out = append(out, settingFPSLimit)
	}
	if old.Graphics.ShowStats != next.Graphics.ShowStats {
		out = append(out, settingShowStats)
	}
	if old.Camera != next.Camera {
		out = append(out, settingCamera)
	}
	if old.Screenshots != next.Screenshots {
		out = append(out, settingScreenshots)
	}
	return out
}

// reconfigurer is implemented by states that hold settings of their own.
type reconfigurer interface {
	Reconfigure(cfg *config.Config)
}

// applyConfig takes over next as the live config.
func (a *App) applyConfig(next *config.Config) {
	changed := Changes(a.cfg, next)
	if len(changed) == 0 {
		return
	}

	for _, name := range changed {
		switch name {
		case settingLogLevel:
			logger.SetLevel(next.Logging.Level)
		case settingSpeed:
			a.ticker.SetSpeed(next.Viewer.AnimationSpeed)
		case settingPaused:
			a.ticker.SetPaused(next.Viewer.Paused)
		case settingOutlines:
			a.scene.SetOutlines(next.Viewer.Outlines)
		case settingVSync:
			a.window.SetVSync(next.Graphics.VSync)
		case settingUIScale:
			a.ui.TextScale = next.Graphics.UIScale
		case settingScreenshots:
			a.shots = debug.NewScreenshotCapture(next.Screenshots.Dir, next.Screenshots.Prefix)
		}
	}

	// Restart-only settings keep their running values.
	next.Graphics.Width, next.Graphics.Height = a.cfg.Graphics.Width, a.cfg.Graphics.Height
	next.Graphics.Fullscreen = a.cfg.Graphics.Fullscreen
	next.Graphics.MSAA = a.cfg.Graphics.MSAA
	next.Logging.LogFile = a.cfg.Logging.LogFile

	a.cfg = next
	a.env.Config = next
	if r, ok := a.states.Current().(reconfigurer); ok {
		r.Reconfigure(next)
	}

	a.log.Info("config reloaded", zap.Strings("changed", changed))
}
