package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file (.yaml, .yml or .toml)")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagSubject     = flag.String("subject", "", "Subject to open: geometry, biology or history")
	flagDemo        = flag.Bool("demo", false, "Skip the landing page and open the demo")
	flagSpeed       = flag.Float64("speed", 0, "Animation speed multiplier")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, empty when not requested.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowStats = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSubject != "" {
		cfg.Viewer.Subject = *flagSubject
		cfg.Viewer.StartInDemo = true
	}
	if *flagDemo {
		cfg.Viewer.StartInDemo = true
	}
	if *flagSpeed > 0 {
		cfg.Viewer.AnimationSpeed = *flagSpeed
	}
}
