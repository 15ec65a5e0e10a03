package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/learn3d/internal/config"
)

func TestChanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   []string
	}{
		{"identical", func(*config.Config) {}, nil},
		{"log level", func(c *config.Config) { c.Logging.Level = "debug" }, []string{"logging.level"}},
		{"speed and pause", func(c *config.Config) {
			c.Viewer.AnimationSpeed = 2
			c.Viewer.Paused = true
		}, []string{"viewer.animation_speed", "viewer.paused"}},
		{"camera", func(c *config.Config) { c.Camera.InvertY = true }, []string{"camera"}},
		{"screenshots", func(c *config.Config) { c.Screenshots.Dir = "/tmp" }, []string{"screenshots"}},
		{"restart only", func(c *config.Config) {
			c.Graphics.Width = 640
			c.Graphics.Fullscreen = true
			c.Graphics.MSAA = 8
			c.Logging.LogFile = "x.log"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := config.Default()
			tt.mutate(next)
			assert.Equal(t, tt.want, Changes(config.Default(), next))
		})
	}
}
