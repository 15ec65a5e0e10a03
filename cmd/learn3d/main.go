// Package main is the Learn3D viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/learn3d/internal/app"
	"github.com/Faultbox/learn3d/internal/config"
	"github.com/Faultbox/learn3d/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred cleanup runs before main exits.
func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Writing config: %v\n", err)
			return 1
		}
		fmt.Println("config written to", path)
		return 0
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Learn3D ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer a.Close()

	if path := config.ResolvedPath(); path != "" {
		if err := a.WatchConfig(ctx, path); err != nil {
			logger.Warn("config reload disabled", zap.Error(err))
		}
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
