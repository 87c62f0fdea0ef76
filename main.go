package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/config"
	"github.com/milk9111/ptest/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file layered over the defaults")
	debug := flag.Bool("debug", false, "enable debug logging and the physics overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tracePath := flag.String("trace", "", "write a per-frame CSV trace to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Log.Level = "debug"
		cfg.Render.PhysicsDebug = true
	}
	if *tracePath != "" {
		cfg.Trace.Path = *tracePath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	if cfg.Render.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", zap.Error(err))
	}
}
