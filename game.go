package main

import (
	"fmt"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/config"
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/entity"
	"github.com/milk9111/ptest/ecs/system"
	"github.com/milk9111/ptest/gamemode"
	"github.com/milk9111/ptest/input"
	"github.com/milk9111/ptest/logging"
	"github.com/milk9111/ptest/prefabs"
)

type Game struct {
	cfg    *config.Config
	logger *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	render    *system.RenderSystem

	watcher   *prefabs.Watcher
	traceFile *os.File

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	g := &Game{cfg: cfg, logger: logger}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	g.world = w

	if _, err := entity.NewArena(w, nil); err != nil {
		return nil, err
	}

	modeSpec, err := prefabs.LoadGameModeSpec()
	if err != nil {
		return nil, err
	}
	registry, err := gamemode.RegistryFromSpec(modeSpec)
	if err != nil {
		return nil, err
	}
	mode := gamemode.New(registry, modeSpec, logging.Named(logger, "gamemode"))
	if _, _, err := mode.StartPlay(w); err != nil {
		return nil, err
	}

	inputSpec, err := prefabs.LoadInputSpec()
	if err != nil {
		return nil, err
	}
	mappings, err := input.NewMappings(inputSpec)
	if err != nil {
		return nil, err
	}
	g.input = system.NewInputSystem(input.NewEbitenDevice(), mappings)

	g.scheduler = ecs.NewScheduler()
	if cfg.HotReload.Enabled {
		watcher, err := prefabs.NewWatcher(cfg.HotReload.Dirs...)
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			g.watcher = watcher
			reload := system.NewTuningReloadSystem(watcher, logging.Named(logger, "reload"))
			reload.OnInputMappings = g.input.SetMappings
			reload.ClassTuning = mode.ClassTuning
			g.scheduler.Add(reload)
		}
	}

	g.scheduler.Add(g.input)
	g.scheduler.Add(system.NewCharacterTickSystem())
	g.scheduler.Add(system.NewControllerSystem())
	g.scheduler.Add(system.NewMovementSystem())
	g.scheduler.Add(system.NewPhysicsSystem())
	g.scheduler.Add(system.NewCameraBoomSystem())

	if cfg.Trace.Path != "" {
		f, err := os.Create(cfg.Trace.Path)
		if err != nil {
			return nil, fmt.Errorf("game: open trace: %w", err)
		}
		g.traceFile = f
		g.scheduler.Add(system.NewTraceSystem(f, logging.Named(logger, "trace")))
	}

	g.render = system.NewRenderSystem()
	g.render.Zoom = cfg.Render.Zoom
	g.render.PhysicsDebug = cfg.Render.PhysicsDebug
	g.pauseUI = NewPauseUI(g)

	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Advance(1 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	if g.cfg.Render.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	// The cursor moved while paused; that motion is not look input.
	g.input.ResetCursor()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the watcher and flushes the trace file.
func (g *Game) Close() error {
	var firstErr error
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			firstErr = err
		}
	}
	if g.traceFile != nil {
		if err := g.traceFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
