package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
)

// RenderSystem draws a top-down debug view centred on the player: walls,
// capsules with their facing, and each camera boom.
type RenderSystem struct {
	Zoom float64
	// PhysicsDebug overlays the physics shapes.
	PhysicsDebug bool

	player         ecs.Entity
	cx, cy         float64
	focusX, focusY float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Zoom: 0.25}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if !r.player.Valid() || !w.IsAlive(r.player) || !ecs.Has(w, r.player, component.PlayerTagComponent.Kind()) {
		r.player, _ = w.First(component.PlayerTagComponent.Kind())
	}

	bounds := screen.Bounds()
	r.cx = float64(bounds.Dx()) / 2
	r.cy = float64(bounds.Dy()) / 2
	r.focusX, r.focusY = 0, 0
	if t, ok := ecs.Get(w, r.player, component.TransformComponent.Kind()); ok {
		r.focusX, r.focusY = t.X, t.Y
	}
	project := r.project

	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		ax, ay := project(wall.AX, wall.AY)
		bx, by := project(wall.BX, wall.BY)
		width := float32(math.Max(wall.Thickness*r.Zoom, 1))
		vector.StrokeLine(screen, ax, ay, bx, by, width, colornames.Slategray, true)
	})

	for _, e := range w.Query(component.TransformComponent.Kind(), component.CapsuleComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		capsule, _ := ecs.Get(w, e, component.CapsuleComponent.Kind())

		px, py := project(t.X, t.Y)
		radius := float32(capsule.Radius * r.Zoom)
		body := color.Color(colornames.Steelblue)
		if state, ok := ecs.Get(w, e, component.CharacterControlStateComponent.Kind()); ok && state.IsAiming {
			body = colornames.Orange
		}
		vector.DrawFilledCircle(screen, px, py, radius, body, true)

		yaw := t.Yaw * math.Pi / 180
		fx, fy := project(t.X+math.Cos(yaw)*capsule.Radius*1.5, t.Y+math.Sin(yaw)*capsule.Radius*1.5)
		vector.StrokeLine(screen, px, py, fx, fy, 2, colornames.White, true)

		boom, ok := ecs.Get(w, e, component.CameraBoomComponent.Kind())
		if !ok || boom.Camera == nil {
			continue
		}
		camX, camY := project(boom.Camera.Position.X(), boom.Camera.Position.Y())
		vector.StrokeLine(screen, px, py, camX, camY, 1, colornames.Lightgrey, true)
		vector.StrokeCircle(screen, camX, camY, 4, 1, colornames.Yellow, true)
	}

	if r.PhysicsDebug {
		DrawPhysicsDebug(w.PhysicsWorld().Space(), screen, r.project)
	}

	r.drawHUD(w, screen)
}

// project maps world X (forward) to screen up and world Y (right) to screen
// right.
func (r *RenderSystem) project(x, y float64) (float32, float32) {
	return float32(r.cx + (y-r.focusY)*r.Zoom), float32(r.cy - (x-r.focusX)*r.Zoom)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	state, ok := ecs.Get(w, r.player, component.CharacterControlStateComponent.Kind())
	if !ok {
		return
	}
	move, _ := ecs.Get(w, r.player, component.CharacterMovementComponent.Kind())

	maxSpeed, speed := 0.0, 0.0
	if move != nil {
		maxSpeed = move.MaxWalkSpeed
		speed = math.Hypot(move.Velocity.X(), move.Velocity.Y())
	}
	line := fmt.Sprintf("aiming: %t  canRun: %t  crouching: %t  maxSpeed: %.0f  speed: %.0f",
		state.IsAiming, state.CanRun, state.IsCrouching, maxSpeed, speed)
	ebitenutil.DebugPrintAt(screen, line, 10, 10)

	if ctrl, ok := possessingController(w, r.player); ok {
		rot := ctrl.ControlRotation
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("control yaw: %.1f  pitch: %.1f", rot.Yaw, rot.Pitch), 10, 26)
	}
}
