package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/ptest/character"
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/ecs/entity"
)

const frame = 1.0 / 60

type rig struct {
	w      *ecs.World
	pawn   ecs.Entity
	ctrl   ecs.Entity
	sched  *ecs.Scheduler
	driver *character.Controller
}

func newRig(t *testing.T) *rig {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	pawn, err := entity.NewCharacter(w, nil, 0, 0, 0, nil)
	if err != nil {
		t.Fatalf("NewCharacter: %v", err)
	}
	ctrl, err := entity.NewPlayerController(w, nil)
	if err != nil {
		t.Fatalf("NewPlayerController: %v", err)
	}
	if err := entity.Possess(w, ctrl, pawn); err != nil {
		t.Fatalf("Possess: %v", err)
	}
	driver, _ := ecs.Get(w, pawn, character.ControllerComponent.Kind())

	return &rig{
		w:      w,
		pawn:   pawn,
		ctrl:   ctrl,
		driver: driver,
		sched: ecs.NewScheduler(
			NewCharacterTickSystem(),
			NewControllerSystem(),
			NewMovementSystem(),
			NewPhysicsSystem(),
			NewCameraBoomSystem(),
		),
	}
}

func (r *rig) step(n int, before func()) {
	for i := 0; i < n; i++ {
		r.w.Advance(frame)
		if before != nil {
			before()
		}
		r.sched.Update(r.w)
	}
}

func (r *rig) movement() *component.CharacterMovement {
	m, _ := ecs.Get(r.w, r.pawn, component.CharacterMovementComponent.Kind())
	return m
}

func (r *rig) transform() *component.Transform {
	tr, _ := ecs.Get(r.w, r.pawn, component.TransformComponent.Kind())
	return tr
}

func (r *rig) controller() *component.Controller {
	c, _ := ecs.Get(r.w, r.ctrl, component.ControllerComponent.Kind())
	return c
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestControllerSystemAppliesLookInput(t *testing.T) {
	r := newRig(t)
	c := r.controller()
	c.AddYawInput(10)
	c.AddPitchInput(120)

	r.step(1, nil)

	if c.ControlRotation.Yaw != 10 {
		t.Fatalf("yaw = %v, want 10", c.ControlRotation.Yaw)
	}
	if c.ControlRotation.Pitch != c.MaxPitch {
		t.Fatalf("pitch = %v, want clamp %v", c.ControlRotation.Pitch, c.MaxPitch)
	}
	if c.PendingYaw != 0 || c.PendingPitch != 0 {
		t.Fatal("pending look input not consumed")
	}
	if r.transform().Yaw != 0 {
		t.Fatalf("actor yaw = %v; actor should not follow controller while not aiming", r.transform().Yaw)
	}

	r.driver.AimPress()
	c.AddYawInput(170)
	r.step(1, nil)

	if c.ControlRotation.Yaw != 180 {
		t.Fatalf("yaw = %v, want 180", c.ControlRotation.Yaw)
	}
	if r.transform().Yaw != 180 {
		t.Fatalf("aiming actor yaw = %v, want controller yaw 180", r.transform().Yaw)
	}

	c.AddYawInput(20)
	r.step(1, nil)
	if c.ControlRotation.Yaw != -160 {
		t.Fatalf("yaw = %v, want wrapped -160", c.ControlRotation.Yaw)
	}
}

func TestMovementAcceleratesTurnsAndBrakes(t *testing.T) {
	r := newRig(t)
	pawn, _ := ecs.Get(r.w, r.pawn, component.PawnComponent.Kind())
	push := func() { pawn.AddMovementInput(mgl64.Vec3{0, 1, 0}, 1) }

	r.step(60, push)

	m := r.movement()
	if !near(m.Velocity.Y(), 300, 1e-6) || !near(m.Velocity.X(), 0, 1e-6) {
		t.Fatalf("velocity = %v, want (0, 300)", m.Velocity)
	}
	if !near(r.transform().Yaw, 90, 1e-9) {
		t.Fatalf("yaw = %v, want 90", r.transform().Yaw)
	}
	if r.transform().Y <= 0 {
		t.Fatalf("actor did not move: %+v", r.transform())
	}

	r.step(20, nil)
	if m.Velocity.Len() != 0 {
		t.Fatalf("velocity after braking = %v", m.Velocity)
	}
}

func TestMovementHonorsRunAndAimSpeeds(t *testing.T) {
	r := newRig(t)
	pawn, _ := ecs.Get(r.w, r.pawn, component.PawnComponent.Kind())
	push := func() { pawn.AddMovementInput(mgl64.Vec3{1, 0, 0}, 1) }

	r.driver.RunPress()
	r.step(60, push)
	if got := r.movement().Velocity.Len(); !near(got, 750, 1e-6) {
		t.Fatalf("run speed = %v, want 750", got)
	}

	r.driver.AimPress()
	r.step(1, push)
	if got := r.movement().Velocity.Len(); got > 300+1e-6 {
		t.Fatalf("aiming speed = %v, want capped at 300", got)
	}
}

func TestMovementInputIsClamped(t *testing.T) {
	r := newRig(t)
	pawn, _ := ecs.Get(r.w, r.pawn, component.PawnComponent.Kind())

	r.step(60, func() {
		pawn.AddMovementInput(mgl64.Vec3{1, 0, 0}, 1)
		pawn.AddMovementInput(mgl64.Vec3{0, 1, 0}, 1)
	})
	if got := r.movement().Velocity.Len(); !near(got, 300, 1e-6) {
		t.Fatalf("diagonal speed = %v, want 300", got)
	}
}

func TestJumpAndLand(t *testing.T) {
	r := newRig(t)
	m := r.movement()

	r.driver.Jump()
	r.step(1, nil)
	if m.Grounded || r.transform().Z <= 0 {
		t.Fatalf("did not leave the ground: z=%v grounded=%v", r.transform().Z, m.Grounded)
	}

	peak := 0.0
	r.step(90, func() {
		if z := r.transform().Z; z > peak {
			peak = z
		}
	})
	if !m.Grounded || r.transform().Z != 0 || m.Velocity.Z() != 0 {
		t.Fatalf("did not land: z=%v vz=%v", r.transform().Z, m.Velocity.Z())
	}
	// v^2 / 2g = 600^2 / 1960
	if peak < 150 || peak > 200 {
		t.Fatalf("peak = %v, want about 184", peak)
	}
}

func TestCameraBoom(t *testing.T) {
	tests := []struct {
		name    string
		wallX   float64
		wantArm float64
	}{
		{name: "clear", wantArm: 300},
		// wall face at -145, probe radius 12
		{name: "blocked", wallX: -150, wantArm: 133},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			if tt.wallX != 0 {
				r.w.PhysicsWorld().AddWall(ecs.CreateEntity(r.w), tt.wallX, -500, tt.wallX, 500, 10)
			}

			r.step(1, nil)

			boom, _ := ecs.Get(r.w, r.pawn, component.CameraBoomComponent.Kind())
			if !near(boom.CurrentArmLength, tt.wantArm, 1e-3) {
				t.Fatalf("arm = %v, want %v", boom.CurrentArmLength, tt.wantArm)
			}
			want := mgl64.Vec3{-tt.wantArm, 0, 96 + 60}
			got := boom.Camera.Position
			if !near(got.X(), want.X(), 1e-3) || !near(got.Y(), want.Y(), 1e-6) || !near(got.Z(), want.Z(), 1e-6) {
				t.Fatalf("camera = %v, want %v", got, want)
			}
		})
	}
}

func TestCameraBoomFollowsControlRotation(t *testing.T) {
	r := newRig(t)
	r.controller().AddYawInput(90)
	r.step(1, nil)

	boom, _ := ecs.Get(r.w, r.pawn, component.CameraBoomComponent.Kind())
	got := boom.Camera.Position
	if !near(got.X(), 0, 1e-6) || !near(got.Y(), -300, 1e-6) {
		t.Fatalf("camera = %v, want behind the view at (0, -300)", got)
	}
	if boom.Camera.Yaw != 90 {
		t.Fatalf("camera yaw = %v, want 90", boom.Camera.Yaw)
	}
}

func TestCharacterTickReportsModeChanges(t *testing.T) {
	r := newRig(t)
	tick := NewCharacterTickSystem()

	r.w.Advance(frame)
	tick.Update(r.w)
	if n := len(r.w.Events().Pending()); n != 0 {
		t.Fatalf("first tick emitted %d events", n)
	}

	r.driver.RunPress()
	r.driver.AimPress()
	tick.Update(r.w)

	got := map[ecs.EventType]any{}
	for _, evt := range r.w.Events().Drain() {
		if evt.Entity != r.pawn {
			t.Fatalf("event for %v, want %v", evt.Entity, r.pawn)
		}
		got[evt.Type] = evt.Data
	}
	if got[ecs.EventAimChanged] != true {
		t.Fatalf("aim event = %v", got[ecs.EventAimChanged])
	}
	if _, ok := got[ecs.EventMaxSpeedChanged]; ok {
		t.Fatal("run then aim in one frame should end at the walk speed it started with")
	}
}
