package system

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/input"
	"github.com/milk9111/ptest/prefabs"
)

type fakeDevice struct {
	keys    map[ebiten.Key]bool
	mouse   map[ebiten.MouseButton]bool
	cursorX int
	cursorY int
}

func (d *fakeDevice) IsKeyPressed(k ebiten.Key) bool                 { return d.keys[k] }
func (d *fakeDevice) IsMouseButtonPressed(b ebiten.MouseButton) bool { return d.mouse[b] }
func (d *fakeDevice) CursorPosition() (int, int)                     { return d.cursorX, d.cursorY }
func (d *fakeDevice) IsGamepadButtonPressed(ebiten.StandardGamepadButton) bool {
	return false
}
func (d *fakeDevice) GamepadAxis(ebiten.StandardGamepadAxis) float64 { return 0 }

func embeddedMappings(t *testing.T) *input.Mappings {
	t.Helper()
	spec, err := prefabs.LoadInputSpec()
	if err != nil {
		t.Fatalf("LoadInputSpec: %v", err)
	}
	m, err := input.NewMappings(spec)
	if err != nil {
		t.Fatalf("NewMappings: %v", err)
	}
	return m
}

func TestInputSystemDrivesPossessedPawn(t *testing.T) {
	r := newRig(t)
	dev := &fakeDevice{keys: map[ebiten.Key]bool{}, mouse: map[ebiten.MouseButton]bool{}}
	in := NewInputSystem(dev, embeddedMappings(t))
	r.sched = ecs.NewScheduler(in, NewControllerSystem())

	r.step(1, nil)

	dev.mouse[ebiten.MouseButtonRight] = true
	dev.cursorX = 50
	r.step(1, nil)

	state, _ := ecs.Get(r.w, r.pawn, component.CharacterControlStateComponent.Kind())
	if !state.IsAiming || state.CanRun {
		t.Fatalf("aim not applied: %+v", state)
	}
	if got := r.controller().ControlRotation.Yaw; got != 10 {
		t.Fatalf("yaw = %v, want 50 * 0.2", got)
	}
	if !in.Last().Down["Aim"] {
		t.Fatal("last snapshot should hold Aim down")
	}

	dev.keys[ebiten.KeyShiftLeft] = true
	r.step(1, nil)
	if r.movement().MaxWalkSpeed != state.WalkSpeed {
		t.Fatalf("run while aiming changed max speed to %v", r.movement().MaxWalkSpeed)
	}

	dev.mouse[ebiten.MouseButtonRight] = false
	r.step(1, nil)
	if state.IsAiming || !state.CanRun {
		t.Fatalf("aim release not applied: %+v", state)
	}
}

func TestTraceSystemWritesCSV(t *testing.T) {
	r := newRig(t)
	var buf bytes.Buffer
	r.sched.Add(NewTraceSystem(&buf, nil))

	r.step(3, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "frame,entity,x,y,z,yaw") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "3,") {
		t.Fatalf("last row = %q, want frame 3", lines[3])
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestTraceSystemStopsAfterWriteError(t *testing.T) {
	r := newRig(t)
	core, logs := observer.New(zapcore.ErrorLevel)
	fw := &failingWriter{}
	r.sched.Add(NewTraceSystem(fw, zap.New(core)))

	r.step(3, nil)

	if logs.FilterMessage("trace write failed").Len() != 1 {
		t.Fatalf("expected one error log, got %d", logs.Len())
	}
	calls := fw.calls
	r.step(2, nil)
	if fw.calls != calls {
		t.Fatal("trace kept writing after a failure")
	}
}

type fakeSource struct{ paths []string }

func (f *fakeSource) Drain() []string {
	out := f.paths
	f.paths = nil
	return out
}

func TestTuningReloadSystem(t *testing.T) {
	r := newRig(t)
	state, _ := ecs.Get(r.w, r.pawn, component.CharacterControlStateComponent.Kind())
	state.WalkSpeed = 1
	state.RunSpeed = 2
	r.movement().MaxWalkSpeed = 1

	core, logs := observer.New(zapcore.InfoLevel)
	src := &fakeSource{paths: []string{"prefabs/character.yaml", "prefabs/input.yaml", "prefabs/notes.txt"}}
	reload := NewTuningReloadSystem(src, zap.New(core))
	var mappings *input.Mappings
	reload.OnInputMappings = func(m *input.Mappings) { mappings = m }

	r.w.Advance(frame)
	reload.Update(r.w)

	if state.WalkSpeed != 300 || state.RunSpeed != 750 {
		t.Fatalf("speeds = %v/%v, want prefab 300/750", state.WalkSpeed, state.RunSpeed)
	}
	if r.movement().MaxWalkSpeed != 300 {
		t.Fatalf("max speed = %v, want walk speed", r.movement().MaxWalkSpeed)
	}
	if mappings == nil {
		t.Fatal("input mappings not handed over")
	}
	if logs.FilterMessage("character tuning reloaded").Len() != 1 {
		t.Fatal("missing reload log")
	}

	var reloaded []any
	for _, evt := range r.w.Events().Drain() {
		if evt.Type == ecs.EventTuningReloaded {
			reloaded = append(reloaded, evt.Data)
		}
	}
	if len(reloaded) != 2 {
		t.Fatalf("reload events = %v", reloaded)
	}

	reload.Update(r.w)
	if n := len(r.w.Events().Pending()); n != 0 {
		t.Fatalf("idle reload emitted %d events", n)
	}
}
