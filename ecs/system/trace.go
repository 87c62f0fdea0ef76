package system

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
)

// TraceRecord is one character's state at the end of a frame.
type TraceRecord struct {
	Frame        uint64  `csv:"frame"`
	Entity       uint64  `csv:"entity"`
	X            float64 `csv:"x"`
	Y            float64 `csv:"y"`
	Z            float64 `csv:"z"`
	Yaw          float64 `csv:"yaw"`
	ControlYaw   float64 `csv:"control_yaw"`
	ControlPitch float64 `csv:"control_pitch"`
	Speed        float64 `csv:"speed"`
	MaxSpeed     float64 `csv:"max_speed"`
	Aiming       bool    `csv:"aiming"`
	CanRun       bool    `csv:"can_run"`
	Grounded     bool    `csv:"grounded"`
	ArmLength    float64 `csv:"arm_length"`
	Events       int     `csv:"events"`
}

// TraceSystem appends one CSV row per character per frame.
type TraceSystem struct {
	out           io.Writer
	logger        *zap.Logger
	headerWritten bool
	failed        bool
}

func NewTraceSystem(out io.Writer, logger *zap.Logger) *TraceSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TraceSystem{out: out, logger: logger}
}

func (s *TraceSystem) Update(w *ecs.World) {
	if w == nil || s.out == nil || s.failed {
		return
	}

	records := s.collect(w)
	if len(records) == 0 {
		return
	}

	if err := s.write(records); err != nil {
		// Stop tracing after the first failure.
		s.failed = true
		s.logger.Error("trace write failed", zap.Error(err))
	}
}

func (s *TraceSystem) collect(w *ecs.World) []*TraceRecord {
	events := make(map[ecs.Entity]int)
	for _, evt := range w.Events().Pending() {
		events[evt.Entity]++
	}

	var records []*TraceRecord
	for _, e := range w.Query(component.CharacterControlStateComponent.Kind(), component.CharacterMovementComponent.Kind(), component.TransformComponent.Kind()) {
		state, _ := ecs.Get(w, e, component.CharacterControlStateComponent.Kind())
		move, _ := ecs.Get(w, e, component.CharacterMovementComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		rec := &TraceRecord{
			Frame:    w.Frame(),
			Entity:   uint64(e),
			X:        t.X,
			Y:        t.Y,
			Z:        t.Z,
			Yaw:      t.Yaw,
			Speed:    geom.PlaneLen(move.Velocity),
			MaxSpeed: move.MaxWalkSpeed,
			Aiming:   state.IsAiming,
			CanRun:   state.CanRun,
			Grounded: move.Grounded,
			Events:   events[e],
		}
		if ctrl, ok := possessingController(w, e); ok {
			rec.ControlYaw = ctrl.ControlRotation.Yaw
			rec.ControlPitch = ctrl.ControlRotation.Pitch
		}
		if boom, ok := ecs.Get(w, e, component.CameraBoomComponent.Kind()); ok {
			rec.ArmLength = boom.CurrentArmLength
		}
		records = append(records, rec)
	}
	return records
}

func (s *TraceSystem) write(records []*TraceRecord) error {
	if !s.headerWritten {
		if err := gocsv.Marshal(records, s.out); err != nil {
			return fmt.Errorf("trace: write header: %w", err)
		}
		s.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, s.out); err != nil {
		return fmt.Errorf("trace: write rows: %w", err)
	}
	return nil
}
