package system

import (
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/input"
)

// InputSystem polls the device once per frame and dispatches the snapshot to
// every bound input component.
type InputSystem struct {
	device input.Device
	poller *input.Poller
	last   input.Snapshot
}

func NewInputSystem(device input.Device, mappings *input.Mappings) *InputSystem {
	return &InputSystem{
		device: device,
		poller: input.NewPoller(mappings),
		last:   input.NewSnapshot(),
	}
}

// SetMappings swaps the active mappings, e.g. after input.yaml changes.
func (i *InputSystem) SetMappings(m *input.Mappings) {
	i.poller.SetMappings(m)
}

// ResetCursor forgets the last cursor position so the next poll reports no
// mouse motion.
func (i *InputSystem) ResetCursor() {
	i.poller.ResetCursor()
}

// Last is the snapshot dispatched on the most recent update.
func (i *InputSystem) Last() input.Snapshot {
	return i.last
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.device == nil {
		return
	}

	i.last = i.poller.Poll(i.device)

	ecs.ForEach(w, component.PlayerInputComponent.Kind(), func(e ecs.Entity, pi *component.PlayerInput) {
		if pi.Bindings == nil {
			return
		}
		pi.Bindings.Dispatch(i.last)
	})
}
