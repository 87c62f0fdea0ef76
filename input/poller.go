package input

import "math"

// Poller turns device state into per-frame snapshots. It remembers which
// actions were down and where the cursor was on the previous poll.
type Poller struct {
	mappings *Mappings
	wasDown  map[string]bool

	cursorX, cursorY int
	hasCursor        bool
}

func NewPoller(m *Mappings) *Poller {
	if m == nil {
		m = &Mappings{}
	}
	return &Poller{mappings: m, wasDown: map[string]bool{}}
}

// SetMappings swaps the mappings. Actions held under the old mappings are
// released on the next poll if they are no longer down.
func (p *Poller) SetMappings(m *Mappings) {
	if m == nil {
		m = &Mappings{}
	}
	p.mappings = m
}

// ResetCursor forgets the last cursor position so the next poll reports no
// pointer motion (e.g. after the cursor was recaptured).
func (p *Poller) ResetCursor() {
	p.hasCursor = false
}

func (p *Poller) Poll(d Device) Snapshot {
	s := NewSnapshot()
	if d == nil {
		return s
	}

	down := make(map[string]bool, len(p.mappings.actions))
	for _, a := range p.mappings.actions {
		for _, c := range a.controls {
			if c.down(d) {
				down[a.name] = true
				break
			}
		}
	}
	for name := range down {
		s.Down[name] = true
		if !p.wasDown[name] {
			s.Pressed[name] = true
		}
	}
	for name := range p.wasDown {
		if !down[name] {
			s.Released[name] = true
		}
	}
	p.wasDown = down

	cx, cy := d.CursorPosition()
	dx, dy := 0.0, 0.0
	if p.hasCursor {
		dx = float64(cx - p.cursorX)
		dy = float64(cy - p.cursorY)
	}
	p.cursorX, p.cursorY, p.hasCursor = cx, cy, true

	for _, a := range p.mappings.axes {
		v := 0.0
		for _, k := range a.keys {
			if k.control.down(d) {
				v += k.scale
			}
		}
		for _, m := range a.mouse {
			switch m.axis {
			case mouseX:
				v += dx * m.scale
			case mouseY:
				v += dy * m.scale
			}
		}
		for _, g := range a.gamepad {
			raw := d.GamepadAxis(g.axis)
			if math.Abs(raw) > g.deadzone {
				v += raw * g.scale
			}
		}
		s.Axes[a.name] += v
	}
	return s
}
