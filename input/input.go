// Package input maps physical controls to named actions and axes and
// dispatches them to bound handlers once per frame.
package input

// Event selects which edge of an action a handler is bound to.
type Event int

const (
	Pressed Event = iota
	Released
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

type actionBinding struct {
	name  string
	event Event
	fn    func()
}

type axisBinding struct {
	name string
	fn   func(float64)
}

// Component holds the handlers a pawn bound to named actions and axes.
type Component struct {
	actions []actionBinding
	axes    []axisBinding
}

func NewComponent() *Component {
	return &Component{}
}

// BindAction calls fn whenever the named action reaches the given edge.
func (c *Component) BindAction(name string, event Event, fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.actions = append(c.actions, actionBinding{name: name, event: event, fn: fn})
}

// BindAxis calls fn every frame with the named axis value, including zero.
func (c *Component) BindAxis(name string, fn func(float64)) {
	if c == nil || fn == nil {
		return
	}
	c.axes = append(c.axes, axisBinding{name: name, fn: fn})
}

// Dispatch delivers a frame of input. Action edges fire before axes, each in
// binding order.
func (c *Component) Dispatch(s Snapshot) {
	if c == nil {
		return
	}
	for _, b := range c.actions {
		switch b.event {
		case Pressed:
			if s.Pressed[b.name] {
				b.fn()
			}
		case Released:
			if s.Released[b.name] {
				b.fn()
			}
		}
	}
	for _, b := range c.axes {
		b.fn(s.Axes[b.name])
	}
}

// ActionNames lists the bound action names in binding order, without
// duplicates.
func (c *Component) ActionNames() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, len(c.actions))
	var out []string
	for _, b := range c.actions {
		if !seen[b.name] {
			seen[b.name] = true
			out = append(out, b.name)
		}
	}
	return out
}

// AxisNames lists the bound axis names in binding order.
func (c *Component) AxisNames() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.axes))
	for _, b := range c.axes {
		out = append(out, b.name)
	}
	return out
}

// Snapshot is one frame of resolved input.
type Snapshot struct {
	Pressed  map[string]bool
	Released map[string]bool
	Down     map[string]bool
	Axes     map[string]float64
}

func NewSnapshot() Snapshot {
	return Snapshot{
		Pressed:  map[string]bool{},
		Released: map[string]bool{},
		Down:     map[string]bool{},
		Axes:     map[string]float64{},
	}
}
