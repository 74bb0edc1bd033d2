// Package gesture turns pointer contacts and wheel events into pan and zoom
// operations on a viewport.
//
// One contact pans. Two or more contacts pan by their mean position and zoom
// by the change in their spread. Both cases share one code path: with a
// single contact the spread is always zero, so the zoom term vanishes.
//
// Whenever the number of contacts changes the mean jumps (a finger landed or
// lifted), so the next frame only re-samples the mean and spread and applies
// nothing.
package gesture

import (
	"planeview/internal/vec"
	"planeview/internal/viewport"
)

const (
	DefaultWheelDivisor = 600
	DefaultPinchFactor  = 2.7
)

// PointerID identifies a contact (mouse button, finger).
type PointerID int

// Modifiers are the keyboard modifiers held during a wheel event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// Axes returns the zoom axes for a wheel event: Ctrl keeps x fixed, Shift
// keeps y fixed.
func (m Modifiers) Axes() viewport.Axis {
	axes := viewport.AxisBoth
	if m.Ctrl {
		axes &^= viewport.AxisX
	}
	if m.Shift {
		axes &^= viewport.AxisY
	}
	return axes
}

type pointer struct {
	id  PointerID
	pos vec.Vec2
}

// Step reports what one Update applied.
type Step struct {
	Pan  vec.Vec2 // graph-space offset delta
	Zoom float64  // zoom fraction about Pivot
	// Pivot is the mean contact position the zoom was centred on.
	Pivot   vec.Vec2
	Skipped bool
}

// Controller tracks active contacts. It is not safe for concurrent use; all
// calls come from the event loop.
type Controller struct {
	pointers []pointer

	mean       vec.Vec2
	spread     float64
	lastMean   vec.Vec2
	lastSpread float64
	skip       bool

	// Disabled suppresses pan and pinch while still tracking contacts.
	Disabled bool

	WheelDivisor float64
	PinchFactor  float64
}

func New() *Controller {
	return &Controller{
		WheelDivisor: DefaultWheelDivisor,
		PinchFactor:  DefaultPinchFactor,
	}
}

// Down registers a contact. A repeated Down for a tracked id only moves it.
func (c *Controller) Down(id PointerID, pos vec.Vec2) {
	if i := c.index(id); i >= 0 {
		c.pointers[i].pos = pos
		return
	}
	c.pointers = append(c.pointers, pointer{id: id, pos: pos})
	c.skip = true
}

// Move updates a tracked contact. Moves for untracked ids are ignored: they
// belong to contacts that started somewhere that must not drag the view.
func (c *Controller) Move(id PointerID, pos vec.Vec2) {
	if i := c.index(id); i >= 0 {
		c.pointers[i].pos = pos
	}
}

// Up forgets a contact. It serves release, leave and cancel alike.
func (c *Controller) Up(id PointerID) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.pointers = append(c.pointers[:i], c.pointers[i+1:]...)
	c.skip = true
}

// Active is the number of tracked contacts.
func (c *Controller) Active() int { return len(c.pointers) }

// Pressed reports whether any contact is down.
func (c *Controller) Pressed() bool { return len(c.pointers) > 0 }

// Position returns the surface position of a tracked contact.
func (c *Controller) Position(id PointerID) (vec.Vec2, bool) {
	if i := c.index(id); i >= 0 {
		return c.pointers[i].pos, true
	}
	return vec.Vec2{}, false
}

// Mean is the mean contact position sampled by the last Update.
func (c *Controller) Mean() vec.Vec2 { return c.mean }

// Update applies one frame of pan and pinch zoom to v.
func (c *Controller) Update(v *viewport.Viewport) Step {
	if len(c.pointers) == 0 || c.Disabled {
		return Step{}
	}
	positions := make([]vec.Vec2, len(c.pointers))
	for i, p := range c.pointers {
		positions[i] = p.pos
	}
	c.mean = vec.Mean(positions)
	c.spread = 0
	for _, p := range positions {
		c.spread += p.Dist(c.mean)
	}

	var st Step
	if c.skip {
		c.skip = false
		st.Skipped = true
	} else {
		st.Pan = v.DeltaToGraph(c.mean.Sub(c.lastMean))
		st.Pivot = c.mean
		st.Zoom = (c.lastSpread - c.spread) * c.pinchFactor() / c.wheelDivisor()
		v.Pan(st.Pan)
		v.ZoomBy(c.mean, st.Zoom, viewport.AxisBoth)
	}
	c.lastMean = c.mean
	c.lastSpread = c.spread
	return st
}

// Wheel zooms v about the surface position pos. Positive deltaY zooms out.
func (c *Controller) Wheel(v *viewport.Viewport, pos vec.Vec2, deltaY float64, mods Modifiers) {
	v.ZoomBy(pos, deltaY/c.wheelDivisor(), mods.Axes())
}

func (c *Controller) index(id PointerID) int {
	for i, p := range c.pointers {
		if p.id == id {
			return i
		}
	}
	return -1
}

func (c *Controller) wheelDivisor() float64 {
	if c.WheelDivisor == 0 {
		return DefaultWheelDivisor
	}
	return c.WheelDivisor
}

func (c *Controller) pinchFactor() float64 {
	if c.PinchFactor == 0 {
		return DefaultPinchFactor
	}
	return c.PinchFactor
}
