package points

import (
	"planeview/internal/vec"
	"planeview/internal/viewport"
)

// Edit describes what a click did.
type Edit struct {
	Added   *Point
	Removed *Point
}

// Editor implements pointer editing of a Store:
//   - hovering picks the close point,
//   - dragging with a close point moves it,
//   - a click without movement removes the close point or adds a new one.
type Editor struct {
	store *Store

	close        *Point
	closeVersion uint64

	pressed  bool
	moved    bool
	pressPos vec.Vec2

	// Radius is the hit-test radius in surface units.
	Radius float64
}

func NewEditor(s *Store, radius float64) *Editor {
	return &Editor{store: s, Radius: radius}
}

// Close returns the point under the pointer, or nil. A close point picked
// before the collection changed shape is no longer valid.
func (e *Editor) Close() *Point {
	if e.close != nil && e.closeVersion != e.store.Version() {
		e.close = nil
	}
	return e.close
}

// Pressed reports whether a button is held.
func (e *Editor) Pressed() bool { return e.pressed }

// Dragging reports whether the held button is dragging a point.
func (e *Editor) Dragging() bool { return e.pressed && e.Close() != nil }

// Hover recomputes the close point for a pointer at surface position pos. It
// does nothing while a button is held, so a drag keeps its point.
func (e *Editor) Hover(v *viewport.Viewport, pos vec.Vec2) *Point {
	if e.pressed {
		return e.Close()
	}
	e.close = e.store.HitTest(v, pos, e.Radius)
	e.closeVersion = e.store.Version()
	return e.close
}

func (e *Editor) Press(pos vec.Vec2) {
	e.pressed = true
	e.moved = false
	e.pressPos = pos
}

// Move records pointer movement while pressed; any movement turns the click
// into a drag or pan.
func (e *Editor) Move(pos vec.Vec2) {
	if e.pressed && pos != e.pressPos {
		e.moved = true
	}
}

// Cancel turns the current press into a non-click, as when a second contact
// lands and the gesture becomes a pinch.
func (e *Editor) Cancel() {
	if e.pressed {
		e.moved = true
	}
}

// Frame drags the close point to the pointer's graph position while pressed.
func (e *Editor) Frame(v *viewport.Viewport, pos vec.Vec2) bool {
	if !e.Dragging() {
		return false
	}
	e.close.Set(v.ToGraph(pos))
	return true
}

// Release ends a press. A release without movement is a click: it removes the
// close point if there is one and adds a point at pos otherwise.
func (e *Editor) Release(v *viewport.Viewport, pos vec.Vec2) Edit {
	if !e.pressed {
		return Edit{}
	}
	e.pressed = false
	if e.moved {
		return Edit{}
	}
	if p := e.Close(); p != nil {
		e.store.Remove(p)
		e.close = nil
		return Edit{Removed: p}
	}
	return Edit{Added: e.store.Add(v.ToGraph(pos))}
}
