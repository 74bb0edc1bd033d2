// Package points holds the user's point collection and the hit-testing and
// click/drag editing built on it.
package points

import (
	"math"

	"planeview/internal/vec"
	"planeview/internal/viewport"
)

// Point is a handle to one entry of a Store. Identity is the handle, not the
// coordinates: two points at the same position are still distinct.
type Point struct {
	pos vec.Vec2
}

// Pos returns a copy of the point's graph position.
func (p *Point) Pos() vec.Vec2 { return p.pos }

// Set moves the point.
func (p *Point) Set(v vec.Vec2) { p.pos = v }

// Store is an ordered point collection; order is the curve's drawing order.
type Store struct {
	pts     []*Point
	version uint64
}

func NewStore() *Store { return &Store{} }

// Add appends a copy of v and returns its handle.
func (s *Store) Add(v vec.Vec2) *Point {
	p := &Point{pos: v}
	s.pts = append(s.pts, p)
	s.version++
	return p
}

func (s *Store) AddMany(vs []vec.Vec2) []*Point {
	out := make([]*Point, len(vs))
	for i, v := range vs {
		out[i] = &Point{pos: v}
	}
	s.pts = append(s.pts, out...)
	s.version++
	return out
}

// Remove deletes p by identity. It reports whether p was present.
func (s *Store) Remove(p *Point) bool {
	i := s.Index(p)
	if i < 0 {
		return false
	}
	copy(s.pts[i:], s.pts[i+1:])
	s.pts[len(s.pts)-1] = nil
	s.pts = s.pts[:len(s.pts)-1]
	s.version++
	return true
}

func (s *Store) Clear() {
	if len(s.pts) == 0 {
		return
	}
	s.pts = nil
	s.version++
}

func (s *Store) Len() int { return len(s.pts) }

func (s *Store) At(i int) *Point { return s.pts[i] }

// Index returns the position of p in the collection or -1.
func (s *Store) Index(p *Point) int {
	if p == nil {
		return -1
	}
	for i, q := range s.pts {
		if q == p {
			return i
		}
	}
	return -1
}

// Find returns the first point at exactly v, or nil.
func (s *Store) Find(v vec.Vec2) *Point {
	for _, p := range s.pts {
		if p.pos == v {
			return p
		}
	}
	return nil
}

// Version changes whenever points are added or removed.
func (s *Store) Version() uint64 { return s.version }

// Points returns the handles in order. The slice is a copy.
func (s *Store) Points() []*Point {
	out := make([]*Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// Positions returns the coordinates in order.
func (s *Store) Positions() []vec.Vec2 {
	out := make([]vec.Vec2, len(s.pts))
	for i, p := range s.pts {
		out[i] = p.pos
	}
	return out
}

// Bounds returns the bounding box of all points; ok is false when empty.
func (s *Store) Bounds() (lo, hi vec.Vec2, ok bool) {
	if len(s.pts) == 0 {
		return lo, hi, false
	}
	lo, hi = s.pts[0].pos, s.pts[0].pos
	for _, p := range s.pts[1:] {
		lo = vec.New(math.Min(lo.X, p.pos.X), math.Min(lo.Y, p.pos.Y))
		hi = vec.New(math.Max(hi.X, p.pos.X), math.Max(hi.Y, p.pos.Y))
	}
	return lo, hi, true
}

// MustRender reports whether point i has to be drawn: it or a neighbour is
// visible, or it is an end of the curve. Culling never breaks a segment
// that crosses into view.
func (s *Store) MustRender(i int, v *viewport.Viewport) bool {
	n := len(s.pts)
	if i < 0 || i >= n {
		return false
	}
	if i == 0 || i == n-1 {
		return true
	}
	return v.Contains(s.pts[i].pos) ||
		v.Contains(s.pts[i-1].pos) ||
		v.Contains(s.pts[i+1].pos)
}

// Visible projects the points that must be drawn into surface space.
func (s *Store) Visible(v *viewport.Viewport) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(s.pts))
	for i, p := range s.pts {
		if s.MustRender(i, v) {
			out = append(out, v.ToSurface(p.pos))
		}
	}
	return out
}

// HitTest returns the first point within radius surface units of pos, or nil.
func (s *Store) HitTest(v *viewport.Viewport, pos vec.Vec2, radius float64) *Point {
	r2 := radius * radius
	for _, p := range s.pts {
		if v.ToSurface(p.pos).SqrDist(pos) <= r2 {
			return p
		}
	}
	return nil
}
