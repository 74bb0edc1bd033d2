// Package remote exposes the graph's public API over a WebSocket so other
// processes can push points and move the view.
package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"planeview/internal/points"
	"planeview/internal/vec"
)

const (
	OpAdd     = "add"
	OpAddMany = "addMany"
	OpRemove  = "remove"
	OpClear   = "clear"
	OpCenter  = "center"
	OpRange   = "range"
	OpXRange  = "xrange"
	OpYRange  = "yrange"
	OpFit     = "fit"
)

var (
	ErrBadCommand = errors.New("bad command")
	ErrNoPoint    = errors.New("no such point")
	ErrNoPoints   = errors.New("no points to fit")
)

// Command is one request from a client.
//
//	{"op":"add","x":1,"y":2}
//	{"op":"addMany","points":[[0,0],[1,1]]}
//	{"op":"range","from":[-1,-1],"to":[1,1]}
//	{"op":"xrange","min":-5,"max":5}
type Command struct {
	Op     string       `json:"op"`
	X      *float64     `json:"x,omitempty"`
	Y      *float64     `json:"y,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	From   *[2]float64  `json:"from,omitempty"`
	To     *[2]float64  `json:"to,omitempty"`
	Min    *float64     `json:"min,omitempty"`
	Max    *float64     `json:"max,omitempty"`
}

// Reply answers every Command.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Decode parses and validates one message.
func Decode(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrBadCommand, err)
	}
	return c, c.Validate()
}

// Validate checks that the fields the op needs are present and finite.
func (c Command) Validate() error {
	switch c.Op {
	case OpAdd, OpRemove, OpCenter:
		if c.X == nil || c.Y == nil {
			return fmt.Errorf("%w: %s needs x and y", ErrBadCommand, c.Op)
		}
		return finite(*c.X, *c.Y)
	case OpAddMany:
		if len(c.Points) == 0 {
			return fmt.Errorf("%w: addMany needs points", ErrBadCommand)
		}
		for _, p := range c.Points {
			if err := finite(p[0], p[1]); err != nil {
				return err
			}
		}
	case OpRange:
		if c.From == nil || c.To == nil {
			return fmt.Errorf("%w: range needs from and to", ErrBadCommand)
		}
		if err := finite(c.From[0], c.From[1], c.To[0], c.To[1]); err != nil {
			return err
		}
		if c.From[0] >= c.To[0] || c.From[1] >= c.To[1] {
			return fmt.Errorf("%w: range from must be below to", ErrBadCommand)
		}
	case OpXRange, OpYRange:
		if c.Min == nil || c.Max == nil {
			return fmt.Errorf("%w: %s needs min and max", ErrBadCommand, c.Op)
		}
		if err := finite(*c.Min, *c.Max); err != nil {
			return err
		}
		if *c.Min >= *c.Max {
			return fmt.Errorf("%w: %s min must be below max", ErrBadCommand, c.Op)
		}
	case OpClear, OpFit:
	case "":
		return fmt.Errorf("%w: missing op", ErrBadCommand)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadCommand, c.Op)
	}
	return nil
}

func finite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite number", ErrBadCommand)
		}
	}
	return nil
}

// Target is the part of the graph API commands drive.
type Target interface {
	AddPoint(v vec.Vec2) *points.Point
	AddPoints(vs []vec.Vec2) []*points.Point
	RemovePointAt(v vec.Vec2) bool
	ClearPoints()
	SetCenter(p vec.Vec2)
	SetRange(bottomLeft, topRight vec.Vec2)
	SetXRange(min, max float64)
	SetYRange(min, max float64)
	FitPoints() bool
}

// Apply runs a validated command against t. It must be called from the
// goroutine that owns t.
func Apply(t Target, c Command) error {
	switch c.Op {
	case OpAdd:
		t.AddPoint(vec.New(*c.X, *c.Y))
	case OpAddMany:
		vs := make([]vec.Vec2, len(c.Points))
		for i, p := range c.Points {
			vs[i] = vec.New(p[0], p[1])
		}
		t.AddPoints(vs)
	case OpRemove:
		if !t.RemovePointAt(vec.New(*c.X, *c.Y)) {
			return ErrNoPoint
		}
	case OpClear:
		t.ClearPoints()
	case OpCenter:
		t.SetCenter(vec.New(*c.X, *c.Y))
	case OpRange:
		t.SetRange(vec.New(c.From[0], c.From[1]), vec.New(c.To[0], c.To[1]))
	case OpXRange:
		t.SetXRange(*c.Min, *c.Max)
	case OpYRange:
		t.SetYRange(*c.Min, *c.Max)
	case OpFit:
		if !t.FitPoints() {
			return ErrNoPoints
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadCommand, c.Op)
	}
	return nil
}
