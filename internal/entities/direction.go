package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Direction is one of the four 90 degree orientations of a grid entity
type Direction int

const (
	Down Direction = iota
	Left
	Up
	Right
)

var directionNames = [...]string{"down", "left", "up", "right"}

func (d Direction) String() string {
	if d < Down || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

// Next returns the orientation after one clockwise step: Down, Left, Up, Right, Down
func (d Direction) Next() Direction {
	switch d {
	case Down:
		return Left
	case Left:
		return Up
	case Up:
		return Right
	default:
		return Down
	}
}

// Angle is the yaw in degrees applied to the entity
func (d Direction) Angle() int {
	switch d {
	case Left:
		return 90
	case Up:
		return 180
	case Right:
		return 270
	default:
		return 0
	}
}

// RotationOffset is the cell offset of the rotated pivot for a width x height footprint
func (d Direction) RotationOffset(width, height int) Coord {
	switch d {
	case Left:
		return Coord{X: 0, Z: width}
	case Up:
		return Coord{X: width, Z: height}
	case Right:
		return Coord{X: height, Z: 0}
	default:
		return Coord{}
	}
}

// ParseDirection parses a direction name
func ParseDirection(s string) (Direction, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == norm {
			return Direction(i), nil
		}
	}
	return Down, errors.InvalidArgumentf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Footprint returns the cells covered by a width x height template placed at
// origin. Left and Right swap the axes. Cells are listed x-major.
func Footprint(origin Coord, width, height int, dir Direction) []Coord {
	w, h := width, height
	if dir == Left || dir == Right {
		w, h = height, width
	}

	cells := make([]Coord, 0, w*h)
	for x := 0; x < w; x++ {
		for z := 0; z < h; z++ {
			cells = append(cells, Coord{X: origin.X + x, Z: origin.Z + z})
		}
	}
	return cells
}

// EdgeSlot is a compass-aligned wall attachment point on a floor entity
type EdgeSlot int

const (
	EdgeUp EdgeSlot = iota
	EdgeDown
	EdgeLeft
	EdgeRight
)

var edgeNames = [...]string{"up", "down", "left", "right"}

// AllEdgeSlots lists the four slots
func AllEdgeSlots() []EdgeSlot {
	return []EdgeSlot{EdgeUp, EdgeDown, EdgeLeft, EdgeRight}
}

func (e EdgeSlot) String() string {
	if e < EdgeUp || e > EdgeRight {
		return "unknown"
	}
	return edgeNames[e]
}

// EdgeFor is the floor slot on the side d faces
func EdgeFor(d Direction) EdgeSlot {
	switch d {
	case Down:
		return EdgeDown
	case Left:
		return EdgeLeft
	case Right:
		return EdgeRight
	default:
		return EdgeUp
	}
}

// Valid reports whether e names one of the four slots
func (e EdgeSlot) Valid() bool {
	return e >= EdgeUp && e <= EdgeRight
}

// ParseEdgeSlot parses an edge slot name
func ParseEdgeSlot(s string) (EdgeSlot, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, name := range edgeNames {
		if name == norm {
			return EdgeSlot(i), nil
		}
	}
	return EdgeUp, errors.InvalidArgumentf("unknown edge slot %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (e EdgeSlot) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *EdgeSlot) UnmarshalText(text []byte) error {
	parsed, err := ParseEdgeSlot(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
