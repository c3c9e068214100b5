// Package entities provides the value types shared by the grid, placement and
// layout packages.
package entities

import (
	"fmt"
	"math"
)

// Coord addresses one cell of a grid layer
type Coord struct {
	X int `json:"x" yaml:"x"`
	Z int `json:"z" yaml:"z"`
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Z: c.Z + o.Z}
}

// Neighbors returns the four orthogonal neighbors in right, left, up, down order
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{X: c.X + 1, Z: c.Z},
		{X: c.X - 1, Z: c.Z},
		{X: c.X, Z: c.Z + 1},
		{X: c.X, Z: c.Z - 1},
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Vec3 is a world-space position. Y is the vertical axis.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// DistanceXZ returns the horizontal distance between two positions
func (v Vec3) DistanceXZ(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}
