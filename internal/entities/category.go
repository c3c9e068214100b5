package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Category is the placement style of a template
type Category int

const (
	// GridObject occupies footprint cells and may stack on a floor
	GridObject Category = iota
	// FloorObject occupies footprint cells and exposes edge slots for walls
	FloorObject
	// WallObject attaches to a floor edge slot and never occupies cells
	WallObject
	// LooseObject is placed at a free world position
	LooseObject
)

var categoryNames = map[Category]string{
	GridObject:  "grid_object",
	FloorObject: "floor_object",
	WallObject:  "wall_object",
	LooseObject: "loose_object",
}

// Categories lists every category in declaration order
func Categories() []Category {
	return []Category{GridObject, FloorObject, WallObject, LooseObject}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// OccupiesCells reports whether entities of this category are written into grid cells
func (c Category) OccupiesCells() bool {
	return c == GridObject || c == FloorObject
}

// ParseCategory accepts the snake_case names used in catalogs and config
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == norm || strings.TrimSuffix(name, "_object") == norm {
			return c, nil
		}
	}
	return GridObject, errors.InvalidArgumentf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
