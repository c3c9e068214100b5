// Package layout maps externally described floorplans onto grid cells. The
// resolver is an offline pre-pass: it never touches a live grid and its
// output is fed through the placement controller by the caller.
package layout

import (
	"encoding/json"
	"io"
	"math"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Point is a position in page space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Record is one entry of a floorplan document
type Record struct {
	Name      string  `json:"name"`
	Text      string  `json:"text"`
	Position  Point   `json:"position"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Direction float64 `json:"direction"`
}

// Floorplan is a parsed document. The first record of the source only
// carries the page size and is not part of Records.
type Floorplan struct {
	PageWidth  float64
	PageHeight float64
	Records    []Record
}

// ParseFloorplan decodes a JSON array of records
func ParseFloorplan(r io.Reader) (*Floorplan, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode floorplan")
	}
	if len(records) == 0 {
		return nil, errors.InvalidArgument("floorplan has no page record")
	}

	page := records[0]
	if page.Width <= 0 || page.Height <= 0 {
		return nil, errors.InvalidArgumentf("page size must be positive, got %gx%g", page.Width, page.Height)
	}

	return &Floorplan{
		PageWidth:  page.Width,
		PageHeight: page.Height,
		Records:    records[1:],
	}, nil
}

// Items converts the records to resolver input items in document order
func (f *Floorplan) Items() []Item {
	items := make([]Item, len(f.Records))
	for i, r := range f.Records {
		items[i] = Item{
			Name:      r.Name,
			Key:       r.Text,
			X:         r.Position.X,
			Y:         r.Position.Y,
			Direction: int(math.Round(r.Direction)),
		}
	}
	return items
}

// Facing maps a floorplan direction code to a facing and a loose-object yaw:
// 0 forward, 1 back, 2 left, 3 right. Unknown codes face forward.
func Facing(code int) (entities.Direction, float64) {
	switch code {
	case 1:
		return entities.Down, 180
	case 2:
		return entities.Left, 270
	case 3:
		return entities.Right, 90
	default:
		return entities.Up, 0
	}
}
