package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestDirectionCycle() {
	dir := entities.Down
	seen := []entities.Direction{dir}
	for i := 0; i < 4; i++ {
		dir = dir.Next()
		seen = append(seen, dir)
	}
	s.Equal([]entities.Direction{
		entities.Down, entities.Left, entities.Up, entities.Right, entities.Down,
	}, seen)
}

func (s *EntitiesTestSuite) TestRotationOffsetAndAngle() {
	testCases := []struct {
		dir    entities.Direction
		offset entities.Coord
		angle  int
	}{
		{entities.Down, entities.Coord{X: 0, Z: 0}, 0},
		{entities.Left, entities.Coord{X: 0, Z: 3}, 90},
		{entities.Up, entities.Coord{X: 3, Z: 2}, 180},
		{entities.Right, entities.Coord{X: 2, Z: 0}, 270},
	}

	for _, tc := range testCases {
		s.Run(tc.dir.String(), func() {
			s.Equal(tc.offset, tc.dir.RotationOffset(3, 2))
			s.Equal(tc.angle, tc.dir.Angle())
		})
	}
}

func (s *EntitiesTestSuite) TestFootprintSwapsAxes() {
	origin := entities.Coord{X: 1, Z: 1}

	down := entities.Footprint(origin, 3, 1, entities.Down)
	s.Equal([]entities.Coord{{X: 1, Z: 1}, {X: 2, Z: 1}, {X: 3, Z: 1}}, down)

	left := entities.Footprint(origin, 3, 1, entities.Left)
	s.Equal([]entities.Coord{{X: 1, Z: 1}, {X: 1, Z: 2}, {X: 1, Z: 3}}, left)

	s.Len(entities.Footprint(origin, 2, 2, entities.Up), 4)
}

func (s *EntitiesTestSuite) TestTemplateAllows() {
	sofa := &entities.Template{ID: "sofa", Name: "Sofa", ConstraintGroup: "seating",
		AllowedAdjacent: entities.NewAllowList("table")}
	table := &entities.Template{ID: "table", Name: "Table", ConstraintGroup: "surfaces"}
	lamp := &entities.Template{ID: "lamp", Name: "Lamp"}

	s.True(sofa.Allows(table))
	s.False(sofa.Allows(lamp))
	s.False(table.Allows(sofa))
	s.False(lamp.Allows(nil))
}

func (s *EntitiesTestSuite) TestTemplateValidate() {
	s.NoError((&entities.Template{ID: "floor", Category: entities.FloorObject, Width: 1, Height: 1}).Validate())
	s.NoError((&entities.Template{ID: "chair", Category: entities.LooseObject}).Validate())
	s.Error((&entities.Template{ID: "", Category: entities.GridObject, Width: 1, Height: 1}).Validate())
	s.Error((&entities.Template{ID: "bad", Category: entities.GridObject}).Validate())
}

func (s *EntitiesTestSuite) TestSupportsEdge() {
	all := &entities.Template{ID: "floor"}
	s.True(all.SupportsEdge(entities.EdgeLeft))

	limited := &entities.Template{ID: "fence", EdgeSlots: []entities.EdgeSlot{entities.EdgeUp}}
	s.True(limited.SupportsEdge(entities.EdgeUp))
	s.False(limited.SupportsEdge(entities.EdgeDown))
	s.False(all.SupportsEdge(entities.EdgeSlot(9)))
}

func (s *EntitiesTestSuite) TestParsing() {
	cat, err := entities.ParseCategory("Floor")
	s.Require().NoError(err)
	s.Equal(entities.FloorObject, cat)

	cat, err = entities.ParseCategory("loose_object")
	s.Require().NoError(err)
	s.Equal(entities.LooseObject, cat)

	_, err = entities.ParseCategory("zone")
	s.Error(err)

	dir, err := entities.ParseDirection("RIGHT")
	s.Require().NoError(err)
	s.Equal(entities.Right, dir)

	slot, err := entities.ParseEdgeSlot("left")
	s.Require().NoError(err)
	s.Equal(entities.EdgeLeft, slot)
}

func (s *EntitiesTestSuite) TestWallSlots() {
	floor := &entities.Entity{ID: "f1", Template: &entities.Template{Category: entities.FloorObject}}
	first := &entities.Entity{ID: "w1"}
	second := &entities.Entity{ID: "w2"}

	s.Nil(floor.AttachWall(entities.EdgeUp, first))
	s.Equal(floor, first.Owner)
	s.Equal(first, floor.AttachWall(entities.EdgeUp, second))
	s.Equal([]*entities.Entity{second}, floor.Walls())
	s.Equal(second, floor.DetachWall(entities.EdgeUp))
	s.Empty(floor.Walls())
	s.Equal("floor_object", floor.GetType())
}

func (s *EntitiesTestSuite) TestEdgeFor() {
	s.Equal(entities.EdgeUp, entities.EdgeFor(entities.Up))
	s.Equal(entities.EdgeDown, entities.EdgeFor(entities.Down))
	s.Equal(entities.EdgeLeft, entities.EdgeFor(entities.Left))
	s.Equal(entities.EdgeRight, entities.EdgeFor(entities.Right))
}
