package layout_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/layout"
	"github.com/KirkDiggler/rpg-grid/internal/testutils/builders"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *layout.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	c, err := catalog.New([]*entities.Template{
		builders.NewTemplateBuilder("rug").WithSize(2, 2).Build(),
		builders.NewTemplateBuilder("stool").Build(),
		builders.NewTemplateBuilder("bench").WithSize(3, 1).Build(),
		builders.NewTemplateBuilder("table").WithName("Table").Build(),
		builders.NewTemplateBuilder("lamp").WithCategory(entities.LooseObject).Build(),
	}, map[string]string{"couch": "bench"})
	s.Require().NoError(err)

	s.resolver, err = layout.NewResolver(&layout.Config{Lookup: c})
	s.Require().NoError(err)
}

// input builds a run on a 10x10 grid over a 100x100 page, so page units
// divided by ten give the target cell
func input(items ...layout.Item) *layout.ResolveInput {
	return &layout.ResolveInput{
		Items:      items,
		GridWidth:  10,
		GridDepth:  10,
		PageWidth:  100,
		PageHeight: 100,
	}
}

func (s *ResolverTestSuite) TestLargestCommitsFirst() {
	out, err := s.resolver.Resolve(input(
		layout.Item{Name: "small", Key: "stool", X: 25, Y: 25},
		layout.Item{Name: "big", Key: "rug", X: 25, Y: 25},
	))
	s.Require().NoError(err)
	s.Require().Len(out.Items, 2)

	small, big := out.Items[0], out.Items[1]
	s.Equal("small", small.Name)
	s.Equal("big", big.Name)

	s.Equal(0, big.Rank)
	s.Equal(entities.Coord{X: 2, Z: 2}, big.Cell)
	s.Equal([]entities.Coord{{X: 2, Z: 2}, {X: 2, Z: 3}, {X: 3, Z: 2}, {X: 3, Z: 3}}, big.Footprint())

	// four cells sit at distance one; lower Z wins the tie
	s.Equal(1, small.Rank)
	s.Equal(entities.Coord{X: 2, Z: 2}, small.Target)
	s.Equal(entities.Coord{X: 2, Z: 1}, small.Cell)
	s.False(small.SearchExhausted)
}

func (s *ResolverTestSuite) TestEqualAreaOrdersByZThenX() {
	out, err := s.resolver.Resolve(input(
		layout.Item{Name: "a", Key: "stool", X: 55, Y: 15},
		layout.Item{Name: "b", Key: "stool", X: 35, Y: 15},
		layout.Item{Name: "c", Key: "stool", X: 5, Y: 45},
		layout.Item{Name: "d", Key: "stool", X: 35, Y: 15},
	))
	s.Require().NoError(err)

	ranks := map[string]int{}
	for _, item := range out.Items {
		ranks[item.Name] = item.Rank
	}
	s.Equal(map[string]int{"b": 0, "d": 1, "a": 2, "c": 3}, ranks)

	s.Equal(entities.Coord{X: 3, Z: 1}, out.Items[1].Cell)
	s.Equal(entities.Coord{X: 3, Z: 0}, out.Items[3].Cell)
}

func (s *ResolverTestSuite) TestDeterministicAcrossRuns() {
	in := input(
		layout.Item{Name: "r1", Key: "rug", X: 50, Y: 50},
		layout.Item{Name: "r2", Key: "rug", X: 52, Y: 51},
		layout.Item{Name: "b1", Key: "bench", X: 95, Y: 50},
		layout.Item{Name: "s1", Key: "stool", X: 50, Y: 50},
		layout.Item{Name: "s2", Key: "STOOL", X: 55, Y: 55},
		layout.Item{Name: "u1", Key: "sculpture", X: 50, Y: 50},
		layout.Item{Name: "l1", Key: "lamp", X: 10, Y: 90, Direction: 3},
	)

	first, err := s.resolver.Resolve(in)
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		again, err := s.resolver.Resolve(in)
		s.Require().NoError(err)
		diff := cmp.Diff(first.Items, again.Items, cmpopts.IgnoreFields(layout.Resolved{}, "Template"))
		s.Empty(diff)
	}

	committed := map[entities.Coord]string{}
	for _, item := range first.Items {
		s.False(item.SearchExhausted, item.Name)
		for _, c := range item.Footprint() {
			s.True(c.X >= 0 && c.X < 10 && c.Z >= 0 && c.Z < 10, "%s at %s", item.Name, c)
			owner, taken := committed[c]
			s.False(taken, "%s overlaps %s at %s", item.Name, owner, c)
			committed[c] = item.Name
		}
	}
}

func (s *ResolverTestSuite) TestUnresolvedKeyDefaultsToOneCell() {
	out, err := s.resolver.Resolve(input(layout.Item{Name: "x", Key: "sculpture", X: 10, Y: 10}))
	s.Require().NoError(err)

	item := out.Items[0]
	s.True(item.TemplateUnresolved)
	s.Nil(item.Template)
	s.Equal(1, item.Width)
	s.Equal(1, item.Height)
	s.Equal(entities.Coord{X: 1, Z: 1}, item.Cell)
}

func (s *ResolverTestSuite) TestAliasesAndLooseFootprint() {
	out, err := s.resolver.Resolve(input(
		layout.Item{Name: "c", Key: "Couch", X: 0, Y: 0},
		layout.Item{Name: "l", Key: "lamp", X: 0, Y: 0, Direction: 2},
	))
	s.Require().NoError(err)

	s.Equal("bench", out.Items[0].Template.ID)
	s.Equal(3, out.Items[0].Width)
	s.Equal(entities.Coord{X: 0, Z: 0}, out.Items[0].Cell)

	lamp := out.Items[1]
	s.Equal(1, lamp.Width*lamp.Height)
	s.Equal(entities.Coord{X: 0, Z: 1}, lamp.Cell)
	s.Equal(entities.Left, lamp.Facing)
	s.InDelta(270, lamp.Yaw, 1e-9)
}

func (s *ResolverTestSuite) TestTargetsAreClamped() {
	out, err := s.resolver.Resolve(input(layout.Item{Name: "far", Key: "stool", X: 150, Y: -10}))
	s.Require().NoError(err)
	s.Equal(entities.Coord{X: 9, Z: 0}, out.Items[0].Target)
	s.Equal(entities.Coord{X: 9, Z: 0}, out.Items[0].Cell)
}

func (s *ResolverTestSuite) TestFootprintIsPulledInsideEdge() {
	out, err := s.resolver.Resolve(input(layout.Item{Name: "edge", Key: "bench", X: 95, Y: 55}))
	s.Require().NoError(err)

	item := out.Items[0]
	s.Equal(entities.Coord{X: 9, Z: 5}, item.Target)
	s.Equal(entities.Coord{X: 7, Z: 5}, item.Cell)
}

func (s *ResolverTestSuite) TestSaturatedGridFallsBackToTarget() {
	in := &layout.ResolveInput{
		Items: []layout.Item{
			{Name: "first", Key: "rug", X: 0, Y: 0},
			{Name: "second", Key: "rug", X: 60, Y: 60},
			{Name: "third", Key: "stool", X: 60, Y: 10},
		},
		GridWidth:  2,
		GridDepth:  2,
		PageWidth:  100,
		PageHeight: 100,
	}

	out, err := s.resolver.Resolve(in)
	s.Require().NoError(err)

	s.False(out.Items[0].SearchExhausted)
	s.Equal(entities.Coord{X: 0, Z: 0}, out.Items[0].Cell)

	s.True(out.Items[1].SearchExhausted)
	s.Equal(entities.Coord{X: 1, Z: 1}, out.Items[1].Cell)

	s.True(out.Items[2].SearchExhausted)
	s.Equal(entities.Coord{X: 1, Z: 0}, out.Items[2].Cell)
}

func (s *ResolverTestSuite) TestInvalidInput() {
	_, err := s.resolver.Resolve(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.Resolve(&layout.ResolveInput{GridWidth: 10, GridDepth: 10, PageWidth: 0, PageHeight: 10})
	s.True(errors.IsInvalidArgument(err))

	_, err = layout.NewResolver(&layout.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestParseFloorplan() {
	f, err := os.Open(filepath.Join("testdata", "floorplan.json"))
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	plan, err := layout.ParseFloorplan(f)
	s.Require().NoError(err)
	s.InDelta(2550, plan.PageWidth, 1e-9)
	s.InDelta(3300, plan.PageHeight, 1e-9)
	s.Require().Len(plan.Records, 3)

	items := plan.Items()
	s.Equal("Rectangle0", items[0].Name)
	s.Equal("Table", items[0].Key)
	s.InDelta(297, items[0].X, 1e-9)
	s.Equal(2, items[1].Direction)

	out, err := s.resolver.Resolve(&layout.ResolveInput{
		Items:      items,
		GridWidth:  20,
		GridDepth:  20,
		PageWidth:  plan.PageWidth,
		PageHeight: plan.PageHeight,
	})
	s.Require().NoError(err)
	s.Equal(entities.Coord{X: 2, Z: 3}, out.Items[0].Target)
	s.Equal("table", out.Items[0].Template.ID)
	s.True(out.Items[1].TemplateUnresolved)
	s.Equal("bench", out.Items[2].Template.ID)
}

func (s *ResolverTestSuite) TestParseFloorplanErrors() {
	testCases := []struct {
		name  string
		input string
	}{
		{"not json", "{"},
		{"empty", "[]"},
		{"no page size", `[{"name": "original", "width": 0, "height": 10}]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := layout.ParseFloorplan(strings.NewReader(tc.input))
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ResolverTestSuite) TestFacing() {
	testCases := []struct {
		code int
		dir  entities.Direction
		yaw  float64
	}{
		{0, entities.Up, 0},
		{1, entities.Down, 180},
		{2, entities.Left, 270},
		{3, entities.Right, 90},
		{7, entities.Up, 0},
	}

	for _, tc := range testCases {
		dir, yaw := layout.Facing(tc.code)
		s.Equal(tc.dir, dir)
		s.InDelta(tc.yaw, yaw, 1e-9)
	}
}
