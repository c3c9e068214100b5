package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
)

type countingRule struct {
	id     string
	single bool
	result bool
	calls  int
}

func (r *countingRule) ID() string             { return r.id }
func (r *countingRule) SingleEvaluation() bool { return r.single }
func (r *countingRule) Validate(_, _ *entities.Template) bool {
	r.calls++
	return r.result
}

type EngineTestSuite struct {
	suite.Suite
	adjacency *constraints.AdjacencyRule

	sofa  *entities.Template
	table *entities.Template
	lamp  *entities.Template
	rug   *entities.Template
	bare  *entities.Template
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.adjacency = constraints.NewAdjacencyRule("adjacency")
	rules := []entities.ConstraintRule{s.adjacency}

	s.sofa = &entities.Template{ID: "sofa", Name: "Sofa", ConstraintGroup: "seating",
		AllowedAdjacent: entities.NewAllowList("surfaces"), Rules: rules}
	s.table = &entities.Template{ID: "table", Name: "Table", ConstraintGroup: "surfaces",
		AllowedAdjacent: entities.NewAllowList("Lamp"), Rules: rules}
	s.lamp = &entities.Template{ID: "lamp", Name: "Lamp", ConstraintGroup: "lighting", Rules: rules}
	s.rug = &entities.Template{ID: "rug", Name: "Rug", ConstraintGroup: "seating",
		Rules: []entities.ConstraintRule{constraints.NewGroupRule("same_group")}}
	s.bare = &entities.Template{ID: "crate", Name: "Crate"}
}

func (s *EngineTestSuite) TestAdjacencyRuleIsSymmetric() {
	all := []*entities.Template{s.sofa, s.table, s.lamp, s.rug, s.bare}
	for _, a := range all {
		for _, b := range all {
			s.Equal(s.adjacency.Validate(a, b), s.adjacency.Validate(b, a), "%s/%s", a.ID, b.ID)
		}
	}

	s.True(s.adjacency.Validate(s.sofa, s.table))
	s.True(s.adjacency.Validate(s.lamp, s.table))
	s.False(s.adjacency.Validate(s.sofa, s.lamp))
	s.True(s.adjacency.SingleEvaluation())
}

func (s *EngineTestSuite) TestEngineBothDirections() {
	engine := constraints.NewEngine(nil)

	s.True(engine.Check(s.sofa, s.table).Allowed)
	s.True(engine.Check(s.table, s.sofa).Allowed)

	v := engine.Check(s.sofa, s.lamp)
	s.False(v.Allowed)
	s.Equal("adjacency", v.RuleID)
	s.Equal(constraints.SideCandidate, v.Side)
}

func (s *EngineTestSuite) TestGroupRule() {
	engine := constraints.NewEngine(nil)

	// rug's group rule passes, sofa's allow-list does not name rug
	v := engine.Check(s.rug, s.sofa)
	s.False(v.Allowed)
	s.Equal(constraints.SideNeighbor, v.Side)

	v = engine.Check(s.rug, s.table)
	s.False(v.Allowed)
	s.Equal("same_group", v.RuleID)
	s.Equal(constraints.SideCandidate, v.Side)

	other := &entities.Template{ID: "cushion", ConstraintGroup: "seating",
		Rules: []entities.ConstraintRule{constraints.NewGroupRule("same_group")}}
	s.True(engine.Check(s.rug, other).Allowed)
}

func (s *EngineTestSuite) TestMissingRulesPolicy() {
	allow := constraints.NewEngine(&constraints.Config{MissingRules: constraints.AllowMissing})
	s.True(allow.Check(s.sofa, s.bare).Allowed)
	s.True(allow.Check(s.bare, s.sofa).Allowed)
	s.True(allow.Check(s.bare, s.bare).Allowed)

	deny := constraints.NewEngine(&constraints.Config{MissingRules: constraints.DenyMissing})
	v := deny.Check(s.sofa, s.bare)
	s.False(v.Allowed)
	s.Equal(constraints.MissingRulesID, v.RuleID)
	s.Equal(constraints.SideNeighbor, v.Side)

	v = deny.Check(s.bare, s.sofa)
	s.False(v.Allowed)
	s.Equal(constraints.SideCandidate, v.Side)

	s.True(deny.Check(s.bare, s.bare).Allowed)
}

func (s *EngineTestSuite) TestSingleEvaluationDeduplicatesByID() {
	shared := &countingRule{id: "shared", single: true, result: true}
	a := &entities.Template{ID: "a", Rules: []entities.ConstraintRule{shared}}
	b := &entities.Template{ID: "b", Rules: []entities.ConstraintRule{shared}}

	s.True(constraints.NewEngine(nil).Check(a, b).Allowed)
	s.Equal(1, shared.calls)

	twin := &countingRule{id: "shared", single: true, result: true}
	c := &entities.Template{ID: "c", Rules: []entities.ConstraintRule{twin}}
	s.True(constraints.NewEngine(nil).Check(a, c).Allowed)
	s.Equal(2, shared.calls)
	s.Equal(0, twin.calls)
}

func (s *EngineTestSuite) TestRepeatedRulesRunPerSide() {
	repeated := &countingRule{id: "repeat", single: false, result: true}
	a := &entities.Template{ID: "a", Rules: []entities.ConstraintRule{repeated}}
	b := &entities.Template{ID: "b", Rules: []entities.ConstraintRule{repeated}}

	s.True(constraints.NewEngine(nil).Check(a, b).Allowed)
	s.Equal(2, repeated.calls)
}

func (s *EngineTestSuite) TestParseMissingRulesPolicy() {
	p, err := constraints.ParseMissingRulesPolicy("DENY")
	s.Require().NoError(err)
	s.Equal(constraints.DenyMissing, p)

	p, err = constraints.ParseMissingRulesPolicy("")
	s.Require().NoError(err)
	s.Equal(constraints.AllowMissing, p)

	_, err = constraints.ParseMissingRulesPolicy("maybe")
	s.Error(err)
}
