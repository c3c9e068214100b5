package constraints

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// MissingRulesPolicy decides what a template without rules means for a
// neighbor check
type MissingRulesPolicy int

const (
	// AllowMissing lets a side with no rules impose nothing
	AllowMissing MissingRulesPolicy = iota
	// DenyMissing fails any check where one side has rules and the other has none
	DenyMissing
)

func (p MissingRulesPolicy) String() string {
	if p == DenyMissing {
		return "deny"
	}
	return "allow"
}

// ParseMissingRulesPolicy accepts "allow" or "deny"
func ParseMissingRulesPolicy(s string) (MissingRulesPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allow":
		return AllowMissing, nil
	case "deny":
		return DenyMissing, nil
	default:
		return AllowMissing, errors.InvalidArgumentf("unknown missing rules policy %q", s)
	}
}

// Side names which template's rule produced a verdict
type Side int

const (
	SideNone Side = iota
	SideCandidate
	SideNeighbor
)

func (s Side) String() string {
	switch s {
	case SideCandidate:
		return "candidate"
	case SideNeighbor:
		return "neighbor"
	default:
		return "none"
	}
}

// Verdict is the outcome of one candidate/neighbor check
type Verdict struct {
	Allowed bool
	// RuleID is the failing rule, or "missing_rules" under DenyMissing
	RuleID string
	// Side is the template whose rule failed
	Side Side
}

// MissingRulesID is reported when DenyMissing rejects a check
const MissingRulesID = "missing_rules"

// Config for the engine
type Config struct {
	MissingRules MissingRulesPolicy
}

// Engine runs both templates' rules against each other
type Engine struct {
	policy MissingRulesPolicy
}

// NewEngine creates an engine. A nil config uses AllowMissing.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Engine{policy: cfg.MissingRules}
}

// Policy returns the configured missing-rules policy
func (e *Engine) Policy() MissingRulesPolicy {
	return e.policy
}

// Check validates candidate against neighbor in both directions. A
// single-evaluation rule shared by both templates runs once.
func (e *Engine) Check(candidate, neighbor *entities.Template) Verdict {
	if candidate == nil || neighbor == nil {
		return Verdict{Allowed: true}
	}

	candHas, nbHas := candidate.HasConstraints(), neighbor.HasConstraints()
	if !candHas && !nbHas {
		return Verdict{Allowed: true}
	}
	if !candHas || !nbHas {
		if e.policy == AllowMissing {
			return Verdict{Allowed: true}
		}
		side := SideCandidate
		if !nbHas {
			side = SideNeighbor
		}
		return Verdict{Allowed: false, RuleID: MissingRulesID, Side: side}
	}

	evaluated := mapset.New[string]()

	for _, rule := range candidate.Rules {
		if rule.SingleEvaluation() {
			if evaluated.Has(rule.ID()) {
				continue
			}
			evaluated.Put(rule.ID())
		}
		if !rule.Validate(candidate, neighbor) {
			return Verdict{Allowed: false, RuleID: rule.ID(), Side: SideCandidate}
		}
	}

	for _, rule := range neighbor.Rules {
		if rule.SingleEvaluation() {
			if evaluated.Has(rule.ID()) {
				continue
			}
			evaluated.Put(rule.ID())
		}
		if !rule.Validate(neighbor, candidate) {
			return Verdict{Allowed: false, RuleID: rule.ID(), Side: SideNeighbor}
		}
	}

	return Verdict{Allowed: true}
}
