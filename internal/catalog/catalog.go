// Package catalog holds the placement templates available to a building
// session and resolves layout lookup keys to them.
package catalog

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// Lookup resolves a layout key to a template
type Lookup interface {
	Resolve(name string) (*entities.Template, bool)
}

// Catalog is an immutable, ordered set of templates
type Catalog struct {
	templates []*entities.Template
	byID      map[string]*entities.Template
	byKey     map[string]*entities.Template
}

var _ Lookup = (*Catalog)(nil)

// New builds a catalog from templates in the given order. Aliases map an
// extra lookup key to a template ID.
func New(templates []*entities.Template, aliases map[string]string) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]*entities.Template, len(templates)),
		byKey: make(map[string]*entities.Template, len(templates)*2+len(aliases)),
	}

	for i, tpl := range templates {
		if tpl == nil {
			return nil, errors.InvalidArgumentf("template %d is nil", i)
		}
		if err := tpl.Validate(); err != nil {
			return nil, errors.Wrapf(err, "template %q", tpl.ID)
		}
		if _, exists := c.byID[tpl.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate template id %q", tpl.ID)
		}
		c.byID[tpl.ID] = tpl
		c.templates = append(c.templates, tpl)
	}

	// names and aliases never shadow an ID
	for _, tpl := range c.templates {
		c.byKey[normalize(tpl.ID)] = tpl
	}
	for _, tpl := range c.templates {
		if tpl.Name == "" {
			continue
		}
		if _, taken := c.byKey[normalize(tpl.Name)]; !taken {
			c.byKey[normalize(tpl.Name)] = tpl
		}
	}
	for alias, id := range aliases {
		tpl, ok := c.byID[id]
		if !ok {
			return nil, errors.NotFoundf("alias %q points to unknown template %q", alias, id)
		}
		key := normalize(alias)
		if existing, taken := c.byKey[key]; taken && existing != tpl {
			return nil, errors.AlreadyExistsf("alias %q collides with template %q", alias, existing.ID)
		}
		c.byKey[key] = tpl
	}

	return c, nil
}

// Resolve finds a template by ID, name or alias, ignoring case and
// surrounding whitespace
func (c *Catalog) Resolve(name string) (*entities.Template, bool) {
	tpl, ok := c.byKey[normalize(name)]
	return tpl, ok
}

// Get returns the template with the exact ID
func (c *Catalog) Get(id string) (*entities.Template, error) {
	tpl, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFoundf("template %q not found", id)
	}
	return tpl, nil
}

// List returns templates in declaration order
func (c *Catalog) List() []*entities.Template {
	out := make([]*entities.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len is the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// IndexOf returns the declaration index of id, or -1
func (c *Catalog) IndexOf(id string) int {
	for i, tpl := range c.templates {
		if tpl.ID == id {
			return i
		}
	}
	return -1
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type fileRule struct {
	ID   string `yaml:"id"`
	Kind string `yaml:"kind"`
}

type fileTemplate struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Category        string   `yaml:"category"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Group           string   `yaml:"group"`
	AllowedAdjacent []string `yaml:"allowed_adjacent"`
	Rules           []string `yaml:"rules"`
	EdgeSlots       []string `yaml:"edge_slots"`
	Tags            []string `yaml:"tags"`
}

type file struct {
	Rules     []fileRule        `yaml:"rules"`
	Templates []fileTemplate    `yaml:"templates"`
	Aliases   map[string]string `yaml:"aliases"`
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- catalog path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load parses a YAML catalog. Rules are declared once and shared by every
// template that names them.
func Load(r io.Reader) (*Catalog, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("catalog is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	rules := make(map[string]entities.ConstraintRule, len(doc.Rules))
	for _, fr := range doc.Rules {
		rule, err := buildRule(fr)
		if err != nil {
			return nil, err
		}
		if _, exists := rules[fr.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate rule id %q", fr.ID)
		}
		rules[fr.ID] = rule
	}

	templates := make([]*entities.Template, 0, len(doc.Templates))
	for _, ft := range doc.Templates {
		tpl, err := buildTemplate(ft, rules)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return New(templates, doc.Aliases)
}

func buildRule(fr fileRule) (entities.ConstraintRule, error) {
	if fr.ID == "" {
		return nil, errors.InvalidArgument("rule id is required")
	}
	switch normalize(fr.Kind) {
	case "", "adjacency":
		return constraints.NewAdjacencyRule(fr.ID), nil
	case "group":
		return constraints.NewGroupRule(fr.ID), nil
	default:
		return nil, errors.InvalidArgumentf("rule %q has unknown kind %q", fr.ID, fr.Kind)
	}
}

func buildTemplate(ft fileTemplate, rules map[string]entities.ConstraintRule) (*entities.Template, error) {
	category, err := entities.ParseCategory(ft.Category)
	if err != nil {
		return nil, errors.Wrapf(err, "template %q", ft.ID)
	}

	tpl := &entities.Template{
		ID:              ft.ID,
		Name:            ft.Name,
		Category:        category,
		Width:           ft.Width,
		Height:          ft.Height,
		ConstraintGroup: ft.Group,
		AllowedAdjacent: entities.NewAllowList(ft.AllowedAdjacent...),
		Tags:            ft.Tags,
	}
	if tpl.Name == "" {
		tpl.Name = tpl.ID
	}
	if !category.OccupiesCells() {
		if tpl.Width == 0 {
			tpl.Width = 1
		}
		if tpl.Height == 0 {
			tpl.Height = 1
		}
	}

	for _, id := range ft.Rules {
		rule, ok := rules[id]
		if !ok {
			return nil, errors.NotFoundf("template %q references unknown rule %q", ft.ID, id)
		}
		tpl.Rules = append(tpl.Rules, rule)
	}

	for _, name := range ft.EdgeSlots {
		slot, err := entities.ParseEdgeSlot(name)
		if err != nil {
			return nil, errors.Wrapf(err, "template %q", ft.ID)
		}
		tpl.EdgeSlots = append(tpl.EdgeSlots, slot)
	}

	return tpl, nil
}
