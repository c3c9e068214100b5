// Package config loads the YAML configuration of the grid server and the
// offline layout tool
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
)

// Config holds all server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Grid      GridConfig      `yaml:"grid"`
	Placement PlacementConfig `yaml:"placement"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Redis     RedisConfig     `yaml:"redis"`
}

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// GridConfig sizes every layer of a building session
type GridConfig struct {
	Width        int           `yaml:"width"`
	Depth        int           `yaml:"depth"`
	CellSize     float64       `yaml:"cell_size"`
	Origin       entities.Vec3 `yaml:"origin"`
	Layers       int           `yaml:"layers"`
	LayerHeight  float64       `yaml:"layer_height"`
	FloorYOffset float64       `yaml:"floor_y_offset"`
}

// PlacementConfig holds controller options
type PlacementConfig struct {
	AutoDeselect *bool `yaml:"auto_deselect"`
	// MissingRules is "allow" or "deny"
	MissingRules string `yaml:"missing_rules"`
	// NeighborCheck is "top" or "same_slot"
	NeighborCheck       string   `yaml:"neighbor_check"`
	RemovableCategories []string `yaml:"removable_categories"`
	LoosePickRadius     float64  `yaml:"loose_pick_radius"`
	// FloorTemplate fills the grid before a layout is applied when set
	FloorTemplate string `yaml:"floor_template"`
}

// CatalogConfig locates the template catalog
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig holds Redis connection settings. An empty address keeps
// snapshots in memory.
type RedisConfig struct {
	Address     string        `yaml:"address"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes YAML configuration, applies defaults and validates it
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 50051
	}
	if c.Grid.Width == 0 {
		c.Grid.Width = 20
	}
	if c.Grid.Depth == 0 {
		c.Grid.Depth = 20
	}
	if c.Grid.CellSize == 0 {
		c.Grid.CellSize = 1
	}
	if c.Grid.Layers == 0 {
		c.Grid.Layers = 1
	}
	if c.Grid.LayerHeight == 0 {
		c.Grid.LayerHeight = 3
	}
	if c.Placement.AutoDeselect == nil {
		autoDeselect := true
		c.Placement.AutoDeselect = &autoDeselect
	}
	if c.Placement.MissingRules == "" {
		c.Placement.MissingRules = constraints.AllowMissing.String()
	}
	if c.Placement.NeighborCheck == "" {
		c.Placement.NeighborCheck = placement.CheckTopOccupant.String()
	}
	if c.Redis.SnapshotTTL == 0 {
		c.Redis.SnapshotTTL = 24 * time.Hour
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be in 1-65535, got %d", c.Server.Port)
	}
	errors.ValidatePositive("grid.width", c.Grid.Width, vb)
	errors.ValidatePositive("grid.depth", c.Grid.Depth, vb)
	errors.ValidatePositiveFloat("grid.cell_size", c.Grid.CellSize, vb)
	errors.ValidatePositive("grid.layers", c.Grid.Layers, vb)
	errors.ValidatePositiveFloat("grid.layer_height", c.Grid.LayerHeight, vb)
	if c.Placement.LoosePickRadius < 0 {
		vb.Fieldf("placement.loose_pick_radius", "must not be negative, got %g", c.Placement.LoosePickRadius)
	}
	if _, err := constraints.ParseMissingRulesPolicy(c.Placement.MissingRules); err != nil {
		vb.InvalidField("placement.missing_rules", c.Placement.MissingRules)
	}
	if _, err := placement.ParseNeighborCheck(c.Placement.NeighborCheck); err != nil {
		vb.InvalidField("placement.neighbor_check", c.Placement.NeighborCheck)
	}
	for _, name := range c.Placement.RemovableCategories {
		if _, err := entities.ParseCategory(name); err != nil {
			vb.InvalidField("placement.removable_categories", name)
		}
	}
	if c.Redis.SnapshotTTL < 0 {
		vb.Fieldf("redis.snapshot_ttl", "must not be negative, got %s", c.Redis.SnapshotTTL)
	}

	return vb.Build()
}

// GridBase is the layer-0 grid configuration
func (c *Config) GridBase() *grid.Config {
	return &grid.Config{
		Width:    c.Grid.Width,
		Depth:    c.Grid.Depth,
		CellSize: c.Grid.CellSize,
		Origin:   c.Grid.Origin,
	}
}

// MissingRulesPolicy parses the configured policy
func (c *Config) MissingRulesPolicy() constraints.MissingRulesPolicy {
	policy, err := constraints.ParseMissingRulesPolicy(c.Placement.MissingRules)
	if err != nil {
		return constraints.AllowMissing
	}
	return policy
}

// NeighborCheck parses the configured neighbor check
func (c *Config) NeighborCheck() placement.NeighborCheck {
	check, err := placement.ParseNeighborCheck(c.Placement.NeighborCheck)
	if err != nil {
		return placement.CheckTopOccupant
	}
	return check
}

// RemovableCategories parses the configured removal filter; nil means all
func (c *Config) RemovableCategories() []entities.Category {
	var out []entities.Category
	for _, name := range c.Placement.RemovableCategories {
		if cat, err := entities.ParseCategory(name); err == nil {
			out = append(out, cat)
		}
	}
	return out
}

// AutoDeselect reports whether a successful place clears the selection
func (c *Config) AutoDeselect() bool {
	return c.Placement.AutoDeselect == nil || *c.Placement.AutoDeselect
}
