package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-grid/internal/config"
	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := config.Default()
	s.Require().NoError(cfg.Validate())

	s.Equal(50051, cfg.Server.Port)
	s.Equal(20, cfg.Grid.Width)
	s.Equal(1, cfg.Grid.Layers)
	s.True(cfg.AutoDeselect())
	s.Equal(constraints.AllowMissing, cfg.MissingRulesPolicy())
	s.Equal(placement.CheckTopOccupant, cfg.NeighborCheck())
	s.Nil(cfg.RemovableCategories())
	s.Equal(24*time.Hour, cfg.Redis.SnapshotTTL)
}

func (s *ConfigTestSuite) TestParseOverrides() {
	cfg, err := config.Parse(strings.NewReader(`
server:
  port: 9090
grid:
  width: 12
  depth: 8
  cell_size: 2.5
  origin: {x: 1, y: 0.5, z: -3}
  layers: 3
  layer_height: 4
  floor_y_offset: 0.05
placement:
  auto_deselect: false
  missing_rules: deny
  neighbor_check: same_slot
  removable_categories: [loose, grid_object]
  floor_template: floor_tile
catalog:
  path: configs/catalog.yaml
redis:
  address: localhost:6379
  snapshot_ttl: 90m
`))
	s.Require().NoError(err)

	s.Equal(9090, cfg.Server.Port)
	s.False(cfg.AutoDeselect())
	s.Equal(constraints.DenyMissing, cfg.MissingRulesPolicy())
	s.Equal(placement.CheckSameSlot, cfg.NeighborCheck())
	s.Equal([]entities.Category{entities.LooseObject, entities.GridObject}, cfg.RemovableCategories())
	s.Equal(90*time.Minute, cfg.Redis.SnapshotTTL)
	s.Equal("floor_tile", cfg.Placement.FloorTemplate)

	base := cfg.GridBase()
	s.Equal(12, base.Width)
	s.Equal(8, base.Depth)
	s.InDelta(2.5, base.CellSize, 1e-9)
	s.Equal(entities.Vec3{X: 1, Y: 0.5, Z: -3}, base.Origin)
}

func (s *ConfigTestSuite) TestEmptyDocumentUsesDefaults() {
	cfg, err := config.Parse(strings.NewReader(""))
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestValidationErrors() {
	testCases := []struct {
		name  string
		input string
		field string
	}{
		{"bad port", "server: {port: 70000}", "server.port"},
		{"negative width", "grid: {width: -1}", "grid.width"},
		{"unknown policy", "placement: {missing_rules: maybe}", "placement.missing_rules"},
		{"unknown neighbor check", "placement: {neighbor_check: diagonal}", "placement.neighbor_check"},
		{"unknown category", "placement: {removable_categories: [zone]}", "placement.removable_categories"},
		{"negative radius", "placement: {loose_pick_radius: -1}", "placement.loose_pick_radius"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Parse(strings.NewReader(tc.input))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}

	_, err := config.Parse(strings.NewReader("grid: ["))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "grid.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("grid: {width: 6, depth: 6}\n"), 0o600))

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(6, cfg.Grid.Width)

	_, err = config.Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestExampleConfigLoads() {
	cfg, err := config.Load(filepath.Join("..", "..", "configs", "config.example.yaml"))
	s.Require().NoError(err)

	s.Equal(2, cfg.Grid.Layers)
	s.Equal("floor_tile", cfg.Placement.FloorTemplate)
	s.Equal(placement.CheckTopOccupant, cfg.NeighborCheck())
	s.Empty(cfg.Redis.Address)
}
