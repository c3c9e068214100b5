package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/constraints"
	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
	"github.com/KirkDiggler/rpg-grid/internal/testutils/builders"
)

// Template IDs of the test catalog
const (
	TemplateFloor = "floor"
	TemplateWall  = "wall"
	TemplateBed   = "bed"
	TemplateSofa  = "sofa"
	TemplateTable = "table"
	TemplateCrate = "crate"
	TemplateChair = "chair"
)

// CreateTestCatalog returns a catalog covering every category. Bed, sofa
// and table share one allow-list rule: sofa and table may touch, bed only
// touches other bedroom furniture. Crate has no rules.
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	shared := constraints.NewAdjacencyRule("furniture")

	templates := []*entities.Template{
		builders.NewTemplateBuilder(TemplateFloor).WithName("Floor").
			WithCategory(entities.FloorObject).Build(),
		builders.NewTemplateBuilder(TemplateWall).WithName("Wall").
			WithCategory(entities.WallObject).Build(),
		builders.NewTemplateBuilder(TemplateBed).WithName("Bed").WithSize(2, 2).
			WithGroup("bedroom").Allowing("bedroom").WithRules(shared).Build(),
		builders.NewTemplateBuilder(TemplateSofa).WithName("Sofa").WithSize(2, 1).
			WithGroup("seating").Allowing("surfaces").WithRules(shared).Build(),
		builders.NewTemplateBuilder(TemplateTable).WithName("Table").
			WithGroup("surfaces").Allowing("seating").WithRules(shared).Build(),
		builders.NewTemplateBuilder(TemplateCrate).WithName("Crate").Build(),
		builders.NewTemplateBuilder(TemplateChair).WithName("Chair").
			WithCategory(entities.LooseObject).Build(),
	}

	c, err := catalog.New(templates, map[string]string{"couch": TemplateSofa})
	require.NoError(t, err, "failed to build test catalog")
	return c
}

// CreateTestLayers returns count unit-cell layers of width x depth stacked 3 apart
func CreateTestLayers(t *testing.T, width, depth, count int) []*grid.Grid {
	layers, err := grid.NewLayers(&grid.Config{
		Width:    width,
		Depth:    depth,
		CellSize: 1,
	}, count, 3)
	require.NoError(t, err, "failed to create test layers")
	return layers
}
