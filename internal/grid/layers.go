package grid

import (
	"github.com/KirkDiggler/rpg-grid/internal/errors"
)

// NewLayers allocates count grids that share base's footprint, stacked
// layerHeight apart on Y. Layer i sits at base.Origin.Y + layerHeight*i.
func NewLayers(base *Config, count int, layerHeight float64) ([]*Grid, error) {
	if base == nil {
		return nil, errors.InvalidArgument("base config is required")
	}
	if count <= 0 {
		return nil, errors.InvalidArgumentf("layer count must be positive, got %d", count)
	}
	if count > 1 && layerHeight <= 0 {
		return nil, errors.InvalidArgumentf("layer height must be positive, got %g", layerHeight)
	}

	layers := make([]*Grid, count)
	for i := range layers {
		cfg := *base
		cfg.Index = i
		cfg.Origin.Y = base.Origin.Y + layerHeight*float64(i)

		g, err := New(&cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create layer %d", i)
		}
		layers[i] = g
	}

	return layers, nil
}
