package main

import (
	"github.com/KirkDiggler/rpg-grid/internal/catalog"
	"github.com/KirkDiggler/rpg-grid/internal/config"
)

const defaultCatalogPath = "configs/catalog.yaml"

// loadConfig reads the config file when one is given and applies the
// catalog override
func loadConfig(path, catalogPath string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.LoadFile(cfg.Catalog.Path)
}
