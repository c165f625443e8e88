package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"sonard/internal/catalog"
	"sonard/internal/config"
)

// buildSupplier picks the catalog source from cfg. A local file wins over a
// URL; with neither, the sample catalog is served. Remote catalogs are
// cached on disk when a cache dir is set, and the sample backs either
// source when fallback is allowed.
func buildSupplier(cfg config.Config, log zerolog.Logger) (catalog.Supplier, error) {
	var primary catalog.Supplier
	switch {
	case cfg.CatalogPath != "":
		primary = catalog.FileSupplier{Path: cfg.CatalogPath}
	case cfg.CatalogURL != "":
		timeout, err := cfg.CatalogTimeoutDuration()
		if err != nil {
			return nil, err
		}
		primary = catalog.NewHTTPSupplier(cfg.CatalogURL, timeout)
		if cfg.CatalogCacheDir != "" {
			cached, err := catalog.NewCacheSupplier(primary, cfg.CatalogCacheDir)
			if err != nil {
				return nil, fmt.Errorf("catalog cache: %w", err)
			}
			primary = cached
		}
	default:
		return catalog.SampleSupplier{}, nil
	}
	if !cfg.AllowSampleFallback {
		return primary, nil
	}
	return &catalog.FallbackSupplier{
		Primary:  primary,
		Fallback: catalog.SampleSupplier{},
		OnFallback: func(err error) {
			log.Warn().Err(err).Str("primary", primary.Name()).Msg("catalog unavailable, serving sample data")
		},
	}, nil
}
