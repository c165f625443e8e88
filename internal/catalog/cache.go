package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"sonard/internal/common/fsutil"
	"sonard/pkg/types"
)

const cacheKey = "catalog.json"

// CacheSupplier stores every catalog Primary returns on disk and serves the
// last stored copy when Primary is unavailable.
type CacheSupplier struct {
	Primary Supplier
	d       *diskv.Diskv
}

// NewCacheSupplier caches Primary's catalogs under dir.
func NewCacheSupplier(primary Supplier, dir string) (*CacheSupplier, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	return &CacheSupplier{
		Primary: primary,
		d: diskv.New(diskv.Options{
			BasePath:     base,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1 << 20,
		}),
	}, nil
}

func (c *CacheSupplier) Name() string { return c.Primary.Name() }

func (c *CacheSupplier) Load(ctx context.Context) ([]types.Event, error) {
	events, err := c.Primary.Load(ctx)
	if err == nil {
		if b, merr := json.Marshal(events); merr == nil {
			// A failed write only costs the next outage its cached copy.
			_ = c.d.Write(cacheKey, b)
		}
		return events, nil
	}
	if !IsUnavailable(err) || !c.d.Has(cacheKey) {
		return nil, err
	}
	b, rerr := c.d.Read(cacheKey)
	if rerr != nil {
		return nil, err
	}
	var cached []types.Event
	if jerr := json.Unmarshal(b, &cached); jerr != nil {
		return nil, fmt.Errorf("catalog cache corrupt: %w", jerr)
	}
	return cached, nil
}
