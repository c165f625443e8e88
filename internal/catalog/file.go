package catalog

import (
	"context"
	"os"

	"sonard/internal/common/fsutil"
	"sonard/pkg/types"
)

// FileSupplier reads a catalog from a .json, .yaml/.yml or .toml file.
type FileSupplier struct {
	Path string
}

func (f FileSupplier) Name() string { return "file" }

func (f FileSupplier) Load(ctx context.Context) ([]types.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := fsutil.ExpandHome(f.Path)
	if err != nil {
		return nil, unavailable(f.Path, err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, unavailable(p, err)
	}
	return Decode(b, formatOf(p))
}
