package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"sonard/pkg/types"
)

// ErrCatalogUnavailable marks a load that could not reach its source.
// Malformed catalogs are reported with other errors so they are not masked
// by a fallback.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// IsUnavailable reports whether err is (or wraps) ErrCatalogUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrCatalogUnavailable) }

func unavailable(src string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCatalogUnavailable, src, err)
}

// Supplier loads a full catalog.
type Supplier interface {
	Name() string
	Load(ctx context.Context) ([]types.Event, error)
}

var fallbacksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "sonard",
		Subsystem: "catalog",
		Name:      "fallbacks_total",
		Help:      "Catalog loads served by a fallback supplier",
	},
	[]string{"primary", "fallback"},
)

func init() {
	prometheus.MustRegister(fallbacksTotal)
}

// SampleSupplier serves the built-in sample catalog.
type SampleSupplier struct{}

func (SampleSupplier) Name() string { return "sample" }

func (SampleSupplier) Load(context.Context) ([]types.Event, error) { return Sample(), nil }

// StaticSupplier serves a fixed list of events.
type StaticSupplier struct {
	Events []types.Event
}

func (s StaticSupplier) Name() string { return "static" }

func (s StaticSupplier) Load(context.Context) ([]types.Event, error) {
	return append([]types.Event(nil), s.Events...), nil
}

// FallbackSupplier tries Primary and, when it is unavailable, Fallback.
type FallbackSupplier struct {
	Primary  Supplier
	Fallback Supplier
	// OnFallback, if set, is told why the primary was skipped.
	OnFallback func(err error)
}

func (f *FallbackSupplier) Name() string { return f.Primary.Name() }

func (f *FallbackSupplier) Load(ctx context.Context) ([]types.Event, error) {
	events, err := f.Primary.Load(ctx)
	if err == nil || !IsUnavailable(err) || f.Fallback == nil {
		return events, err
	}
	if f.OnFallback != nil {
		f.OnFallback(err)
	}
	fallbacksTotal.WithLabelValues(f.Primary.Name(), f.Fallback.Name()).Inc()
	return f.Fallback.Load(ctx)
}
