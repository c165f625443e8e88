package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CORS configures cross-origin access to the HTTP API.
type CORS struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by Defaults.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// CatalogPath is a local .json/.yaml/.toml catalog. Takes precedence
	// over CatalogURL.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path" toml:"catalog_path"`
	CatalogURL  string `json:"catalog_url" yaml:"catalog_url" toml:"catalog_url"`
	// CatalogTimeout is a Go duration string, e.g. "5s".
	CatalogTimeout string `json:"catalog_timeout" yaml:"catalog_timeout" toml:"catalog_timeout"`
	// CatalogCacheDir keeps the last good remote catalog on disk.
	CatalogCacheDir string `json:"catalog_cache_dir" yaml:"catalog_cache_dir" toml:"catalog_cache_dir"`
	// WatchCatalog reloads when CatalogPath changes on disk.
	WatchCatalog bool `json:"watch_catalog" yaml:"watch_catalog" toml:"watch_catalog"`
	// AllowSampleFallback serves the built-in sample catalog when the
	// configured source is unreachable.
	AllowSampleFallback bool    `json:"allow_sample_fallback" yaml:"allow_sample_fallback" toml:"allow_sample_fallback"`
	CarouselStepPx      float64 `json:"carousel_step_px" yaml:"carousel_step_px" toml:"carousel_step_px"`
	CarouselFrameMS     int     `json:"carousel_frame_ms" yaml:"carousel_frame_ms" toml:"carousel_frame_ms"`
	LogLevel            string  `json:"log_level" yaml:"log_level" toml:"log_level"`
	// LogFormat is "json" or "console".
	LogFormat    string `json:"log_format" yaml:"log_format" toml:"log_format"`
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORS         CORS   `json:"cors" yaml:"cors" toml:"cors"`
}

// Defaults used for unspecified fields.
const (
	DefaultAddr            = ":8080"
	DefaultCatalogTimeout  = 5 * time.Second
	DefaultCarouselStepPx  = 1.0
	DefaultCarouselFrameMS = 16
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultMaxBodyBytes    = 1 << 20
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// ApplyEnv overlays SONARD_* variables onto cfg. lookup is usually
// os.LookupEnv. Malformed numeric or boolean values are reported.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []string
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, key)
				return
			}
			*dst = b
		}
	}
	str("SONARD_ADDR", &c.Addr)
	str("SONARD_CATALOG_PATH", &c.CatalogPath)
	str("SONARD_CATALOG_URL", &c.CatalogURL)
	str("SONARD_CATALOG_TIMEOUT", &c.CatalogTimeout)
	str("SONARD_CATALOG_CACHE_DIR", &c.CatalogCacheDir)
	str("SONARD_LOG_LEVEL", &c.LogLevel)
	str("SONARD_LOG_FORMAT", &c.LogFormat)
	boolean("SONARD_WATCH_CATALOG", &c.WatchCatalog)
	boolean("SONARD_ALLOW_SAMPLE_FALLBACK", &c.AllowSampleFallback)
	boolean("SONARD_CORS_ENABLED", &c.CORS.Enabled)
	if v, ok := lookup("SONARD_CAROUSEL_STEP_PX"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, "SONARD_CAROUSEL_STEP_PX")
		} else {
			c.CarouselStepPx = f
		}
	}
	if v, ok := lookup("SONARD_CAROUSEL_FRAME_MS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, "SONARD_CAROUSEL_FRAME_MS")
		} else {
			c.CarouselFrameMS = n
		}
	}
	if v, ok := lookup("SONARD_MAX_BODY_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, "SONARD_MAX_BODY_BYTES")
		} else {
			c.MaxBodyBytes = n
		}
	}
	if v, ok := lookup("SONARD_CORS_ORIGINS"); ok && v != "" {
		c.CORS.AllowedOrigins = SplitCSV(v)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment values: %s", strings.Join(errs, ", "))
	}
	return nil
}

// Defaults fills unspecified fields.
func (c *Config) Defaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.CatalogTimeout == "" {
		c.CatalogTimeout = DefaultCatalogTimeout.String()
	}
	if c.CarouselStepPx <= 0 {
		c.CarouselStepPx = DefaultCarouselStepPx
	}
	if c.CarouselFrameMS <= 0 {
		c.CarouselFrameMS = DefaultCarouselFrameMS
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Validate reports values Defaults cannot repair.
func (c Config) Validate() error {
	if _, err := c.CatalogTimeoutDuration(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	if c.WatchCatalog && c.CatalogPath == "" {
		return fmt.Errorf("watch_catalog requires catalog_path")
	}
	return nil
}

// CatalogTimeoutDuration parses CatalogTimeout; empty means the default.
func (c Config) CatalogTimeoutDuration() (time.Duration, error) {
	if c.CatalogTimeout == "" {
		return DefaultCatalogTimeout, nil
	}
	d, err := time.ParseDuration(c.CatalogTimeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("catalog_timeout must be a positive duration, got %q", c.CatalogTimeout)
	}
	return d, nil
}

// FrameInterval is CarouselFrameMS as a duration.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.CarouselFrameMS) * time.Millisecond
}

// SplitCSV splits a comma-separated list, trimming blanks and dropping
// empty items.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
