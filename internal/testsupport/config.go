// Package testsupport provides shared helpers for repkit tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"repkit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Library.DocumentsDir = filepath.Join(base, "library")
	cfg.Library.AssetsDir = filepath.Join(base, "assets")
	cfg.InsightCache.Enabled = false
	cfg.Insights.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCachePath enables the insight cache at the given path.
func WithCachePath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.InsightCache.Enabled = true
		cfg.InsightCache.Path = path
	}
}

// WithCatalogBaseURL points the catalog client at a test server.
func WithCatalogBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.BaseURL = baseURL
	}
}
