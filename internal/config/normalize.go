package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizeInsights()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Library.DocumentsDir, err = expandPath(c.Library.DocumentsDir); err != nil {
		return fmt.Errorf("library.documents_dir: %w", err)
	}
	if c.Library.AssetsDir, err = expandPath(c.Library.AssetsDir); err != nil {
		return fmt.Errorf("library.assets_dir: %w", err)
	}
	c.InsightCache.Path = strings.TrimSpace(c.InsightCache.Path)
	if c.InsightCache.Path == "" {
		c.InsightCache.Path = defaultInsightCachePath()
	}
	if c.InsightCache.Path, err = expandPath(c.InsightCache.Path); err != nil {
		return fmt.Errorf("insight_cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.BaseURL = strings.TrimSpace(c.Catalog.BaseURL)
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaultCatalogBaseURL
	}
}

func (c *Config) normalizeInsights() {
	c.Insights.APIKey = strings.TrimSpace(c.Insights.APIKey)
	if c.Insights.APIKey == "" {
		if value, ok := os.LookupEnv("REPKIT_INSIGHTS_API_KEY"); ok {
			c.Insights.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("OPENROUTER_API_KEY"); ok {
			c.Insights.APIKey = strings.TrimSpace(value)
		}
	}
	c.Insights.BaseURL = strings.TrimSpace(c.Insights.BaseURL)
	if c.Insights.BaseURL == "" {
		c.Insights.BaseURL = defaultInsightsBaseURL
	}
	c.Insights.Model = strings.TrimSpace(c.Insights.Model)
	if c.Insights.Model == "" {
		c.Insights.Model = defaultInsightsModel
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
