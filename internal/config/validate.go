package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. The insights API key is
// deliberately not required here: a plan composed without a generator
// degrades to library fallbacks instead of refusing to run.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validatePlan(); err != nil {
		return err
	}
	if err := c.validateInsights(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.BaseURL == "" {
		return errors.New("catalog.base_url must be set")
	}
	if c.Catalog.TimeoutSeconds <= 0 {
		return errors.New("catalog.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validatePlan() error {
	if c.Plan.EnrichmentConcurrency < 0 {
		return errors.New("plan.enrichment_concurrency must be zero or positive")
	}
	return nil
}

func (c *Config) validateInsights() error {
	if c.Insights.TimeoutSeconds <= 0 {
		return errors.New("insights.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
