package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"repkit/internal/config"
	"repkit/internal/insightcache"
	"repkit/internal/library"
	"repkit/internal/logging"
	"repkit/internal/media"
	"repkit/internal/services/catalog"
	"repkit/internal/services/insights"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// loadIndex parses the library corpus and builds the lookup indexes with
// media resolved against the configured assets directory.
func (c *commandContext) loadIndex() (*library.Index, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	docs, err := library.LoadDocuments(cfg.Library.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("load library documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no library documents found in %s (add one markdown file per muscle group)", cfg.Library.DocumentsDir)
	}
	resolver := media.NewResolver(cfg.Library.AssetsDir)
	index := library.BuildIndex(docs, library.IndexOptions{ResolveMedia: resolver.Resolve})
	if index.ParseSkips > 0 {
		c.ensureLogger().Warn("skipped incomplete library sections",
			logging.Int("count", index.ParseSkips))
	}
	return index, nil
}

func (c *commandContext) insightsClient() (*insights.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return insights.NewClient(insights.Config{
		APIKey:         cfg.Insights.APIKey,
		BaseURL:        cfg.Insights.BaseURL,
		Model:          cfg.Insights.Model,
		Referer:        cfg.Insights.Referer,
		Title:          cfg.Insights.Title,
		TimeoutSeconds: cfg.Insights.TimeoutSeconds,
	}), nil
}

func (c *commandContext) catalogClient() (*catalog.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second}
	return catalog.New(cfg.Catalog.BaseURL, catalog.WithHTTPClient(httpClient))
}

// openCache opens the insight cache per configuration. Callers own Close.
func (c *commandContext) openCache() (*insightcache.Cache, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return insightcache.Open(cfg.CachePath(), c.ensureLogger())
}
