package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDataDir               = "~/.local/share/repkit"
	defaultDocumentsDir          = "~/.local/share/repkit/library"
	defaultAssetsDir             = "~/.local/share/repkit/assets"
	defaultCatalogBaseURL        = "https://wger.de/api/v2"
	defaultCatalogTimeoutSeconds = 10
	defaultInsightsBaseURL       = "https://openrouter.ai/api/v1/chat/completions"
	defaultInsightsModel         = "google/gemini-3-flash-preview"
	defaultInsightsReferer       = "https://github.com/repkit/repkit"
	defaultInsightsTitle         = "Repkit Insights"
	defaultInsightsTimeout       = 20
	defaultExercisesPerMuscle    = 4
	defaultEnrichConcurrency     = 4
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Library: Library{
			DocumentsDir: defaultDocumentsDir,
			AssetsDir:    defaultAssetsDir,
		},
		Catalog: Catalog{
			BaseURL:        defaultCatalogBaseURL,
			TimeoutSeconds: defaultCatalogTimeoutSeconds,
		},
		Insights: Insights{
			BaseURL:        defaultInsightsBaseURL,
			Model:          defaultInsightsModel,
			Referer:        defaultInsightsReferer,
			Title:          defaultInsightsTitle,
			TimeoutSeconds: defaultInsightsTimeout,
		},
		Plan: Plan{
			ExercisesPerMuscle:    defaultExercisesPerMuscle,
			EnrichmentConcurrency: defaultEnrichConcurrency,
		},
		InsightCache: InsightCache{
			Enabled: true,
			Path:    defaultInsightCachePath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultInsightCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "repkit", "insights.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/repkit/insights.db"
	}
	return filepath.Join(home, ".cache", "repkit", "insights.db")
}
