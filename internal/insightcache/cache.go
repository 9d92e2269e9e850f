package insightcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"repkit/internal/logging"
	"repkit/internal/services/insights"
)

// schemaVersion is bumped when the cache layout changes; a mismatched
// database is recreated, losing only cached upstream responses.
const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS exercise_insights (
    entry_id   TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    cached_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS section_overviews (
    muscle_slug TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    cached_at   TEXT NOT NULL
);
`

// Cache provides lookups and stores for generated coaching content. A nil
// or disabled cache is safe to use; every operation becomes a no-op.
type Cache struct {
	db     *sql.DB
	lock   *flock.Flock
	logger *slog.Logger
}

// Open connects to the cache database at path, creating it when absent. If
// another process holds the cache lock, Open returns a disabled cache and
// no error.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	logger = logging.NewComponentLogger(logger, "insightcache")
	if path == "" {
		return &Cache{logger: logger}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("insight cache: ensure directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	held, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("insight cache: acquire lock: %w", err)
	}
	if !held {
		logger.Warn("cache lock held by another process, continuing without cache")
		return &Cache{logger: logger}, nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("insight cache: open db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("insight cache: apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{db: db, lock: lock, logger: logger}
	if err := cache.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return cache, nil
}

// Close releases the database and the cache lock.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	var err error
	if c.db != nil {
		err = c.db.Close()
		c.db = nil
	}
	if c.lock != nil {
		if unlockErr := c.lock.Unlock(); err == nil {
			err = unlockErr
		}
		c.lock = nil
	}
	return err
}

// Enabled reports whether the cache is backed by an open database.
func (c *Cache) Enabled() bool {
	return c != nil && c.db != nil
}

// LookupExercise returns the cached insights for a library entry id.
func (c *Cache) LookupExercise(ctx context.Context, entryID string) (insights.ExerciseInsights, bool) {
	var empty insights.ExerciseInsights
	if !c.Enabled() || entryID == "" {
		return empty, false
	}
	var payload string
	err := c.db.QueryRowContext(ctx,
		"SELECT payload FROM exercise_insights WHERE entry_id = ?", entryID,
	).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.logger.Warn("exercise lookup failed", logging.String("entry_id", entryID), logging.Error(err))
		}
		return empty, false
	}
	var parsed insights.ExerciseInsights
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		c.logger.Warn("discarding undecodable cache row", logging.String("entry_id", entryID), logging.Error(err))
		return empty, false
	}
	return parsed, true
}

// StoreExercise caches the insights generated for a library entry id.
func (c *Cache) StoreExercise(ctx context.Context, entryID string, value insights.ExerciseInsights) error {
	if !c.Enabled() || entryID == "" {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("insight cache: encode exercise payload: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO exercise_insights (entry_id, payload, cached_at) VALUES (?, ?, ?)
         ON CONFLICT(entry_id) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		entryID, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insight cache: store exercise: %w", err)
	}
	return nil
}

// LookupOverview returns the cached section overview for a muscle slug.
func (c *Cache) LookupOverview(ctx context.Context, muscleSlug string) (insights.SectionOverview, bool) {
	var empty insights.SectionOverview
	if !c.Enabled() || muscleSlug == "" {
		return empty, false
	}
	var payload string
	err := c.db.QueryRowContext(ctx,
		"SELECT payload FROM section_overviews WHERE muscle_slug = ?", muscleSlug,
	).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.logger.Warn("overview lookup failed", logging.String("muscle", muscleSlug), logging.Error(err))
		}
		return empty, false
	}
	var parsed insights.SectionOverview
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return empty, false
	}
	return parsed, true
}

// StoreOverview caches the overview generated for a muscle slug.
func (c *Cache) StoreOverview(ctx context.Context, muscleSlug string, value insights.SectionOverview) error {
	if !c.Enabled() || muscleSlug == "" {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("insight cache: encode overview payload: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO section_overviews (muscle_slug, payload, cached_at) VALUES (?, ?, ?)
         ON CONFLICT(muscle_slug) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		muscleSlug, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insight cache: store overview: %w", err)
	}
	return nil
}

// Clear removes every cached row.
func (c *Cache) Clear(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	for _, table := range []string{"exercise_insights", "section_overviews"} {
		if _, err := c.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("insight cache: clear %s: %w", table, err)
		}
	}
	return nil
}

// Stats reports cached row counts per table.
func (c *Cache) Stats(ctx context.Context) (exercises, overviews int, err error) {
	if !c.Enabled() {
		return 0, 0, nil
	}
	if err = c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM exercise_insights").Scan(&exercises); err != nil {
		return 0, 0, fmt.Errorf("insight cache: count exercises: %w", err)
	}
	if err = c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM section_overviews").Scan(&overviews); err != nil {
		return 0, 0, fmt.Errorf("insight cache: count overviews: %w", err)
	}
	return exercises, overviews, nil
}

func (c *Cache) initSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("insight cache: create schema: %w", err)
	}

	var version int
	err := c.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := c.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("insight cache: record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("insight cache: read schema version: %w", err)
	}

	if version != schemaVersion {
		// Stale layout: drop and recreate. Cached responses are disposable.
		for _, stmt := range []string{
			"DROP TABLE IF EXISTS exercise_insights",
			"DROP TABLE IF EXISTS section_overviews",
			"DELETE FROM schema_version",
		} {
			if _, err := c.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("insight cache: reset schema: %w", err)
			}
		}
		if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("insight cache: recreate schema: %w", err)
		}
		if _, err := c.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("insight cache: record schema version: %w", err)
		}
	}
	return nil
}
