package insightcache

import (
	"context"
	"path/filepath"
	"testing"

	"repkit/internal/services/insights"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "insights.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	want := insights.ExerciseInsights{
		Description: "Press with control.",
		Sets:        "3",
		Cues:        []string{"brace", "tuck elbows"},
	}
	if err := cache.StoreExercise(ctx, "chest/push-up", want); err != nil {
		t.Fatalf("StoreExercise: %v", err)
	}

	got, ok := cache.LookupExercise(ctx, "chest/push-up")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Description != want.Description || len(got.Cues) != 2 {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, ok := cache.LookupExercise(ctx, "chest/unknown"); ok {
		t.Error("unexpected hit for unknown entry")
	}
}

func TestCacheOverviewUpsert(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	first := insights.SectionOverview{Focus: "pressing"}
	second := insights.SectionOverview{Focus: "pulling"}
	if err := cache.StoreOverview(ctx, "chest", first); err != nil {
		t.Fatal(err)
	}
	if err := cache.StoreOverview(ctx, "chest", second); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.LookupOverview(ctx, "chest")
	if !ok || got.Focus != "pulling" {
		t.Errorf("got %+v ok=%v, want latest write", got, ok)
	}
}

func TestCacheSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "insights.db")

	cache, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.StoreExercise(ctx, "arms/barbell-curl", insights.ExerciseInsights{Description: "Curl."}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if _, ok := reopened.LookupExercise(ctx, "arms/barbell-curl"); !ok {
		t.Error("cached row lost across reopen")
	}
}

func TestCacheDisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	cache, err := Open("", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	if cache.Enabled() {
		t.Error("cache with no path should be disabled")
	}
	if err := cache.StoreExercise(ctx, "x", insights.ExerciseInsights{}); err != nil {
		t.Errorf("disabled store should be a no-op: %v", err)
	}
	if _, ok := cache.LookupExercise(ctx, "x"); ok {
		t.Error("disabled lookup should miss")
	}
}

func TestCacheLockContention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.db")

	holder, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer holder.Close()

	second, err := Open(path, nil)
	if err != nil {
		t.Fatalf("contended open should not fail: %v", err)
	}
	defer second.Close()

	if second.Enabled() {
		t.Error("second opener should degrade to disabled cache")
	}
}

func TestCacheClearAndStats(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t)

	_ = cache.StoreExercise(ctx, "a", insights.ExerciseInsights{})
	_ = cache.StoreOverview(ctx, "b", insights.SectionOverview{})

	exercises, overviews, err := cache.Stats(ctx)
	if err != nil || exercises != 1 || overviews != 1 {
		t.Fatalf("Stats = %d/%d err=%v", exercises, overviews, err)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	exercises, overviews, err = cache.Stats(ctx)
	if err != nil || exercises != 0 || overviews != 0 {
		t.Errorf("after clear: %d/%d err=%v", exercises, overviews, err)
	}
}
