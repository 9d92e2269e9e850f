package library

import (
	"reflect"
	"testing"
)

func fixtureDocs(t *testing.T) []ParsedDocument {
	t.Helper()
	chest, err := ParseDocument("chest", []byte(chestDoc))
	if err != nil {
		t.Fatal(err)
	}
	shoulder, err := ParseDocument("shoulder", []byte(`# Shoulder

## Push-Up (Side View)

![Push-Up side view](push-up-side.jpg)

1. Set up in a high plank.
2. Lower with elbows at forty five degrees.

## Lateral Raise

1. Raise the dumbbells to shoulder height.
2. Lower under control.
`))
	if err != nil {
		t.Fatal(err)
	}
	return []ParsedDocument{chest, shoulder}
}

func TestBuildIndexRetention(t *testing.T) {
	idx := BuildIndex(fixtureDocs(t), IndexOptions{})

	// "Mystery Movement" has neither steps nor media.
	if idx.ParseSkips != 1 {
		t.Errorf("ParseSkips = %d, want 1", idx.ParseSkips)
	}
	if len(idx.Entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(idx.Entries))
	}
}

func TestBuildIndexMediaResolver(t *testing.T) {
	resolver := func(string) string { return "" } // nothing resolvable
	idx := BuildIndex(fixtureDocs(t), IndexOptions{ResolveMedia: resolver})

	for _, entry := range idx.Entries {
		if len(entry.Media) != 0 {
			t.Errorf("entry %s kept unresolvable media %v", entry.ID, entry.Media)
		}
	}
	// Sections with instruction steps survive even with no resolvable media.
	if len(idx.Entries) != 4 {
		t.Errorf("entries = %d, want 4", len(idx.Entries))
	}
}

func TestIndexLookups(t *testing.T) {
	idx := BuildIndex(fixtureDocs(t), IndexOptions{})

	entry, ok := idx.ExactLookup("incline bench press")
	if !ok || entry.Name != "Incline Bench Press" {
		t.Fatalf("exact lookup failed: %v %v", entry, ok)
	}

	// Both push-up variants share the descriptor-free core key.
	candidates := idx.CoreCandidates("pushup")
	if len(candidates) != 2 {
		t.Fatalf("core candidates = %d, want 2", len(candidates))
	}
	if candidates[0].MuscleSlug != "chest" {
		t.Errorf("first core candidate from %s, want chest (registration order)", candidates[0].MuscleSlug)
	}

	// "bench press" drops one token of "incline bench press"... but incline
	// is a descriptor, so the core is already "bench press" and aliases are
	// its one-token-dropped forms.
	bench, _ := idx.ExactLookup("incline bench press")
	wantAliases := []string{"press", "bench"}
	if !reflect.DeepEqual(bench.AliasKeys, wantAliases) {
		t.Errorf("AliasKeys = %v, want %v", bench.AliasKeys, wantAliases)
	}
	if got := idx.AliasCandidates("bench"); len(got) != 1 || got[0] != bench {
		t.Errorf("alias lookup for bench = %v", got)
	}
}

func TestCanonicalCollapsesVariants(t *testing.T) {
	idx := BuildIndex(fixtureDocs(t), IndexOptions{})

	variant, ok := idx.ExactLookup("pushup side view")
	if !ok {
		t.Fatal("side-view variant not registered")
	}
	canonical := idx.Canonical(variant)
	if canonical.ID != "chest/push-up" {
		t.Errorf("Canonical = %s, want chest/push-up", canonical.ID)
	}
}

func TestResolveMuscle(t *testing.T) {
	idx := BuildIndex(fixtureDocs(t), IndexOptions{})

	tests := []struct {
		name    string
		queries []string
		want    string
		ok      bool
	}{
		{"slug", []string{"chest"}, "chest", true},
		{"label casing", []string{"CHEST"}, "chest", true},
		{"fuzzy label", []string{"shoulders"}, "shoulder", true},
		{"first usable query wins", []string{"", "chest"}, "chest", true},
		{"unresolvable", []string{"quadriceps"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			muscle, ok := idx.ResolveMuscle(tt.queries...)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && muscle.Slug != tt.want {
				t.Errorf("muscle = %s, want %s", muscle.Slug, tt.want)
			}
		})
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	a := BuildIndex(fixtureDocs(t), IndexOptions{})
	b := BuildIndex(fixtureDocs(t), IndexOptions{})

	if len(a.Entries) != len(b.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(a.Entries), len(b.Entries))
	}
	for i := range a.Entries {
		if a.Entries[i].ID != b.Entries[i].ID {
			t.Errorf("entry %d: %s vs %s", i, a.Entries[i].ID, b.Entries[i].ID)
		}
	}
}
