package library

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const chestDoc = `# Chest

## Incline Bench Press

Difficulty: Intermediate

![Incline Bench Press](incline-bench-press.jpg)

1. Set the bench to a thirty degree incline.
2. Lower the bar to your upper chest.
3. Press back up to lockout.

> Keep your shoulder blades pinned to the bench.

## Push-Up

Difficulty: Beginner

![Push-Up](push-up.jpg)

1. Start in a high plank with hands under shoulders.
2. Lower until your chest nearly touches the floor.
3. Press back to the start.

- Brace your trunk throughout.

## Mystery Movement

Some prose with no steps and no media.
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("chest", []byte(chestDoc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if doc.Label != "Chest" {
		t.Errorf("Label = %q, want Chest", doc.Label)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(doc.Sections))
	}

	bench := doc.Sections[0]
	if bench.Title != "Incline Bench Press" {
		t.Errorf("Title = %q", bench.Title)
	}
	if bench.Difficulty != "Intermediate" {
		t.Errorf("Difficulty = %q, want Intermediate", bench.Difficulty)
	}
	if len(bench.Instructions) != 3 {
		t.Errorf("Instructions = %v, want 3 steps", bench.Instructions)
	}
	if !reflect.DeepEqual(bench.Media, []string{"incline-bench-press.jpg"}) {
		t.Errorf("Media = %v", bench.Media)
	}
	if len(bench.Notes) != 1 {
		t.Errorf("Notes = %v, want blockquote note", bench.Notes)
	}

	pushup := doc.Sections[1]
	if len(pushup.Notes) != 1 {
		t.Errorf("unordered list should land in notes, got %v", pushup.Notes)
	}

	if got := doc.Sections[2].Title; got != "Mystery Movement" {
		t.Errorf("third section title = %q", got)
	}
}

func TestParseDocumentMissingLabel(t *testing.T) {
	doc, err := ParseDocument("upper-back", []byte("## Bent-Over Row\n\n1. Hinge at the hips.\n"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Label != "Upper Back" {
		t.Errorf("Label = %q, want Upper Back (derived from slug)", doc.Label)
	}
}

func TestParseDocumentEmptySlug(t *testing.T) {
	if _, err := ParseDocument("  ", []byte("# X")); err == nil {
		t.Fatal("expected error for empty slug")
	}
}

func TestLoadDocumentsOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeDoc("shoulder.md", "# Shoulder\n\n## Lateral Raise\n\n1. Raise to shoulder height.\n")
	writeDoc("chest.md", "# Chest\n\n## Push-Up\n\n1. Lower and press.\n")

	docs, err := LoadDocuments(dir)
	if err != nil {
		t.Fatalf("LoadDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	// Lexical order keeps index construction deterministic.
	if docs[0].Slug != "chest" || docs[1].Slug != "shoulder" {
		t.Errorf("order = [%s, %s], want [chest, shoulder]", docs[0].Slug, docs[1].Slug)
	}
}
