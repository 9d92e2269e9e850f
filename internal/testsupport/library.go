package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLibraryDoc writes one muscle-group markdown document with a numbered
// two-step instruction block per exercise and returns the file path.
func WriteLibraryDoc(t testing.TB, dir, label string, exercises ...string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir library dir: %v", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", label)
	for _, name := range exercises {
		fmt.Fprintf(&sb, "## %s\n\n1. Set up for the movement.\n2. Perform one controlled rep.\n\n", name)
	}

	slug := strings.ToLower(strings.ReplaceAll(label, " ", "-"))
	path := filepath.Join(dir, slug+".md")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write library doc %s: %v", path, err)
	}
	return path
}
