package media

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolver(t *testing.T) {
	root := t.TempDir()
	asset := filepath.Join(root, "exercises", "push-up.jpg")
	if err := os.MkdirAll(filepath.Dir(asset), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(asset, []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(root)

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"plain filename", "push-up.jpg", asset},
		{"case insensitive", "Push-Up.JPG", asset},
		{"path prefix ignored", "img/push-up.jpg", asset},
		{"query stripped", "push-up.jpg?v=2", asset},
		{"unresolvable", "missing.jpg", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.ref); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolverMissingRoot(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "nope"))
	if got := r.Resolve("anything.jpg"); got != "" {
		t.Errorf("Resolve = %q, want empty", got)
	}
}
