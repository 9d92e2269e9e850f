// Package media resolves library document media references against the
// bundled asset directory. Unresolvable references yield an empty result,
// never an error; exercises without media simply carry none.
package media

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps document media filenames to bundled asset paths.
type Resolver struct {
	root  string
	files map[string]string
}

// NewResolver indexes the asset directory. A missing or unreadable
// directory produces a resolver that resolves nothing.
func NewResolver(root string) *Resolver {
	r := &Resolver{root: root, files: make(map[string]string)}
	if root == "" {
		return r
	}
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		key := strings.ToLower(d.Name())
		if _, taken := r.files[key]; !taken {
			r.files[key] = path
		}
		return nil
	})
	return r
}

// Resolve returns the bundled asset path for a document media reference, or
// "" when the reference cannot be resolved. Query strings and fragments on
// the reference are ignored; lookup is by base filename, case-insensitive.
func (r *Resolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if cut := strings.IndexAny(ref, "?#"); cut >= 0 {
		ref = ref[:cut]
	}
	name := strings.ToLower(filepath.Base(ref))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	return r.files[name]
}
