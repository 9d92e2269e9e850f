package library

import (
	"strings"

	"repkit/internal/textutil"
)

// MediaResolverFunc maps a document media filename to a bundled asset
// reference. Empty means unresolvable, which is never an error.
type MediaResolverFunc func(filename string) string

// Muscle groups the retained entries of one library document.
type Muscle struct {
	Slug      string
	Label     string
	Exercises []*Entry
}

// Index holds the immutable exercise lookup structures. Built once via
// BuildIndex and read-only afterward.
type Index struct {
	Muscles    []*Muscle
	Entries    []*Entry
	ParseSkips int

	exact    map[string]*Entry
	coreKey  map[string][]*Entry
	aliasKey map[string][]*Entry
	muscles  map[string]*Muscle
}

// IndexOptions configures index construction.
type IndexOptions struct {
	// ResolveMedia validates and rewrites media references. Nil keeps the
	// raw filenames and treats every reference as resolvable.
	ResolveMedia MediaResolverFunc
}

// BuildIndex constructs the exact, core-key, and alias-key indexes from the
// parsed documents, in input order. Construction is idempotent: the same
// documents always produce the same indexes.
func BuildIndex(docs []ParsedDocument, opts IndexOptions) *Index {
	idx := &Index{
		exact:    make(map[string]*Entry),
		coreKey:  make(map[string][]*Entry),
		aliasKey: make(map[string][]*Entry),
		muscles:  make(map[string]*Muscle),
	}

	for _, doc := range docs {
		muscle := &Muscle{Slug: doc.Slug, Label: doc.Label}
		for _, section := range doc.Sections {
			media := resolveMedia(section.Media, opts.ResolveMedia)
			if !sectionComplete(section, media) {
				idx.ParseSkips++
				continue
			}
			entry := newEntry(doc, section, media)
			muscle.Exercises = append(muscle.Exercises, entry)
			idx.register(entry)
		}
		idx.Muscles = append(idx.Muscles, muscle)
		if _, dup := idx.muscles[muscle.Slug]; !dup {
			idx.muscles[muscle.Slug] = muscle
		}
	}
	return idx
}

// sectionComplete enforces the retention rule: a title plus at least one
// instruction step or one resolvable media asset.
func sectionComplete(section ParsedSection, media []string) bool {
	if strings.TrimSpace(section.Title) == "" {
		return false
	}
	return len(section.Instructions) > 0 || len(media) > 0
}

func resolveMedia(refs []string, resolve MediaResolverFunc) []string {
	if resolve == nil {
		return append([]string(nil), refs...)
	}
	var resolved []string
	for _, ref := range refs {
		if asset := resolve(ref); asset != "" {
			resolved = append(resolved, asset)
		}
	}
	return resolved
}

func (idx *Index) register(entry *Entry) {
	idx.Entries = append(idx.Entries, entry)

	// First writer wins; documents arrive in a stable order.
	exactKey := entry.ExactKey()
	if _, taken := idx.exact[exactKey]; !taken && exactKey != "" {
		idx.exact[exactKey] = entry
	}

	if core := entry.CoreKey(); core != "" {
		idx.coreKey[core] = append(idx.coreKey[core], entry)
	}
	for _, alias := range entry.AliasKeys {
		idx.aliasKey[alias] = append(idx.aliasKey[alias], entry)
	}
}

// ExactLookup returns the entry registered under the full normalized name.
func (idx *Index) ExactLookup(key string) (*Entry, bool) {
	entry, ok := idx.exact[key]
	return entry, ok
}

// CoreCandidates returns the entries sharing a core key, registration order.
func (idx *Index) CoreCandidates(key string) []*Entry {
	return idx.coreKey[key]
}

// AliasCandidates returns the entries registered under an alias key.
func (idx *Index) AliasCandidates(key string) []*Entry {
	return idx.aliasKey[key]
}

// Canonical maps an entry to the first entry registered under its core key,
// collapsing presentation variants (e.g. "Push-Up (Side View)") onto one
// selectable exercise. Entries with an empty core key canonicalize to
// themselves.
func (idx *Index) Canonical(entry *Entry) *Entry {
	core := entry.CoreKey()
	if core == "" {
		return entry
	}
	if candidates := idx.coreKey[core]; len(candidates) > 0 {
		return candidates[0]
	}
	return entry
}

// MuscleBySlug returns the muscle document registered under slug.
func (idx *Index) MuscleBySlug(slug string) (*Muscle, bool) {
	muscle, ok := idx.muscles[slug]
	return muscle, ok
}

// muscleResolveThreshold is the minimum Dice similarity for a fuzzy muscle
// label match; below it a query is treated as unresolvable.
const muscleResolveThreshold = 0.5

// ResolveMuscle finds the muscle document for any of the candidate query
// strings, trying slug and normalized-label equality before falling back to
// bigram similarity over muscle labels.
func (idx *Index) ResolveMuscle(queries ...string) (*Muscle, bool) {
	for _, query := range queries {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		if muscle, ok := idx.muscles[textutil.Slugify(query)]; ok {
			return muscle, true
		}
		normalized := textutil.NormalizeName(query)
		for _, muscle := range idx.Muscles {
			if textutil.NormalizeName(muscle.Label) == normalized {
				return muscle, true
			}
		}
	}

	var best *Muscle
	bestScore := 0.0
	for _, query := range queries {
		grams := textutil.Bigrams(query)
		if len(grams) == 0 {
			continue
		}
		for _, muscle := range idx.Muscles {
			score := textutil.Dice(grams, textutil.Bigrams(muscle.Label))
			if score > bestScore {
				best, bestScore = muscle, score
			}
		}
	}
	if best != nil && bestScore >= muscleResolveThreshold {
		return best, true
	}
	return nil, false
}
