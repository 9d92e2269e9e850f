package library

import (
	"strings"

	"repkit/internal/textutil"
)

// Entry is one exercise in the library, fully derived from its parsed
// section. Immutable after construction.
type Entry struct {
	ID           string
	Slug         string
	Name         string
	MuscleSlug   string
	MuscleLabel  string
	Tokens       []string
	CoreTokens   []string
	Descriptors  map[string]struct{}
	AliasKeys    []string
	Bigrams      []string
	Media        []string
	Instructions []string
	Notes        []string
	Difficulty   string
}

// ExactKey returns the entry's full normalized name.
func (e *Entry) ExactKey() string {
	return textutil.NormalizeName(e.Name)
}

// CoreKey returns the entry's descriptor-free key.
func (e *Entry) CoreKey() string {
	return strings.Join(e.CoreTokens, " ")
}

// HasDescriptor reports whether the entry carries the given descriptor word.
func (e *Entry) HasDescriptor(token string) bool {
	_, ok := e.Descriptors[token]
	return ok
}

// Orientation returns the entry's front/back/side descriptor, or "".
func (e *Entry) Orientation() string {
	for _, token := range e.Tokens {
		if textutil.IsOrientation(token) && e.HasDescriptor(token) {
			return token
		}
	}
	return ""
}

func newEntry(doc ParsedDocument, section ParsedSection, media []string) *Entry {
	tokens := textutil.Tokenize(section.Title, textutil.TokenizeOptions{})
	core := textutil.Tokenize(section.Title, textutil.TokenizeOptions{OmitDescriptors: true})

	descriptors := make(map[string]struct{})
	for _, token := range tokens {
		if textutil.IsDescriptor(token) {
			descriptors[token] = struct{}{}
		}
	}

	slug := textutil.Slugify(section.Title)
	return &Entry{
		ID:           doc.Slug + "/" + slug,
		Slug:         slug,
		Name:         section.Title,
		MuscleSlug:   doc.Slug,
		MuscleLabel:  doc.Label,
		Tokens:       tokens,
		CoreTokens:   core,
		Descriptors:  descriptors,
		AliasKeys:    aliasKeys(core),
		Bigrams:      textutil.Bigrams(section.Title),
		Media:        media,
		Instructions: append([]string(nil), section.Instructions...),
		Notes:        append([]string(nil), section.Notes...),
		Difficulty:   section.Difficulty,
	}
}

// aliasKeys returns every (n-1)-length subsequence of tokens obtained by
// dropping exactly one position, so "barbell curl" is also discoverable via
// "curl" or "barbell". Single-token keys have no aliases.
func aliasKeys(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	keys := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for drop := 0; drop < len(tokens); drop++ {
		remaining := make([]string, 0, len(tokens)-1)
		remaining = append(remaining, tokens[:drop]...)
		remaining = append(remaining, tokens[drop+1:]...)
		key := strings.Join(remaining, " ")
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// FallbackDescription joins the entry's instruction steps into the
// description used when coaching-content generation fails.
func (e *Entry) FallbackDescription() string {
	return strings.Join(e.Instructions, " ")
}
