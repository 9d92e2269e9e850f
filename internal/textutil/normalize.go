package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords produce no token at all.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {},
	"from": {}, "in": {}, "of": {}, "on": {}, "or": {}, "the": {},
	"to": {}, "with": {}, "your": {},
}

// irregularForms folds plurals and synonyms the suffix stemmer cannot reach.
var irregularForms = map[string]string{
	"abs":        "ab",
	"biceps":     "bicep",
	"calves":     "calf",
	"chinups":    "chinup",
	"delts":      "delt",
	"flies":      "fly",
	"flyes":      "fly",
	"flys":       "fly",
	"glutes":     "glute",
	"lats":       "lat",
	"pecs":       "pec",
	"pressup":    "pushup",
	"pressups":   "pushup",
	"pullups":    "pullup",
	"pushups":    "pushup",
	"quads":      "quad",
	"situps":     "situp",
	"traps":      "trap",
	"triceps":    "tricep",
}

// descriptorWords are orientation/stance/variant markers. They stay in full
// token lists but are omitted from core tokens so presentation variants of
// the same movement share a core key.
var descriptorWords = map[string]struct{}{
	"alternating": {}, "assisted": {}, "back": {}, "close": {},
	"decline": {}, "double": {}, "elevated": {}, "front": {},
	"full": {}, "grip": {}, "half": {}, "incline": {}, "kneeling": {},
	"left": {}, "lying": {}, "modified": {}, "narrow": {}, "prone": {},
	"reverse": {}, "right": {}, "seated": {}, "side": {}, "single": {},
	"standing": {}, "supine": {}, "variation": {}, "view": {},
	"weighted": {}, "wide": {},
}

// orientationWords are the descriptor subset used for tie-breaking.
var orientationWords = map[string]struct{}{
	"front": {}, "back": {}, "side": {},
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// IsDescriptor reports whether token is an orientation/stance/variant word.
func IsDescriptor(token string) bool {
	_, ok := descriptorWords[token]
	return ok
}

// IsOrientation reports whether token is a front/back/side orientation word.
func IsOrientation(token string) bool {
	_, ok := orientationWords[token]
	return ok
}

// NormalizeToken reduces a raw word to its comparable form. It lowercases,
// strips diacritics, removes non-alphanumeric runes, folds irregular forms,
// drops stop words, and applies the suffix stemmer. Returns "" when nothing
// comparable remains.
func NormalizeToken(raw string) string {
	token := foldRunes(raw)
	if token == "" {
		return ""
	}
	if _, stop := stopWords[token]; stop {
		return ""
	}
	if folded, ok := irregularForms[token]; ok {
		return folded
	}
	token = stemSuffix(token)
	if folded, ok := irregularForms[token]; ok {
		return folded
	}
	return token
}

// foldRunes lowercases, strips diacritics, and drops non-alphanumerics.
func foldRunes(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}
	if stripped, _, err := transform.String(diacriticStripper, lowered); err == nil {
		lowered = stripped
	}
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// esSuffixes are endings where English pluralizes with "es" rather than "s".
var esSuffixes = []string{"ches", "shes", "sses", "xes", "zes", "oes"}

func stemSuffix(token string) string {
	switch {
	case len(token) > 4 && strings.HasSuffix(token, "ing"):
		return token[:len(token)-3]
	case len(token) > 4 && strings.HasSuffix(token, "ers"):
		return token[:len(token)-3]
	case len(token) > 3 && hasAnySuffix(token, esSuffixes):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss"):
		return token[:len(token)-1]
	}
	return token
}

func hasAnySuffix(token string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}
