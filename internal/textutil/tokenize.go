package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
)

// wordSplitPattern matches separator sequences between candidate words.
var wordSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// TokenizeOptions controls tokenization behavior.
type TokenizeOptions struct {
	// OmitDescriptors drops orientation/stance/variant words from the result.
	OmitDescriptors bool
}

// compoundJoiner collapses hyphens and apostrophes so "Push-Up" and
// "farmer's walk" tokenize as pushup and farmer walk.
var compoundJoiner = strings.NewReplacer("-", "", "'", "", "’", "")

// Tokenize splits text into normalized tokens. Hyphenated compounds join
// into one token before splitting. Stop words never produce a token;
// descriptor words are dropped as well when opts.OmitDescriptors is set.
// Non-text or empty input yields an empty slice, never an error.
func Tokenize(text string, opts TokenizeOptions) []string {
	parts := wordSplitPattern.Split(compoundJoiner.Replace(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := NormalizeToken(part)
		if token == "" {
			continue
		}
		if opts.OmitDescriptors && IsDescriptor(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// NormalizeName reduces a full name to its exact-lookup key: normalized
// tokens joined by single spaces.
func NormalizeName(text string) string {
	return strings.Join(Tokenize(text, TokenizeOptions{}), " ")
}

// Slugify converts a label to a lowercase hyphenated identifier. Returns
// "unknown" for input with no usable characters.
func Slugify(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	lowered := foldLabel(value)
	parts := wordSplitPattern.Split(lowered, -1)
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return "unknown"
	}
	return strings.Join(kept, "-")
}

func foldLabel(value string) string {
	lowered := strings.ToLower(value)
	if stripped, _, err := transform.String(diacriticStripper, lowered); err == nil {
		return stripped
	}
	return lowered
}
