package match

import (
	"strings"

	"repkit/internal/library"
	"repkit/internal/textutil"
)

// Strategy identifies how a query resolved.
type Strategy string

const (
	StrategyExact   Strategy = "exact"
	StrategyCoreKey Strategy = "core-key"
	StrategyAlias   Strategy = "alias"
	StrategyScored  Strategy = "scored"
	StrategyNone    Strategy = "none"
)

// Scoring constants. The fuzzy weights mirror the heuristics the matching
// behavior was tuned against; they are not derived from a formal model, so
// they live here as named constants pinned by tests.
const (
	// acceptThreshold is the minimum fuzzy score for an accepted match.
	acceptThreshold = 0.30

	fullOverlapWeight = 0.35
	coreOverlapWeight = 0.35
	bigramWeight      = 0.20
	substringBonus    = 0.15
	orientationBonus  = 0.05

	coreKeyScore = 0.93
	aliasScore   = 0.80
)

// Result is the outcome of one query. Suggestion carries the best-scoring
// entry for diagnostics when nothing was accepted.
type Result struct {
	Matched    bool
	Entry      *library.Entry
	Strategy   Strategy
	Score      float64
	Suggestion *library.Entry
}

// Matcher resolves queries against one immutable index.
type Matcher struct {
	index *library.Index
}

// New returns a matcher over the given index.
func New(index *library.Index) *Matcher {
	return &Matcher{index: index}
}

// Match resolves a query name, short-circuiting on the first strategy that
// produces a hit.
func (m *Matcher) Match(query string) Result {
	exactKey := textutil.NormalizeName(query)
	if exactKey == "" {
		return Result{Strategy: StrategyNone}
	}
	if entry, ok := m.index.ExactLookup(exactKey); ok {
		return Result{Matched: true, Entry: entry, Strategy: StrategyExact, Score: 1}
	}

	fullTokens := textutil.Tokenize(query, textutil.TokenizeOptions{})
	coreTokens := textutil.Tokenize(query, textutil.TokenizeOptions{OmitDescriptors: true})
	orientation := queryOrientation(fullTokens)
	coreKey := strings.Join(coreTokens, " ")

	if coreKey != "" {
		if entry := pickCandidate(m.index.CoreCandidates(coreKey), orientation); entry != nil {
			return Result{Matched: true, Entry: entry, Strategy: StrategyCoreKey, Score: coreKeyScore}
		}
		if entry := pickCandidate(m.index.AliasCandidates(coreKey), orientation); entry != nil {
			return Result{Matched: true, Entry: entry, Strategy: StrategyAlias, Score: aliasScore}
		}
	}

	// Look up both indexes with the query's own one-token-dropped keys,
	// core-key index strictly before alias-key (narrower match wins).
	for _, key := range queryAliasKeys(coreTokens) {
		if entry := pickCandidate(m.index.CoreCandidates(key), orientation); entry != nil {
			return Result{Matched: true, Entry: entry, Strategy: StrategyAlias, Score: aliasScore}
		}
		if entry := pickCandidate(m.index.AliasCandidates(key), orientation); entry != nil {
			return Result{Matched: true, Entry: entry, Strategy: StrategyAlias, Score: aliasScore}
		}
	}

	return m.fuzzyMatch(query, fullTokens, coreTokens, orientation)
}

func (m *Matcher) fuzzyMatch(query string, fullTokens, coreTokens []string, orientation string) Result {
	queryName := textutil.NormalizeName(query)
	queryGrams := textutil.Bigrams(query)

	var best *library.Entry
	bestScore := 0.0
	for _, entry := range m.index.Entries {
		score := fuzzyScore(queryName, queryGrams, fullTokens, coreTokens, orientation, entry)
		if score > bestScore {
			best, bestScore = entry, score
		}
	}

	if best != nil && bestScore >= acceptThreshold {
		return Result{Matched: true, Entry: best, Strategy: StrategyScored, Score: bestScore}
	}
	return Result{Strategy: StrategyNone, Score: bestScore, Suggestion: best}
}

func fuzzyScore(queryName string, queryGrams []string, fullTokens, coreTokens []string, orientation string, entry *library.Entry) float64 {
	score := fullOverlapWeight*textutil.OverlapRatio(fullTokens, entry.Tokens) +
		coreOverlapWeight*textutil.OverlapRatio(coreTokens, entry.CoreTokens) +
		bigramWeight*textutil.Dice(queryGrams, entry.Bigrams)

	entryName := entry.ExactKey()
	if queryName != "" && entryName != "" &&
		(strings.Contains(entryName, queryName) || strings.Contains(queryName, entryName)) {
		score += substringBonus
	}

	if orientation != "" {
		switch entryOrient := entry.Orientation(); {
		case entryOrient == orientation:
			score += orientationBonus
		case entryOrient != "":
			score -= orientationBonus
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// queryOrientation detects the requested orientation from the full token
// list; descriptor omission must not hide it.
func queryOrientation(fullTokens []string) string {
	for _, token := range fullTokens {
		if textutil.IsOrientation(token) {
			return token
		}
	}
	return ""
}

// queryAliasKeys mirrors the index's alias-key derivation for the query.
func queryAliasKeys(coreTokens []string) []string {
	if len(coreTokens) < 2 {
		return nil
	}
	keys := make([]string, 0, len(coreTokens))
	seen := make(map[string]struct{}, len(coreTokens))
	for drop := 0; drop < len(coreTokens); drop++ {
		remaining := make([]string, 0, len(coreTokens)-1)
		remaining = append(remaining, coreTokens[:drop]...)
		remaining = append(remaining, coreTokens[drop+1:]...)
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
