package textutil

// Bigrams returns the character bigrams of each word in text, after
// normalization. Words shorter than two runes contribute themselves so very
// short names still produce a comparable set. Duplicates are preserved in
// the slice; Dice applies set semantics.
func Bigrams(text string) []string {
	tokens := Tokenize(text, TokenizeOptions{})
	var grams []string
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) < 2 {
			grams = append(grams, token)
			continue
		}
		for i := 0; i+1 < len(runes); i++ {
			grams = append(grams, string(runes[i:i+2]))
		}
	}
	return grams
}

// Dice computes the Sorensen-Dice coefficient between two bigram slices
// using set semantics: 2*|shared| / (|A|+|B|) over unique bigrams. Returns 0
// when either side is empty. Symmetric, and 1 for identical non-empty sets.
func Dice(a, b []string) float64 {
	setA := uniqueSet(a)
	setB := uniqueSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for gram := range setA {
		if _, ok := setB[gram]; ok {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(setA)+len(setB))
}

// OverlapRatio returns |shared| / max(|A|,|B|) over unique tokens, so a short
// side is not unfairly penalized against a long one. Returns 0 when either
// side is empty.
func OverlapRatio(a, b []string) float64 {
	setA := uniqueSet(a)
	setB := uniqueSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			shared++
		}
	}
	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(shared) / float64(larger)
}

func uniqueSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
