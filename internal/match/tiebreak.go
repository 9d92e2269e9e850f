package match

import "repkit/internal/library"

// pickCandidate selects one entry from a candidate list. Ties break by
// orientation preference first (a conflicting orientation is worse than
// none), then fewer descriptors, then shorter raw name, then registration
// order.
func pickCandidate(candidates []*library.Entry, orientation string) *library.Entry {
	var best *library.Entry
	for _, candidate := range candidates {
		if best == nil || candidateLess(candidate, best, orientation) {
			best = candidate
		}
	}
	return best
}

// candidateLess reports whether a beats b under the tie-break rules.
func candidateLess(a, b *library.Entry, orientation string) bool {
	if orientation != "" {
		ra, rb := orientationRank(a, orientation), orientationRank(b, orientation)
		if ra != rb {
			return ra > rb
		}
	}
	if len(a.Descriptors) != len(b.Descriptors) {
		return len(a.Descriptors) < len(b.Descriptors)
	}
	return len(a.Name) < len(b.Name)
}

func orientationRank(entry *library.Entry, orientation string) int {
	switch entryOrient := entry.Orientation(); {
	case entryOrient == orientation:
		return 1
	case entryOrient != "":
		return -1
	default:
		return 0
	}
}
