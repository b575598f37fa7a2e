// Package match provides string similarity scoring for resolving approximate
// names to known candidates. The same primitive backs branch-name resolution
// and similarity-ordered command listings.
package match

// Ratio returns a similarity score in [0, 1] for two strings using the
// Ratcliff/Obershelp algorithm: twice the number of matching characters over
// the total length, where matches are found by recursively locating the
// longest common substring. Case-sensitive.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	m := matchingChars(a, b)
	return 2 * float64(m) / float64(len(a)+len(b))
}

// matchingChars counts characters covered by recursively matching the longest
// common substring and then the unmatched regions on either side of it.
func matchingChars(a, b string) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingChars(a[:ai], b[:bi])
	total += matchingChars(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest common substring of a and b, returning
// its start offsets and length. Earliest block wins on ties, which keeps the
// score deterministic.
func longestCommonBlock(a, b string) (ai, bi, size int) {
	// lengths[j] holds the common-suffix length ending at b[j-1] for the
	// previous row of a.
	lengths := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		prev := 0
		for j := 0; j < len(b); j++ {
			cur := lengths[j+1]
			if a[i] == b[j] {
				lengths[j+1] = prev + 1
				if lengths[j+1] > size {
					size = lengths[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j+1] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

// DefaultCutoff is the minimum Ratio for a candidate to be considered close.
const DefaultCutoff = 0.6

// Closest returns the candidate with the highest similarity to query that
// clears cutoff, or ok=false when none does. An exact match wins immediately.
// Ties keep the earlier candidate, so the result is stable with respect to
// candidate order.
func Closest(query string, candidates []string, cutoff float64) (best string, ok bool) {
	if query == "" || len(candidates) == 0 {
		return "", false
	}
	bestScore := cutoff
	for _, c := range candidates {
		if c == query {
			return c, true
		}
		score := Ratio(query, c)
		if score > bestScore {
			best = c
			bestScore = score
			ok = true
		}
	}
	return best, ok
}

// closeMatches returns up to n candidates scoring at least cutoff against
// query, best first. Candidate order breaks score ties.
func closeMatches(query string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		name  string
		score float64
	}
	var hits []scored
	for _, c := range candidates {
		if s := Ratio(query, c); s >= cutoff {
			hits = append(hits, scored{c, s})
		}
	}
	// Insertion sort by score, stable over candidate order.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].score > hits[j-1].score; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	if len(hits) > n {
		hits = hits[:n]
	}
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.name
	}
	return names
}

// SortBySimilarity reorders names so that each name is followed by the names
// closest to it, preserving the original order otherwise. Used to group
// related command names (switch/sync, publish/unpublish) in listings.
func SortBySimilarity(names []string) []string {
	remaining := make(map[string]bool, len(names))
	for _, n := range names {
		remaining[n] = true
	}
	ordered := make([]string, 0, len(names))
	for _, n := range names {
		if !remaining[n] {
			continue
		}
		ordered = append(ordered, n)
		delete(remaining, n)
		var left []string
		for _, m := range names {
			if remaining[m] {
				left = append(left, m)
			}
		}
		for _, near := range closeMatches(n, left, 3, DefaultCutoff) {
			ordered = append(ordered, near)
			delete(remaining, near)
		}
	}
	return ordered
}
