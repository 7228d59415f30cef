package spell

import "sort"

// Suggestion is a single candidate correction returned by Lookup, and used
// in LookupCompound's per-token scoring and WordSegmentation's per-part
// lookups.
type Suggestion struct {
	// Term is the dictionary (or passthrough/unknown) spelling.
	Term string
	// Distance is the edit distance from the query, 0 for passthrough
	// suggestions, or the k+1 sentinel distance for unknown terms.
	Distance int
	// Count is the dictionary frequency of Term; the corpus normalization
	// constant N for tokens LookupCompound passes through, and 1 for
	// Lookup's ignore-token passthrough.
	Count uint64
}

// Suggestions is a sortable list of Suggestion, ordered by (distance
// ascending, count descending) as required by spec section 8 invariant 7.
type Suggestions []Suggestion

func (s Suggestions) Len() int      { return len(s) }
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Suggestions) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}

func (s Suggestions) sortInPlace() {
	if len(s) > 1 {
		sort.Stable(s)
	}
}

// Words returns the list of terms in s, in order.
func (s Suggestions) Words() []string {
	words := make([]string, 0, len(s))
	for _, suggestion := range s {
		words = append(words, suggestion.Term)
	}
	return words
}
