// Package distance implements the edit-distance comparers used to rank
// spelling suggestions: Levenshtein and Damerau-Levenshtein Optimal String
// Alignment (OSA), each with an unbounded core and a banded, max-distance
// bounded core that shares reusable cost-row storage across calls.
//
// Ported from the row-reuse / banded-window technique in
// mammothb/symspellpy's editdistance.py (itself from softwx/SoftWx.Match).
package distance

// Algorithm selects which comparer a Comparer uses.
type Algorithm int

const (
	// Levenshtein counts insertions, deletions and substitutions.
	Levenshtein Algorithm = iota
	// DamerauOSA additionally allows adjacent transpositions, but (unlike
	// true Damerau-Levenshtein) may only edit any given substring once.
	DamerauOSA
)

// Comparer computes edit distances using a single algorithm. It owns
// growable cost-row scratch space that is reused across calls to avoid
// reallocating on every comparison; a Comparer is therefore NOT safe for
// concurrent use by multiple goroutines. Callers running lookups in
// parallel should construct one Comparer per goroutine.
type Comparer struct {
	algorithm      Algorithm
	char1Costs     []int
	prevChar1Costs []int
}

// New creates a Comparer for the given algorithm.
func New(algorithm Algorithm) *Comparer {
	return &Comparer{algorithm: algorithm}
}

// Distance returns the edit distance between a and b:
//   - 0 if a == b
//   - -1 if the true distance exceeds maxDistance
//   - otherwise the true distance
//
// If either string is empty the result is the length of the other (or -1 if
// that exceeds maxDistance); both empty returns 0. maxDistance <= 0 is
// treated as "strings must already be equal".
func (c *Comparer) Distance(a, b string, maxDistance int) int {
	if a == "" || b == "" {
		return nullDistance(a, b, maxDistance)
	}
	if maxDistance <= 0 {
		if a == b {
			return 0
		}
		return -1
	}

	ra, rb := []rune(a), []rune(b)

	// Ensure the shorter string is first: spends more time in the tight
	// inner loop rather than the outer one.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > maxDistance {
		return -1
	}

	lenA, lenB, start := prefixSuffixPrep(ra, rb)
	if lenA == 0 {
		if lenB <= maxDistance {
			return lenB
		}
		return -1
	}

	if lenB > len(c.char1Costs) {
		c.char1Costs = make([]int, lenB)
		c.prevChar1Costs = make([]int, lenB)
	}

	switch c.algorithm {
	case DamerauOSA:
		if maxDistance < lenB {
			return damerauOSABanded(ra, rb, lenA, lenB, start, maxDistance, c.char1Costs, c.prevChar1Costs)
		}
		return damerauOSA(ra, rb, lenA, lenB, start, c.char1Costs, c.prevChar1Costs)
	default:
		if maxDistance < lenB {
			return levenshteinBanded(ra, rb, lenA, lenB, start, maxDistance, c.char1Costs)
		}
		return levenshtein(ra, rb, lenA, lenB, start, c.char1Costs)
	}
}

// nullDistance handles the case where one or both strings are empty.
func nullDistance(a, b string, maxDistance int) int {
	if a == "" {
		if b == "" {
			return 0
		}
		n := len([]rune(b))
		if n <= maxDistance {
			return n
		}
		return -1
	}
	n := len([]rune(a))
	if n <= maxDistance {
		return n
	}
	return -1
}

// prefixSuffixPrep strips the common suffix then the common prefix shared by
// a and b, returning the lengths of the remaining inner windows and the
// start offset of that window. Expects len(a) <= len(b).
func prefixSuffixPrep(a, b []rune) (lenA, lenB, start int) {
	lenA, lenB = len(a), len(b)
	for lenA != 0 && a[lenA-1] == b[lenB-1] {
		lenA--
		lenB--
	}
	start = 0
	for start != lenA && a[start] == b[start] {
		start++
	}
	if start != 0 {
		lenA -= start
		lenB -= start
	}
	return lenA, lenB, start
}
