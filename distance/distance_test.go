package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceBasics(t *testing.T) {
	for _, algo := range []Algorithm{Levenshtein, DamerauOSA} {
		c := New(algo)
		assert.Equal(t, 0, c.Distance("", "", 5))
		assert.Equal(t, 3, c.Distance("", "cat", 5))
		assert.Equal(t, -1, c.Distance("", "cat", 2))
		assert.Equal(t, 0, c.Distance("cat", "cat", 5))
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		max  int
		want int
	}{
		{"kitten", "sitting", 5, 3},
		{"kitten", "sitting", 2, -1},
		{"flaw", "lawn", 5, 2},
		{"ab", "ba", 5, 2}, // no transposition credit
		{"gumbo", "gambol", 5, 2},
		{"book", "back", 5, 2},
	}
	c := New(Levenshtein)
	for _, tc := range cases {
		got := c.Distance(tc.a, tc.b, tc.max)
		assert.Equalf(t, tc.want, got, "Levenshtein(%q,%q,%d)", tc.a, tc.b, tc.max)
	}
}

func TestDamerauOSATransposition(t *testing.T) {
	c := New(DamerauOSA)
	assert.Equal(t, 1, c.Distance("ab", "ba", 5))
	assert.Equal(t, 2, c.Distance("abcd", "badc", 5))
}

func TestBandedMatchesUnbounded(t *testing.T) {
	pairs := [][2]string{
		{"pipe", "pips"},
		{"stream", "steamb"},
		{"whereis", "where"},
		{"thequickbrownfox", "the quick brown fox"},
		{"a", "abcdefgh"},
	}
	for _, algo := range []Algorithm{Levenshtein, DamerauOSA} {
		unbounded := New(algo)
		for _, p := range pairs {
			full := unbounded.Distance(p[0], p[1], 1<<30)
			for max := 0; max <= full+1; max++ {
				banded := New(algo)
				got := banded.Distance(p[0], p[1], max)
				if full <= max {
					assert.Equal(t, full, got)
				} else {
					assert.Equal(t, -1, got)
				}
			}
		}
	}
}

func TestSymmetry(t *testing.T) {
	for _, algo := range []Algorithm{Levenshtein, DamerauOSA} {
		c := New(algo)
		assert.Equal(t, c.Distance("kitten", "sitting", 1<<30), c.Distance("sitting", "kitten", 1<<30))
		assert.Equal(t, 0, c.Distance("identical", "identical", 1<<30))
	}
}

func TestTriangleInequalityLevenshtein(t *testing.T) {
	c := New(Levenshtein)
	words := []string{"kitten", "sitting", "mitten", "bitten", "fitting", ""}
	for _, a := range words {
		for _, b := range words {
			for _, m := range words {
				ab := c.Distance(a, b, 1<<30)
				am := c.Distance(a, m, 1<<30)
				mb := c.Distance(m, b, 1<<30)
				assert.LessOrEqualf(t, ab, am+mb, "triangle inequality violated for %q/%q/%q", a, m, b)
			}
		}
	}
}

// Comparer instances must be independent: reusing cost rows across calls
// with different-length inputs should never leak stale data into a shorter
// comparison performed afterwards on the same Comparer.
func TestComparerReuseAcrossCallLengths(t *testing.T) {
	c := New(DamerauOSA)
	assert.Equal(t, 7, c.Distance("abcdefg", "", 10))
	assert.Equal(t, 1, c.Distance("cat", "bat", 10))
	assert.Equal(t, 0, c.Distance("cat", "cat", 10))
}
