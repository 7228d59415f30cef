package spell

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookupIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex(2, 7, 1)
	require.NoError(t, err)
	for _, w := range []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog"} {
		ix.CreateDictionaryEntry(w, 100)
	}
	ix.CreateDictionaryEntry("quack", 10)
	return ix
}

func TestLookupExactMatch(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("quick", Top)
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "quick", sugg[0].Term)
	assert.Equal(t, 0, sugg[0].Distance)
}

func TestLookupVerbosityTop(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("quock", Top)
	require.NoError(t, err)
	require.Len(t, sugg, 1)
}

func TestLookupVerbosityClosest(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("quock", Closest)
	require.NoError(t, err)
	for _, s := range sugg {
		assert.Equal(t, sugg[0].Distance, s.Distance)
	}
}

func TestLookupVerbosityAll(t *testing.T) {
	ix := newLookupIndex(t)
	top, err := ix.Lookup("quock", Top)
	require.NoError(t, err)
	all, err := ix.Lookup("quock", All)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), len(top))
}

func TestLookupMaxEditDistanceExceedsBudget(t *testing.T) {
	ix := newLookupIndex(t)
	_, err := ix.Lookup("quock", Top, WithMaxEditDistance(5))
	require.Error(t, err)
	var budgetErr *DistanceBudgetExceeded
	assert.ErrorAs(t, err, &budgetErr)
}

func TestLookupIncludeUnknown(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("zzzzzzzzzzzz", Top, WithIncludeUnknown())
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "zzzzzzzzzzzz", sugg[0].Term)
	assert.Equal(t, ix.maxDictionaryEditDistance+1, sugg[0].Distance)
}

func TestLookupNoIncludeUnknownReturnsEmpty(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("zzzzzzzzzzzz", Top)
	require.NoError(t, err)
	assert.Empty(t, sugg)
}

func TestLookupIgnoreToken(t *testing.T) {
	ix := newLookupIndex(t)
	re := regexp.MustCompile(`^SN-\d+$`)
	sugg, err := ix.Lookup("SN-12", Top, WithIgnoreToken(re))
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "SN-12", sugg[0].Term)
	assert.Equal(t, 0, sugg[0].Distance)
}

func TestLookupTransferCasing(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("Quock", Top, WithTransferCasing())
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "Quick", sugg[0].Term)
}

func TestLookupMaxEditDistanceZero(t *testing.T) {
	ix := newLookupIndex(t)
	sugg, err := ix.Lookup("quick", Top, WithMaxEditDistance(0))
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "quick", sugg[0].Term)

	sugg, err = ix.Lookup("quock", Top, WithMaxEditDistance(0))
	require.NoError(t, err)
	assert.Empty(t, sugg)
}
