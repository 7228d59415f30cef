package spell

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSegmentIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex(2, 7, 1)
	require.NoError(t, err)
	for _, w := range []string{"the", "quick", "brown", "fox"} {
		ix.CreateDictionaryEntry(w, 1000)
	}
	return ix
}

func TestWordSegmentationJoinsRunTogetherWords(t *testing.T) {
	ix := newSegmentIndex(t)
	result, err := ix.WordSegmentation("thequickbrownfox")
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", result.CorrectedPhrase)
	assert.Len(t, result.Segments, 4)
}

func TestWordSegmentationEmptyPhrase(t *testing.T) {
	ix := newSegmentIndex(t)
	result, err := ix.WordSegmentation("")
	require.NoError(t, err)
	assert.Equal(t, SegmentationResult{}, result)
}

func TestWordSegmentationMaxWordLengthOverride(t *testing.T) {
	ix := newSegmentIndex(t)
	result, err := ix.WordSegmentation("thequickbrownfox", WithMaxSegmentationWordLength(5))
	require.NoError(t, err)
	assert.NotEmpty(t, result.CorrectedPhrase)
}

func TestWordSegmentationIgnoreToken(t *testing.T) {
	ix := newSegmentIndex(t)
	re := regexp.MustCompile(`^zzz$`)
	result, err := ix.WordSegmentation("zzz", WithSegmentationIgnoreToken(re))
	require.NoError(t, err)
	assert.Equal(t, "zzz", result.CorrectedPhrase)
}

func TestWordSegmentationRecapitalizesLeadingWord(t *testing.T) {
	ix := newSegmentIndex(t)
	ix.CreateDictionaryEntry("there", 1000)
	ix.CreateDictionaryEntry("are", 1000)
	ix.CreateDictionaryEntry("some", 1000)
	ix.CreateDictionaryEntry("scientific", 1000)
	ix.CreateDictionaryEntry("words", 1000)

	result, err := ix.WordSegmentation("Therearesomescientificwords")
	require.NoError(t, err)
	assert.Equal(t, "There are some scientific words", result.CorrectedPhrase)
}

func TestWordSegmentationAttachesApostropheTailWithoutSpace(t *testing.T) {
	ix := newSegmentIndex(t)
	ix.CreateDictionaryEntry("fox", 1000)
	ix.CreateDictionaryEntry("s", 1)

	result, err := ix.WordSegmentation("fox's")
	require.NoError(t, err)
	assert.NotContains(t, result.CorrectedPhrase, " 's")
}
