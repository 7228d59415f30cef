package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeletesPrefixIncludesKey(t *testing.T) {
	d := deletesPrefix("steam", 2, 7)
	_, ok := d["steam"]
	assert.True(t, ok)
}

func TestDeletesPrefixEmptyStringForShortKeys(t *testing.T) {
	d := deletesPrefix("ab", 2, 7)
	_, ok := d[""]
	assert.True(t, ok, "key no longer than max edit distance must generate the empty delete")

	d2 := deletesPrefix("abcdef", 2, 7)
	_, ok2 := d2[""]
	assert.False(t, ok2)
}

func TestDeletesPrefixTruncatesToPrefixLength(t *testing.T) {
	d := deletesPrefix("abcdefgh", 1, 4)
	// The key should appear truncated, not in full.
	_, fullPresent := d["abcdefgh"]
	assert.False(t, fullPresent)
	_, truncPresent := d["abcd"]
	assert.True(t, truncPresent)
}

func TestDeletesPrefixOneEditDistance(t *testing.T) {
	d := deletesPrefix("cat", 1, 7)
	for _, want := range []string{"cat", "at", "ct", "ca"} {
		_, ok := d[want]
		assert.Truef(t, ok, "expected delete set to contain %q", want)
	}
	assert.Len(t, d, 4)
}

func TestDeletesPrefixRecursesToMaxDistance(t *testing.T) {
	d := deletesPrefix("cats", 2, 7)
	// distance-2 delete: remove two characters, e.g. "at" from "cats"
	_, ok := d["at"]
	assert.True(t, ok)
	// deeper deletes, such as the empty string four deletions away, should never appear
	_, ok3 := d[""]
	assert.False(t, ok3)
}
