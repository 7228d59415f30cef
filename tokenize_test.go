package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWordsLowercasesByDefault(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, parseWords("Hello, World!", false))
}

func TestParseWordsPreservesCaseWhenRequested(t *testing.T) {
	assert.Equal(t, []string{"Hello", "World"}, parseWords("Hello, World!", true))
}

func TestParseWordsKeepsContractions(t *testing.T) {
	assert.Equal(t, []string{"don't", "stop"}, parseWords("don't stop", true))
}

func TestIsAcronymPlainAllCaps(t *testing.T) {
	assert.True(t, isAcronym("NASA", false))
	assert.False(t, isAcronym("Nasa", false))
	assert.False(t, isAcronym("nasa", false))
}

func TestIsAcronymWithDigitsRequiresFlag(t *testing.T) {
	// "R2d2" mixes a lowercase letter with a digit: only the relaxed
	// matchAnyTermWithDigits policy treats it as a passthrough token.
	assert.False(t, isAcronym("R2d2", false))
	assert.True(t, isAcronym("R2d2", true))

	// A pure acronym like "R2D2" (uppercase only, no lowercase) already
	// passes under the plain policy.
	assert.True(t, isAcronym("R2D2", false))
}

func TestIsAcronymRequiresAtLeastTwoChars(t *testing.T) {
	assert.False(t, isAcronym("A", false))
	assert.False(t, isAcronym("I", false))
	assert.False(t, isAcronym("A", true))
}

func TestTryParseInt64(t *testing.T) {
	n, ok := tryParseInt64("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = tryParseInt64("not-a-number")
	assert.False(t, ok)
}
