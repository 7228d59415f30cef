package spell

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// wordPattern splits free text into word tokens, keeping contracted forms
// such as "don't" as a single token the way symspellpy's parse_words does.
var wordPattern = regexp.MustCompile(`[^\W_]+['’][^\W_]+|[^\W_]+`)

// parseWords tokenizes text into words, lowercasing unless preserveCase is
// set (compound correction needs the original casing to detect acronyms).
func parseWords(text string, preserveCase bool) []string {
	if !preserveCase {
		text = strings.ToLower(text)
	}
	return wordPattern.FindAllString(text, -1)
}

// isAcronym reports whether word should be treated as an acronym or code
// token that compound correction should pass through unchanged: a word of
// at least two characters with an uppercase letter and no lowercase letter
// (such as "NASA" or "R2D2"), and (when matchAnyTermWithDigits is set) any
// word of at least two characters containing a digit, such as "1st2nd3rd".
// Under the plain rule a word made only of digits is not an acronym, nor is
// one with any lowercase letter, such as "NASA's".
func isAcronym(word string, matchAnyTermWithDigits bool) bool {
	if len([]rune(word)) < 2 {
		return false
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range word {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if matchAnyTermWithDigits {
		return hasDigit || (hasUpper && !hasLower)
	}
	return hasUpper && !hasLower
}

// tryParseInt64 reports whether token parses cleanly as a base-10 int64.
// Compound correction does not call it; it detects numeric tokens with
// isDigitToken.
func tryParseInt64(token string) (int64, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
