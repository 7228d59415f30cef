package spell

import (
	"regexp"
	"strings"

	"github.com/corrigo/spell/distance"
)

// LookupOptions configures a single call to Index.Lookup.
type LookupOptions struct {
	maxEditDistance    int
	hasMaxEditDistance bool
	includeUnknown     bool
	ignoreToken        *regexp.Regexp
	transferCasing     bool
	algorithm          distance.Algorithm
}

// LookupOption configures LookupOptions.
type LookupOption func(*LookupOptions)

// WithMaxEditDistance caps the edit distance considered for this call.
// It must not exceed the Index's own MaxDictionaryEditDistance.
func WithMaxEditDistance(d int) LookupOption {
	return func(o *LookupOptions) {
		o.maxEditDistance = d
		o.hasMaxEditDistance = true
	}
}

// WithIncludeUnknown appends a k+1-distance, zero-count sentinel suggestion
// carrying the original phrase when no suggestions were found.
func WithIncludeUnknown() LookupOption {
	return func(o *LookupOptions) { o.includeUnknown = true }
}

// WithIgnoreToken treats phrases matching re as already-correct passthrough
// tokens (e.g. serial numbers), emitting them unchanged at distance 0.
// A phrase longer than the index's MaxLength plus the edit distance returns
// before this check, so it is not passed through.
func WithIgnoreToken(re *regexp.Regexp) LookupOption {
	return func(o *LookupOptions) { o.ignoreToken = re }
}

// WithTransferCasing lowercases the query for matching purposes and maps
// the winning suggestion(s) back to the query's original casing.
func WithTransferCasing() LookupOption {
	return func(o *LookupOptions) { o.transferCasing = true }
}

// WithDistanceAlgorithm selects the edit-distance algorithm used to score
// candidates that survive the prefix-delete filters. Defaults to
// distance.DamerauOSA.
func WithDistanceAlgorithm(a distance.Algorithm) LookupOption {
	return func(o *LookupOptions) { o.algorithm = a }
}

func newLookupOptions(ix *Index, opts []LookupOption) *LookupOptions {
	o := &LookupOptions{
		maxEditDistance: ix.maxDictionaryEditDistance,
		algorithm:       distance.DamerauOSA,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Lookup finds dictionary terms within the configured edit distance of
// phrase, applying the verbosity policy described in spec section 4.4.
func (ix *Index) Lookup(phrase string, verbosity Verbosity, opts ...LookupOption) (Suggestions, error) {
	o := newLookupOptions(ix, opts)
	if o.maxEditDistance > ix.maxDictionaryEditDistance {
		return nil, &DistanceBudgetExceeded{Requested: o.maxEditDistance, Max: ix.maxDictionaryEditDistance}
	}
	maxEditDistance := o.maxEditDistance

	originalPhrase := phrase
	if o.transferCasing {
		phrase = strings.ToLower(phrase)
	}
	phraseRunes := []rune(phrase)
	phraseLen := len(phraseRunes)

	var suggestions Suggestions

	applyCasing := func(s Suggestions) Suggestions {
		if !o.transferCasing {
			return s
		}
		for i := range s {
			if s[i].Term == phrase {
				s[i].Term = originalPhrase
				continue
			}
			s[i].Term = TransferCasingForSimilarText(originalPhrase, s[i].Term)
		}
		return s
	}

	earlyExit := func() Suggestions {
		if o.includeUnknown && len(suggestions) == 0 {
			suggestions = append(suggestions, Suggestion{Term: phrase, Distance: maxEditDistance + 1, Count: 0})
		}
		return suggestions
	}

	if phraseLen-maxEditDistance > ix.maxLength {
		return applyCasing(earlyExit()), nil
	}

	if count, ok := ix.words[phrase]; ok {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: 0, Count: count})
		if verbosity != All {
			return applyCasing(earlyExit()), nil
		}
	}

	if o.ignoreToken != nil && o.ignoreToken.MatchString(phrase) {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: 0, Count: 1})
		if verbosity != All {
			return applyCasing(earlyExit()), nil
		}
	}

	if maxEditDistance == 0 {
		return applyCasing(earlyExit()), nil
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := map[string]struct{}{phrase: {}}

	maxEditDistance2 := maxEditDistance
	candidates := make([]string, 0, 8)

	phrasePrefixLen := phraseLen
	if phrasePrefixLen > ix.prefixLength {
		phrasePrefixLen = ix.prefixLength
		candidates = append(candidates, string(phraseRunes[:phrasePrefixLen]))
	} else {
		candidates = append(candidates, phrase)
	}

	comparer := distance.New(o.algorithm)

	for ptr := 0; ptr < len(candidates); ptr++ {
		candidate := candidates[ptr]
		candidateRunes := []rune(candidate)
		candidateLen := len(candidateRunes)
		lenDiff := phrasePrefixLen - candidateLen

		if lenDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if bucket, ok := ix.deletes[hashString(candidate)]; ok {
			for _, suggestionTerm := range bucket {
				if suggestionTerm == phrase {
					continue
				}
				suggestionRunes := []rune(suggestionTerm)
				suggestionLen := len(suggestionRunes)

				if absInt(suggestionLen-phraseLen) > maxEditDistance2 ||
					suggestionLen < candidateLen ||
					(suggestionLen == candidateLen && suggestionTerm != candidate) {
					continue
				}

				suggestionPrefixLen := minInt(suggestionLen, ix.prefixLength)
				if suggestionPrefixLen > phrasePrefixLen && suggestionPrefixLen-candidateLen > maxEditDistance2 {
					continue
				}

				var dist int
				switch {
				case candidateLen == 0:
					dist = maxInt(phraseLen, suggestionLen)
					if dist > maxEditDistance2 {
						continue
					}
					if _, seen := consideredSuggestions[suggestionTerm]; seen {
						continue
					}
					consideredSuggestions[suggestionTerm] = struct{}{}

				case suggestionLen == 1:
					if strings.ContainsRune(phrase, suggestionRunes[0]) {
						dist = phraseLen - 1
					} else {
						dist = phraseLen
					}
					if dist > maxEditDistance2 {
						continue
					}
					if _, seen := consideredSuggestions[suggestionTerm]; seen {
						continue
					}
					consideredSuggestions[suggestionTerm] = struct{}{}

				default:
					if prefixMismatchShortcut(ix.prefixLength, maxEditDistance, candidateLen, phraseLen, suggestionLen, phraseRunes, suggestionRunes) {
						continue
					}
					if (verbosity != All && !deleteInSuggestionPrefix(candidateRunes, suggestionRunes, ix.prefixLength)) ||
						func() bool { _, seen := consideredSuggestions[suggestionTerm]; return seen }() {
						continue
					}
					consideredSuggestions[suggestionTerm] = struct{}{}
					dist = comparer.Distance(phrase, suggestionTerm, maxEditDistance2)
					if dist < 0 {
						continue
					}
				}

				if dist <= maxEditDistance2 {
					count := ix.words[suggestionTerm]
					si := Suggestion{Term: suggestionTerm, Distance: dist, Count: count}
					if len(suggestions) > 0 {
						switch verbosity {
						case Closest:
							if dist < maxEditDistance2 {
								suggestions = suggestions[:0]
							}
						case Top:
							if dist < maxEditDistance2 || count > suggestions[0].Count {
								maxEditDistance2 = dist
								suggestions[0] = si
							}
							continue
						}
					}
					if verbosity != All {
						maxEditDistance2 = dist
					}
					suggestions = append(suggestions, si)
				}
			}
		}

		if lenDiff < maxEditDistance && candidateLen <= ix.prefixLength {
			if verbosity != All && lenDiff >= maxEditDistance2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				deleteWord := removeRuneAt(candidate, i)
				if _, seen := consideredDeletes[deleteWord]; !seen {
					consideredDeletes[deleteWord] = struct{}{}
					candidates = append(candidates, deleteWord)
				}
			}
		}
	}

	suggestions.sortInPlace()
	return applyCasing(earlyExit()), nil
}

// prefixMismatchShortcut implements the "edits in prefix == max edit distance
// and no identical suffix" rule from spec section 4.4: when true, the caller
// must skip this suggestion without invoking the distance comparer.
func prefixMismatchShortcut(prefixLength, maxEditDistance, candidateLen, phraseLen, suggestionLen int, phraseRunes, suggestionRunes []rune) bool {
	edgeCase := prefixLength-maxEditDistance == candidateLen
	minDistance := 0
	if edgeCase {
		minDistance = minInt(phraseLen, suggestionLen) - prefixLength
	}

	if edgeCase && minDistance > 1 {
		pi := phraseLen + 1 - minDistance
		si := suggestionLen + 1 - minDistance
		if pi >= 0 && si >= 0 && pi <= phraseLen && si <= suggestionLen {
			if string(phraseRunes[pi:]) != string(suggestionRunes[si:]) {
				return true
			}
		}
	}
	if minDistance > 0 {
		pIdx := phraseLen - minDistance
		sIdx := suggestionLen - minDistance
		if pIdx >= 1 && sIdx >= 1 && pIdx < phraseLen && sIdx < suggestionLen {
			if phraseRunes[pIdx] != suggestionRunes[sIdx] {
				if phraseRunes[pIdx-1] != suggestionRunes[sIdx] || phraseRunes[pIdx] != suggestionRunes[sIdx-1] {
					return true
				}
			}
		}
	}
	return false
}

// deleteInSuggestionPrefix checks that every character of candidate occurs,
// in order, within suggestion's prefix window — rejecting matches that only
// share a delete-bucket because of a hash collision.
func deleteInSuggestionPrefix(candidate, suggestion []rune, prefixLength int) bool {
	if len(candidate) == 0 {
		return true
	}
	suggestionLen := len(suggestion)
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	j := 0
	for i := 0; i < len(candidate); i++ {
		delChar := candidate[i]
		for j < suggestionLen && delChar != suggestion[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
