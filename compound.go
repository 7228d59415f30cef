package spell

import (
	"strings"
	"unicode"

	"github.com/corrigo/spell/distance"
)

// CompoundOptions configures a single call to Index.LookupCompound.
type CompoundOptions struct {
	maxEditDistance      int
	ignoreNonWords       bool
	ignoreTermWithDigits bool
	transferCasing       bool
}

// CompoundOption configures CompoundOptions.
type CompoundOption func(*CompoundOptions)

// WithCompoundMaxEditDistance caps the per-token edit distance considered.
func WithCompoundMaxEditDistance(d int) CompoundOption {
	return func(o *CompoundOptions) { o.maxEditDistance = d }
}

// WithIgnoreNonWords passes all-caps acronym tokens straight through
// uncorrected, and also treats pure-integer tokens as passthrough.
func WithIgnoreNonWords() CompoundOption {
	return func(o *CompoundOptions) { o.ignoreNonWords = true }
}

// WithIgnoreTermWithDigits is the stricter variant of WithIgnoreNonWords:
// besides acronyms and pure integers, any token of two or more characters
// that contains a digit (e.g. "1st", "r2d2") is treated as passthrough.
func WithIgnoreTermWithDigits() CompoundOption {
	return func(o *CompoundOptions) { o.ignoreNonWords = true; o.ignoreTermWithDigits = true }
}

// WithCompoundTransferCasing transfers the input phrase's casing onto the
// final corrected phrase.
func WithCompoundTransferCasing() CompoundOption {
	return func(o *CompoundOptions) { o.transferCasing = true }
}

func newCompoundOptions(ix *Index, opts []CompoundOption) *CompoundOptions {
	o := &CompoundOptions{maxEditDistance: ix.maxDictionaryEditDistance}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CompoundResult is the outcome of LookupCompound: the corrected phrase and
// the total edit distance summed across its tokens.
type CompoundResult struct {
	Term     string
	Distance int
}

// LookupCompound corrects a multi-word phrase token by token, additionally
// considering whether two adjacent tokens should be merged (a space was
// dropped) or a single token should be split (a space was missed), per spec
// section 4.5. Splits compete using bigram-adjusted frequency so an
// attested two-word phrase can outrank a merge built from individually
// common but never-co-occurring words.
func (ix *Index) LookupCompound(phrase string, opts ...CompoundOption) (CompoundResult, error) {
	o := newCompoundOptions(ix, opts)
	maxEditDistance := o.maxEditDistance

	terms := parseWords(phrase, true)
	if len(terms) == 0 {
		return CompoundResult{Term: phrase}, nil
	}

	var parts Suggestions
	lastCombi := false

	for i, term := range terms {
		passthrough := o.ignoreNonWords && (isAcronym(term, o.ignoreTermWithDigits) || isDigitToken(term))

		var suggestions Suggestions
		if !passthrough {
			var err error
			suggestions, err = ix.Lookup(strings.ToLower(term), Top, WithMaxEditDistance(maxEditDistance))
			if err != nil {
				return CompoundResult{}, err
			}
		}

		if i > 0 && !lastCombi && !passthrough && len(parts) > 0 {
			combined := strings.ToLower(terms[i-1] + term)
			combiSuggestions, err := ix.Lookup(combined, Top, WithMaxEditDistance(maxEditDistance))
			if err != nil {
				return CompoundResult{}, err
			}
			if len(combiSuggestions) > 0 {
				best1 := parts[len(parts)-1]
				best2 := fallbackSuggestion(term, maxEditDistance, suggestions)
				distSum := best1.Distance + best2.Distance

				combi := combiSuggestions[0]
				if distSum >= 0 && (combi.Distance+1 < distSum ||
					(combi.Distance+1 == distSum &&
						float64(combi.Count) > float64(best1.Count)/float64(referenceCorpusSize)*float64(best2.Count))) {
					combi.Distance++
					parts[len(parts)-1] = combi
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		switch {
		case len(suggestions) > 0 && (suggestions[0].Term == strings.ToLower(term) || maxEditDistance == 0):
			parts = append(parts, suggestions[0])
		case passthrough:
			parts = append(parts, Suggestion{Term: term, Distance: 0, Count: referenceCorpusSize})
		case len([]rune(term)) == 1:
			parts = append(parts, fallbackSuggestion(term, maxEditDistance, suggestions))
		default:
			single := fallbackSuggestion(term, maxEditDistance, suggestions)
			hasSingle := len(suggestions) > 0
			if split, ok := ix.bestSplit(strings.ToLower(term), maxEditDistance, single, hasSingle); ok {
				parts = append(parts, split)
			} else {
				parts = append(parts, single)
			}
		}
	}

	var b strings.Builder
	totalDistance := 0
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Term)
		totalDistance += p.Distance
	}

	result := CompoundResult{Term: b.String(), Distance: totalDistance}
	if o.transferCasing {
		result.Term = TransferCasingForSimilarText(phrase, result.Term)
	}
	return result, nil
}

// fallbackSuggestion returns the best single-term suggestion, or an unknown
// sentinel carrying term itself at the k+1 distance with the probability-
// sentinel count from spec section 4.5.
func fallbackSuggestion(term string, maxEditDistance int, suggestions Suggestions) Suggestion {
	if len(suggestions) > 0 {
		return suggestions[0]
	}
	return Suggestion{Term: term, Distance: maxEditDistance + 1, Count: unknownTermPseudoCount(term)}
}

// bestSplit tries every two-way split of token and returns the one whose
// parts both resolve to dictionary words, preferring the lowest combined
// edit distance and, among ties, the highest bigram-adjusted frequency per
// spec section 4.5. single/hasSingle seed the comparison with the best
// whole-token correction, so a split that is strictly worse than the
// single-term correction loses outright instead of winning by default.
func (ix *Index) bestSplit(token string, maxEditDistance int, single Suggestion, hasSingle bool) (Suggestion, bool) {
	runes := []rune(token)
	if len(runes) < 2 {
		return Suggestion{}, false
	}

	comparer := distance.New(distance.DamerauOSA)
	var best *Suggestion
	if hasSingle {
		seed := single
		best = &seed
	}

	for j := 1; j < len(runes); j++ {
		part1 := string(runes[:j])
		part2 := string(runes[j:])

		s1, err := ix.Lookup(part1, Top, WithMaxEditDistance(maxEditDistance))
		if err != nil || len(s1) == 0 {
			continue
		}
		s2, err := ix.Lookup(part2, Top, WithMaxEditDistance(maxEditDistance))
		if err != nil || len(s2) == 0 {
			continue
		}

		splitTerm := s1[0].Term + " " + s2[0].Term
		dist := comparer.Distance(token, splitTerm, maxEditDistance)
		if dist < 0 {
			dist = maxEditDistance + 1
		}

		if best != nil {
			if dist > best.Distance {
				continue
			}
			if dist < best.Distance {
				best = nil
			}
		}

		count := ix.splitCandidateCount(s1[0].Term, s2[0].Term, token, single, hasSingle, s1[0].Count, s2[0].Count)
		if best != nil && count <= best.Count {
			continue
		}

		candidate := Suggestion{Term: splitTerm, Distance: dist, Count: count}
		best = &candidate
	}

	if best == nil || (hasSingle && best.Term == single.Term) {
		return Suggestion{}, false
	}
	return *best, true
}

// isDigitToken reports whether token is non-empty and every rune is a digit.
func isDigitToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
