package spell

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/corrigo/spell/internal/normalize"
)

// SegmentPiece is one word of a WordSegmentation result.
type SegmentPiece struct {
	// Input is the substring of the (normalized) phrase this piece covers.
	Input string
	// Term is the corrected dictionary spelling chosen for this piece.
	Term string
	// Count is the dictionary frequency of Term, if known.
	Count uint64
}

// SegmentationResult is the outcome of WordSegmentation.
type SegmentationResult struct {
	CorrectedPhrase string
	Segments        []SegmentPiece
	Distance        int
	Probability     float64
}

// SegmentOptions configures a single call to Index.WordSegmentation.
type SegmentOptions struct {
	maxEditDistance           int
	maxSegmentationWordLength int
	ignoreToken               *regexp.Regexp
}

// SegmentOption configures SegmentOptions.
type SegmentOption func(*SegmentOptions)

// WithSegmentationMaxEditDistance caps the per-word edit distance used while
// scoring candidate segmentations.
func WithSegmentationMaxEditDistance(d int) SegmentOption {
	return func(o *SegmentOptions) { o.maxEditDistance = d }
}

// WithMaxSegmentationWordLength bounds the longest word segmentation will
// try to carve out of the phrase, overriding the Index's longest known word.
func WithMaxSegmentationWordLength(n int) SegmentOption {
	return func(o *SegmentOptions) { o.maxSegmentationWordLength = n }
}

// WithSegmentationIgnoreToken protects substrings matching re from
// correction, the same passthrough WithIgnoreToken gives Lookup, passed
// through to every per-part Lookup call this function makes.
func WithSegmentationIgnoreToken(re *regexp.Regexp) SegmentOption {
	return func(o *SegmentOptions) { o.ignoreToken = re }
}

func newSegmentOptions(ix *Index, opts []SegmentOption) *SegmentOptions {
	o := &SegmentOptions{
		maxEditDistance:           ix.maxDictionaryEditDistance,
		maxSegmentationWordLength: ix.maxLength,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WordSegmentation divides phrase, which may have had its spaces dropped or
// garbled, into the most probable sequence of dictionary words. It runs an
// O(n) dynamic program over a ring buffer sized to the longest candidate
// word, matching spec section 4.6, after normalizing the input with
// internal/normalize to tolerate soft hyphens and confusable characters.
func (ix *Index) WordSegmentation(phrase string, opts ...SegmentOption) (SegmentationResult, error) {
	o := newSegmentOptions(ix, opts)
	phrase = normalize.Fold(phrase)

	runes := []rune(phrase)
	phraseLen := len(runes)
	if phraseLen == 0 {
		return SegmentationResult{}, nil
	}

	maxWordLen := o.maxSegmentationWordLength
	if maxWordLen <= 0 {
		maxWordLen = 1
	}

	arraySize := minInt(phraseLen, maxWordLen)
	circularIdx := -1

	type composition struct {
		segmented   string
		corrected   string
		distanceSum int
		probability float64
	}
	compositions := make([]composition, arraySize)

	for i := 0; i < phraseLen; i++ {
		jMax := minInt(phraseLen-i, maxWordLen)

		for j := 1; j <= jMax; j++ {
			part := string(runes[i : i+j])

			separatorLength := 0
			topDistance := 0
			var topProbability float64
			var topTerm string

			if unicode.IsSpace(runes[i]) {
				part = string(runes[i+1 : i+j])
			} else {
				separatorLength = 1
			}

			topDistance += len([]rune(part))
			part = strings.ReplaceAll(part, " ", "")
			topDistance -= len([]rune(part))

			partRunes := []rune(part)
			startsUpper := len(partRunes) > 0 && isUpper(partRunes[0])

			lookupOpts := []LookupOption{WithMaxEditDistance(o.maxEditDistance)}
			if o.ignoreToken != nil {
				lookupOpts = append(lookupOpts, WithIgnoreToken(o.ignoreToken))
			}
			suggestions, err := ix.Lookup(strings.ToLower(part), Top, lookupOpts...)
			if err != nil {
				return SegmentationResult{}, err
			}

			if len(suggestions) > 0 {
				topTerm = suggestions[0].Term
				if startsUpper {
					topTerm = recapitalize(topTerm)
				}
				topDistance += suggestions[0].Distance
				topProbability = termProbability(suggestions[0].Count)
			} else {
				topTerm = part
				topDistance += len([]rune(part))
				topProbability = math.Log10(10.0 / (float64(referenceCorpusSize) * math.Pow(10.0, float64(len([]rune(part))))))
			}

			destinationIdx := (j + circularIdx) % arraySize

			switch {
			case i == 0:
				compositions[destinationIdx] = composition{
					segmented:   part,
					corrected:   topTerm,
					distanceSum: topDistance,
					probability: topProbability,
				}
			case j == maxWordLen ||
				((compositions[circularIdx].distanceSum+topDistance == compositions[destinationIdx].distanceSum ||
					compositions[circularIdx].distanceSum+separatorLength+topDistance == compositions[destinationIdx].distanceSum) &&
					compositions[destinationIdx].probability < compositions[circularIdx].probability+topProbability) ||
				compositions[circularIdx].distanceSum+separatorLength+topDistance < compositions[destinationIdx].distanceSum:
				sep := " "
				if attachesWithoutSpace(part) {
					sep = ""
				}
				compositions[destinationIdx] = composition{
					segmented:   compositions[circularIdx].segmented + sep + part,
					corrected:   compositions[circularIdx].corrected + sep + topTerm,
					distanceSum: compositions[circularIdx].distanceSum + separatorLength + topDistance,
					probability: compositions[circularIdx].probability + topProbability,
				}
			}
		}

		circularIdx++
		if circularIdx == arraySize {
			circularIdx = 0
		}
	}

	final := compositions[circularIdx]
	segmentedWords := strings.Split(final.segmented, " ")
	correctedWords := strings.Split(final.corrected, " ")

	pieces := make([]SegmentPiece, len(correctedWords))
	for i, word := range correctedWords {
		count, _ := ix.WordCount(word)
		input := word
		if i < len(segmentedWords) {
			input = segmentedWords[i]
		}
		pieces[i] = SegmentPiece{Input: input, Term: word, Count: count}
	}

	return SegmentationResult{
		CorrectedPhrase: final.corrected,
		Segments:        pieces,
		Distance:        final.distanceSum,
		Probability:     final.probability,
	}, nil
}

// recapitalize upper-cases the first rune of term, leaving the rest alone.
func recapitalize(term string) string {
	runes := []rune(term)
	if len(runes) == 0 {
		return term
	}
	runes[0] = toUpperRune(runes[0])
	return string(runes)
}

// attachesWithoutSpace reports whether part should be joined onto the
// preceding piece without an intervening space: a lone punctuation
// character, or a two-character part led by an apostrophe (a contraction
// tail like "'s" or "'t").
func attachesWithoutSpace(part string) bool {
	runes := []rune(part)
	switch len(runes) {
	case 1:
		return unicode.IsPunct(runes[0])
	case 2:
		return runes[0] == '\''
	default:
		return false
	}
}
