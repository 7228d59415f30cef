package spell

import "math"

// bigramKey builds the table key for the two-word sequence part1 part2.
func bigramKey(part1, part2 string) string {
	return part1 + " " + part2
}

// splitCandidateCount scores a candidate two-word split (part1, part2) of
// token for LookupCompound, per spec section 4.5's count-scoring rule:
//
//   - If "part1 part2" is a known bigram, its count is used, boosted above
//     the best single-term correction's count when the split is a strong
//     signal that the split is right: the two corrected parts reconstruct
//     token exactly with no edits on either side, or either part equals the
//     single-term correction outright.
//   - Otherwise the count is estimated as the Naive Bayes product
//     count1/N * count2 (the two corrections' probabilities multiplied back
//     into a pseudo-count), capped at bigramCountMin since an unseen bigram
//     cannot be credited with a higher frequency than the rarest bigram this
//     index has actually observed.
//
// single/hasSingle carry the best whole-token correction so the boost
// conditions can compare against it; hasSingle is false when lookup found no
// correction for token at all.
func (ix *Index) splitCandidateCount(part1, part2, token string, single Suggestion, hasSingle bool, count1, count2 uint64) uint64 {
	count, ok := ix.bigrams[bigramKey(part1, part2)]
	if !ok {
		estimate := uint64(float64(count1) / float64(referenceCorpusSize) * float64(count2))
		return minUint64(ix.bigramCountMin, estimate)
	}

	switch {
	case hasSingle && part1+part2 == token:
		count = maxUint64(count, single.Count+2)
	case hasSingle && (part1 == single.Term || part2 == single.Term):
		count = maxUint64(count, single.Count+1)
	case !hasSingle && part1+part2 == token:
		count = maxUint64(count, maxUint64(count1, count2)+2)
	}
	return count
}

// unknownTermPseudoCount is the probability-sentinel count spec section 4.5
// assigns an unresolved token: 10/10^|token|, truncated like the rest of
// this package's integer pseudo-counts. It collapses to 0 for anything but
// single-character tokens, which is intentional — it only has to rank below
// every real dictionary count, not carry meaning on its own.
func unknownTermPseudoCount(term string) uint64 {
	n := len([]rune(term))
	v := 10 / math.Pow(10, float64(n))
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// termProbability converts a dictionary frequency into a Naive Bayes
// log10 probability against the fixed reference corpus size, flooring at
// one occurrence in N so unknown terms still contribute a finite (very
// unlikely) probability rather than -Inf.
func termProbability(count uint64) float64 {
	if count == 0 {
		return math.Log10(1 / float64(referenceCorpusSize))
	}
	return math.Log10(float64(count) / float64(referenceCorpusSize))
}

// phraseLogProbability sums per-term log probabilities under the Naive
// Bayes independence assumption, giving a whole-phrase score. LookupCompound
// does not call it; it ranks combines and splits by counts.
func phraseLogProbability(counts []uint64) float64 {
	total := 0.0
	for _, c := range counts {
		total += termProbability(c)
	}
	return total
}
