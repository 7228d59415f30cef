package spell

// Index is the symmetric-delete dictionary: the term->count table, the
// below-threshold staging table, the delete-bucket map, and the bigram
// table together with the derived max term length.
//
// Index is not safe for concurrent mutation, and mutating methods must not
// be called concurrently with queries against the same instance (spec
// section 5). Separate goroutines may call read-only methods (Lookup,
// LookupCompound, WordSegmentation) concurrently against a frozen Index
// provided each goroutine uses its own *distance.Comparer and scratch state,
// which the query methods on Index already allocate per call.
type Index struct {
	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            uint64

	words          map[string]uint64
	belowThreshold map[string]uint64
	deletes        map[uint32][]string
	bigrams        map[string]uint64
	bigramCountMin uint64

	maxLength int
}

// referenceCorpusSize (N) is the fixed corpus size used to normalize
// unigram/bigram frequencies into probabilities in compound correction and
// segmentation.
const referenceCorpusSize uint64 = 1024908267229

// NewIndex validates its arguments and constructs an empty Index.
func NewIndex(maxDictionaryEditDistance, prefixLength int, countThreshold uint64) (*Index, error) {
	if maxDictionaryEditDistance < 0 {
		return nil, &ConfigurationError{Message: "max dictionary edit distance cannot be negative"}
	}
	if prefixLength < 1 || prefixLength <= maxDictionaryEditDistance {
		return nil, &ConfigurationError{Message: "prefix length must be at least 1 and greater than max dictionary edit distance"}
	}
	return &Index{
		maxDictionaryEditDistance: maxDictionaryEditDistance,
		prefixLength:              prefixLength,
		countThreshold:            countThreshold,
		words:                     make(map[string]uint64),
		belowThreshold:            make(map[string]uint64),
		deletes:                   make(map[uint32][]string),
		bigrams:                   make(map[string]uint64),
	}, nil
}

// MaxDictionaryEditDistance returns the index's configured edit-distance
// ceiling, the largest distance any Lookup call against it may request.
func (ix *Index) MaxDictionaryEditDistance() int { return ix.maxDictionaryEditDistance }

// PrefixLength returns the configured prefix length.
func (ix *Index) PrefixLength() int { return ix.prefixLength }

// CountThreshold returns the configured count threshold.
func (ix *Index) CountThreshold() uint64 { return ix.countThreshold }

// MaxLength returns the rune length of the longest term currently in Words.
func (ix *Index) MaxLength() int { return ix.maxLength }

// WordCount returns the frequency of term, and whether it is present in
// Words (at-or-above threshold).
func (ix *Index) WordCount(term string) (uint64, bool) {
	c, ok := ix.words[term]
	return c, ok
}

// saturatingAdd adds b to a, clamping at the platform uint64 maximum instead
// of wrapping on overflow (spec section 3 invariant, section 8 invariant 8).
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

// CreateDictionaryEntry creates or updates a dictionary entry. It returns
// true if and only if term was newly inserted as an at-or-above-threshold
// correct spelling (the moment its deletes are generated); see spec section
// 4.3.
func (ix *Index) CreateDictionaryEntry(term string, count int64) bool {
	if count <= 0 {
		if ix.countThreshold > 0 {
			return false
		}
		count = 0
	}
	addend := uint64(count)

	if ix.countThreshold > 1 {
		if prev, ok := ix.belowThreshold[term]; ok {
			newCount := saturatingAdd(prev, addend)
			if newCount >= ix.countThreshold {
				delete(ix.belowThreshold, term)
				return ix.promote(term, newCount)
			}
			ix.belowThreshold[term] = newCount
			return false
		}
	}

	if prev, ok := ix.words[term]; ok {
		ix.words[term] = saturatingAdd(prev, addend)
		return false
	}

	if addend < ix.countThreshold {
		ix.belowThreshold[term] = addend
		return false
	}

	return ix.promote(term, addend)
}

// promote inserts term into Words at count, updates maxLength, and
// generates its delete neighborhood.
func (ix *Index) promote(term string, count uint64) bool {
	ix.words[term] = count

	if n := len([]rune(term)); n > ix.maxLength {
		ix.maxLength = n
	}

	for d := range deletesPrefix(term, ix.maxDictionaryEditDistance, ix.prefixLength) {
		h := hashString(d)
		ix.deletes[h] = append(ix.deletes[h], term)
	}
	return true
}

// DeleteDictionaryEntry removes term from Words and from every delete bucket
// it populated. It returns false if term was not present in Words.
func (ix *Index) DeleteDictionaryEntry(term string) bool {
	if _, ok := ix.words[term]; !ok {
		return false
	}
	delete(ix.words, term)

	if len([]rune(term)) == ix.maxLength {
		ix.recomputeMaxLength()
	}

	for d := range deletesPrefix(term, ix.maxDictionaryEditDistance, ix.prefixLength) {
		h := hashString(d)
		bucket := ix.deletes[h]
		for i, s := range bucket {
			if s == term {
				bucket = append(bucket[:i:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(ix.deletes, h)
		} else {
			ix.deletes[h] = bucket
		}
	}
	return true
}

func (ix *Index) recomputeMaxLength() {
	max := 0
	for term := range ix.words {
		if n := len([]rune(term)); n > max {
			max = n
		}
	}
	ix.maxLength = max
}

// CreateBigramEntry inserts or updates a bigram (two-word key, joined by a
// single space) and recomputes bigramCountMin.
func (ix *Index) CreateBigramEntry(key string, count uint64) {
	prev, existed := ix.bigrams[key]
	ix.bigrams[key] = saturatingAdd(prev, count)
	if existed && prev == ix.bigramCountMin {
		// the entry that held the minimum grew: rescan for the new minimum
		ix.bigramCountMin = ix.bigrams[key]
		for _, c := range ix.bigrams {
			if c < ix.bigramCountMin {
				ix.bigramCountMin = c
			}
		}
		return
	}
	if ix.bigramCountMin == 0 || ix.bigrams[key] < ix.bigramCountMin {
		ix.bigramCountMin = ix.bigrams[key]
	}
}

// BigramCount returns the frequency of a bigram key and whether it exists.
func (ix *Index) BigramCount(key string) (uint64, bool) {
	c, ok := ix.bigrams[key]
	return c, ok
}

// hashString is the FNV-1a hash used to key delete buckets, matching the
// teacher's own getStringHash.
func hashString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
