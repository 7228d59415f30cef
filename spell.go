// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package spell provides fast approximate-string lookup, spelling
// correction, compound-phrase correction, and word segmentation built on a
// symmetric-delete dictionary index.
package spell

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultMaxDictionaryEditDistance = 2
	defaultPrefixLength              = 7
	defaultCountThreshold            = uint64(1)
)

// indexOptions collects the construction-time settings for a Spell.
type indexOptions struct {
	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            uint64
	logger                    *zap.Logger
}

// Option configures a new Spell instance.
type Option func(*indexOptions)

// WithMaxDictionaryEditDistance sets the ceiling on edit distance any
// Lookup against this dictionary may request. Defaults to 2.
func WithMaxDictionaryEditDistance(d int) Option {
	return func(o *indexOptions) { o.maxDictionaryEditDistance = d }
}

// WithPrefixLength sets how many leading characters of each dictionary term
// get delete-expanded. Defaults to 7.
func WithPrefixLength(n int) Option {
	return func(o *indexOptions) { o.prefixLength = n }
}

// WithCountThreshold sets the minimum cumulative frequency a term must
// reach before it's promoted out of below-threshold staging. Defaults to 1
// (no staging).
func WithCountThreshold(n uint64) Option {
	return func(o *indexOptions) { o.countThreshold = n }
}

// WithLogger attaches a zap logger used for dictionary-loading diagnostics.
// A nil logger (the default) discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *indexOptions) { o.logger = l }
}

// Spell is the public entry point: a dictionary index plus the loaders and
// logging needed to build one from files on disk.
type Spell struct {
	index *Index
	log   logger
}

// New constructs an empty Spell ready to have a dictionary loaded into it.
func New(opts ...Option) (*Spell, error) {
	o := &indexOptions{
		maxDictionaryEditDistance: defaultMaxDictionaryEditDistance,
		prefixLength:              defaultPrefixLength,
		countThreshold:            defaultCountThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}

	ix, err := NewIndex(o.maxDictionaryEditDistance, o.prefixLength, o.countThreshold)
	if err != nil {
		return nil, err
	}
	return &Spell{index: ix, log: newLogger(o.logger)}, nil
}

// Index exposes the underlying dictionary index, for callers that want the
// lower-level Lookup/LookupCompound/WordSegmentation methods directly or
// need to serialize mutations themselves.
func (s *Spell) Index() *Index { return s.index }

// LoadDictionary reads "term<separator>count" records from path, one per
// line, and inserts each as a dictionary entry. Malformed lines are logged
// and skipped rather than aborting the whole load.
func (s *Spell) LoadDictionary(path string, termIndex, countIndex int, separator string) error {
	if separator == "" {
		separator = " "
	}

	f, ok, err := s.openDictionaryFile(path)
	if err != nil || !ok {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, separator)
		if len(fields) <= termIndex || len(fields) <= countIndex {
			s.log.Warn("skipping malformed dictionary line", zap.String("path", path), zap.Int("line", lineNum))
			continue
		}

		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			s.log.Warn("skipping dictionary line with unparseable count",
				zap.String("path", path), zap.Int("line", lineNum), zap.Error(err))
			continue
		}

		s.index.CreateDictionaryEntry(fields[termIndex], count)
	}
	return scanner.Err()
}

// openDictionaryFile opens path, treating a missing file as the spec's
// non-raising NotFound case: a warning is logged and (nil, false, nil) is
// returned so the caller can skip the load instead of failing outright.
// Any other error (permissions, I/O) is returned normally.
func (s *Spell) openDictionaryFile(path string) (*os.File, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("dictionary file not found, skipping", zap.String("path", path))
			return nil, false, nil
		}
		return nil, false, err
	}
	return f, true, nil
}

// LoadBigramDictionary reads "term1<separator>term2<separator>...count"
// records from path, treating the two columns at termIndex and
// termIndex+1 as a bigram key. Malformed lines are logged and skipped.
func (s *Spell) LoadBigramDictionary(path string, termIndex, countIndex int, separator string) error {
	if separator == "" {
		separator = " "
	}

	f, ok, err := s.openDictionaryFile(path)
	if err != nil || !ok {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	need := termIndex + 2
	if countIndex+1 > need {
		need = countIndex + 1
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, separator)
		if len(fields) < need {
			s.log.Warn("skipping malformed bigram line", zap.String("path", path), zap.Int("line", lineNum))
			continue
		}

		count, err := strconv.ParseUint(fields[countIndex], 10, 64)
		if err != nil {
			s.log.Warn("skipping bigram line with unparseable count",
				zap.String("path", path), zap.Int("line", lineNum), zap.Error(err))
			continue
		}

		s.index.CreateBigramEntry(bigramKey(fields[termIndex], fields[termIndex+1]), count)
	}
	return scanner.Err()
}

// CreateDictionary builds a frequency dictionary by tokenizing free-form
// text read from path, one word occurrence incrementing its count by one,
// the way symspellpy's create_dictionary bootstraps a dictionary from a
// raw corpus instead of a pre-counted frequency list.
func (s *Spell) CreateDictionary(path string) error {
	f, ok, err := s.openDictionaryFile(path)
	if err != nil || !ok {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	counts := make(map[string]int64)
	for scanner.Scan() {
		for _, term := range parseWords(scanner.Text(), false) {
			counts[term]++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for term, count := range counts {
		s.index.CreateDictionaryEntry(term, count)
	}
	return nil
}

// Lookup delegates to the underlying Index.
func (s *Spell) Lookup(phrase string, verbosity Verbosity, opts ...LookupOption) (Suggestions, error) {
	return s.index.Lookup(phrase, verbosity, opts...)
}

// LookupCompound delegates to the underlying Index.
func (s *Spell) LookupCompound(phrase string, opts ...CompoundOption) (CompoundResult, error) {
	return s.index.LookupCompound(phrase, opts...)
}

// WordSegmentation delegates to the underlying Index.
func (s *Spell) WordSegmentation(phrase string, opts ...SegmentOption) (SegmentationResult, error) {
	return s.index.WordSegmentation(phrase, opts...)
}

// Save persists the dictionary to path as a gzip-compressed JSON snapshot.
func (s *Spell) Save(path string) error {
	return s.index.Save(path)
}

// Load reads a snapshot written by Save and returns a ready-to-use Spell.
func Load(path string) (*Spell, error) {
	ix, err := LoadIndex(path)
	if err != nil {
		return nil, err
	}
	return &Spell{index: ix, log: newLogger(nil)}, nil
}
