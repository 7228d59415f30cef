package spell

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// snapshotDataVersion is bumped whenever the on-disk shape changes in a way
// that breaks compatibility with older snapshots.
const snapshotDataVersion = 1

type snapshotFile struct {
	DataVersion     int                 `json:"data_version"`
	MaxEditDistance int                 `json:"max_dictionary_edit_distance"`
	PrefixLength    int                 `json:"prefix_length"`
	CountThreshold  uint64              `json:"count_threshold"`
	MaxLength       int                 `json:"max_length"`
	BigramCountMin  uint64              `json:"bigram_count_min"`
	Words           map[string]uint64   `json:"words"`
	Bigrams         map[string]uint64   `json:"bigrams"`
	Deletes         map[uint32][]string `json:"deletes"`
}

// Save writes a gzip-compressed JSON snapshot of ix to path, following the
// teacher's gzip+JSON persistence shape.
func (ix *Index) Save(path string) error {
	snap := snapshotFile{
		DataVersion:     snapshotDataVersion,
		MaxEditDistance: ix.maxDictionaryEditDistance,
		PrefixLength:    ix.prefixLength,
		CountThreshold:  ix.countThreshold,
		MaxLength:       ix.maxLength,
		BigramCountMin:  ix.bigramCountMin,
		Words:           ix.words,
		Bigrams:         ix.bigrams,
		Deletes:         ix.deletes,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		return err
	}
	return gz.Close()
}

// LoadIndex reads a snapshot written by Save. It uses gjson for the scalar
// fields and the flat word/bigram tables, matching the teacher's Load, and
// falls back to encoding/json for the delete map since its keys are
// integers rather than JSON strings.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}

	got := int(gjson.GetBytes(data, "data_version").Int())
	if got != snapshotDataVersion {
		return nil, &SnapshotVersionMismatch{Got: got, Want: snapshotDataVersion}
	}

	ix := &Index{
		maxDictionaryEditDistance: int(gjson.GetBytes(data, "max_dictionary_edit_distance").Int()),
		prefixLength:              int(gjson.GetBytes(data, "prefix_length").Int()),
		countThreshold:            uint64(gjson.GetBytes(data, "count_threshold").Int()),
		maxLength:                 int(gjson.GetBytes(data, "max_length").Int()),
		bigramCountMin:            uint64(gjson.GetBytes(data, "bigram_count_min").Int()),
		words:                     make(map[string]uint64),
		belowThreshold:            make(map[string]uint64),
		bigrams:                   make(map[string]uint64),
	}

	gjson.GetBytes(data, "words").ForEach(func(key, value gjson.Result) bool {
		ix.words[key.String()] = uint64(value.Int())
		return true
	})
	gjson.GetBytes(data, "bigrams").ForEach(func(key, value gjson.Result) bool {
		ix.bigrams[key.String()] = uint64(value.Int())
		return true
	})

	deletes := make(map[uint32][]string)
	if raw := gjson.GetBytes(data, "deletes").Raw; raw != "" {
		if err := json.Unmarshal([]byte(raw), &deletes); err != nil {
			return nil, err
		}
	}
	ix.deletes = deletes

	return ix, nil
}
