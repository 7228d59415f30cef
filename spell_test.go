package spell

import (
	"fmt"
	"os"
	"testing"
)

func newWithExample(t *testing.T) *Spell {
	t.Helper()
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Index().CreateDictionaryEntry("example", 1) {
		t.Fatal("failed to insert entry")
	}
	return s
}

func TestCreateDictionaryEntry(t *testing.T) {
	newWithExample(t)
}

func TestSpellLookup(t *testing.T) {
	s := newWithExample(t)

	suggestions, err := s.Lookup("eample", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("did not get exactly one match, got %d", len(suggestions))
	}
	if suggestions[0].Term != "example" {
		t.Fatalf("expected example, got %s", suggestions[0].Term)
	}
}

func TestDeleteDictionaryEntry(t *testing.T) {
	s := newWithExample(t)
	if ok := s.Index().DeleteDictionaryEntry("example"); !ok {
		t.Fatal("failed to remove entry")
	}

	suggestions, err := s.Lookup("example", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("did not get exactly zero matches, got %d", len(suggestions))
	}
	if ok := s.Index().DeleteDictionaryEntry("example"); ok {
		t.Fatal("should not remove twice")
	}
}

func TestMaxLength(t *testing.T) {
	s := newWithExample(t)
	if n := s.Index().MaxLength(); n != len("example") {
		t.Fatalf("expected max length %d, got %d", len("example"), n)
	}
}

func TestSaveLoad(t *testing.T) {
	s1 := newWithExample(t)
	defer os.Remove("./test.dump")
	if err := s1.Save("./test.dump"); err != nil {
		t.Fatal(err)
	}

	s2, err := Load("./test.dump")
	if err != nil {
		t.Fatal(err)
	}

	suggestions, err := s2.Lookup("eample", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("did not get exactly one match, got %d", len(suggestions))
	}
	if suggestions[0].Term != "example" {
		t.Fatalf("expected example, got %s", suggestions[0].Term)
	}
}

func TestCornerCaseEmptyTerm(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Index().CreateDictionaryEntry("", 1) {
		t.Fatal("failed to add empty entry to index")
	}

	suggestions, err := s.Lookup("a", Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("did not get exactly one match, got %d", len(suggestions))
	}
	if suggestions[0].Term != "" {
		t.Fatalf("expected empty term, got %q", suggestions[0].Term)
	}
}

func TestLookupCompoundBasic(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"the", "quick", "brown", "fox"} {
		s.Index().CreateDictionaryEntry(w, 100)
	}

	result, err := s.LookupCompound("the qwick brown fox")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := result.Term, "the quick brown fox"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLoadDictionaryMissingFileDoesNotError(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.LoadDictionary("./does-not-exist.txt", 0, 1, " "); err != nil {
		t.Fatalf("expected a missing dictionary file to be skipped, got error: %v", err)
	}
	if !s.Index().CreateDictionaryEntry("example", 1) {
		t.Fatal("index should still be usable after a skipped load")
	}
}

func TestWordSegmentationBasic(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"the", "quick", "brown", "fox"} {
		s.Index().CreateDictionaryEntry(w, 100)
	}

	result, err := s.WordSegmentation("thequickbrownfox")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := result.CorrectedPhrase, "the quick brown fox"; got != want {
		t.Fatalf("expected %q, got %q", want, fmt.Sprintf("%v", got))
	}
}
