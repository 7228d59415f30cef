package spell_test

import (
	"fmt"

	"github.com/corrigo/spell"
)

func ExampleSpell_lookup() {
	s, _ := spell.New()
	s.Index().CreateDictionaryEntry("example", 10)

	suggestions, _ := s.Lookup("eample", spell.Top)
	fmt.Println(suggestions.Words())
	// Output:
	// [example]
}

func ExampleSpell_lookup_editDistance() {
	s, _ := spell.New()
	s.Index().CreateDictionaryEntry("example", 10)

	// Exact matches only, i.e. edit distance 0.
	suggestions, _ := s.Lookup("eample", spell.Top, spell.WithMaxEditDistance(0))
	fmt.Println(suggestions.Words())
	// Output:
	// []
}

func ExampleSpell_lookupCompound() {
	s, _ := spell.New()
	for _, w := range []string{"the", "quick", "brown", "fox"} {
		s.Index().CreateDictionaryEntry(w, 100)
	}

	result, _ := s.LookupCompound("the qwick brown fox")
	fmt.Println(result.Term)
	// Output:
	// the quick brown fox
}

func ExampleSpell_wordSegmentation() {
	s, _ := spell.New()
	for _, w := range []string{"the", "quick", "brown", "fox"} {
		s.Index().CreateDictionaryEntry(w, 100)
	}

	result, _ := s.WordSegmentation("thequickbrownfox")
	fmt.Println(result.CorrectedPhrase)
	// Output:
	// the quick brown fox
}
