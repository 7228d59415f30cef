package spell

// deletesPrefix produces every string obtainable from the prefix-truncated
// key by up to maxEditDistance single-character deletions, plus the
// (possibly truncated) key itself. The result set has no meaningful order;
// callers only care about set membership.
//
// Ported from symspellpy's SymSpell._edits / _edits_prefix.
func deletesPrefix(key string, maxEditDistance, prefixLength int) map[string]struct{} {
	runes := []rune(key)
	result := make(map[string]struct{}, 4)

	if len(runes) <= maxEditDistance {
		result[""] = struct{}{}
	}
	if len(runes) > prefixLength {
		runes = runes[:prefixLength]
		key = string(runes)
	}

	result[key] = struct{}{}
	edits(key, 0, maxEditDistance, result)
	return result
}

// edits recursively deletes one character at a time from word, adding every
// new result to deletes and recursing while depth allows.
func edits(word string, depth, maxEditDistance int, deletes map[string]struct{}) {
	runes := []rune(word)
	if len(runes) <= 1 {
		return
	}
	depth++
	for i := range runes {
		deleteWord := string(append(append([]rune{}, runes[:i]...), runes[i+1:]...))
		if _, seen := deletes[deleteWord]; !seen {
			deletes[deleteWord] = struct{}{}
			if depth < maxEditDistance {
				edits(deleteWord, depth, maxEditDistance, deletes)
			}
		}
	}
}

// removeRuneAt returns word with the rune at index i removed.
func removeRuneAt(word string, i int) string {
	runes := []rune(word)
	return string(append(append([]rune{}, runes[:i]...), runes[i+1:]...))
}
