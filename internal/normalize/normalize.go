// Package normalize prepares free text for word segmentation: it strips
// soft hyphens that word processors insert at line-break points, applies
// NFKC so that visually-identical compatibility characters compare equal,
// and folds Unicode confusables (homoglyphs) to their canonical skeleton so
// that segmentation isn't defeated by lookalike characters pasted in from
// another script.
package normalize

import (
	"strings"

	"github.com/eskriett/confusables"
	"golang.org/x/text/unicode/norm"
)

const softHyphen = '­'

// Fold applies the soft-hyphen strip, NFKC, and confusable-skeleton passes,
// in that order, returning text ready for WordSegmentation.
func Fold(s string) string {
	s = stripSoftHyphens(s)
	s = norm.NFKC.String(s)
	s = confusables.Skeleton(s)
	return s
}

func stripSoftHyphens(s string) string {
	if !strings.ContainsRune(s, softHyphen) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == softHyphen {
			return -1
		}
		return r
	}, s)
}
