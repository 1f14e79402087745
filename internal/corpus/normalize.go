//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"regexp"
	"strings"
)

//
// CLEANING
//

// notachar - anything outside the lowercased alphanumeric + whitespace set becomes whitespace
var notachar = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize - turn raw opinion text into the cleaned token stream the vectorizers consume
func Normalize(raw string, stops map[string]struct{}) string {
	// [a] lowercase
	// [b] swap every non-alphanumeric, non-whitespace rune for whitespace
	// [c] drop standalone numeric tokens: citation years, page numbers, docket digits
	// [d] drop stopwords
	// [e] rejoin with single spaces, trimmed

	lc := strings.ToLower(raw)
	lc = notachar.ReplaceAllString(lc, " ")

	words := strings.Fields(lc)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if alldigits(w) {
			continue
		}
		if _, s := stops[w]; s {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

func alldigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
