//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/casetopics/internal/corpus"
)

func TestNormalize(t *testing.T) {
	stops := corpus.StopSet()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lowercases", input: "Negligence PER SE", want: "negligence per se"},
		{name: "strips punctuation", input: "habeas corpus, § 2254(d)!", want: "habeas corpus d"},
		{name: "drops bare numbers", input: "410 U.S. 113 (1973)", want: "u s"},
		{name: "keeps alphanumeric tokens", input: "section 12b squib", want: "section 12b squib"},
		{name: "drops stopwords", input: "the plaintiff and the defendant", want: ""},
		{name: "collapses whitespace", input: "  breach \t of\n contract  ", want: "breach contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, corpus.Normalize(tt.input, stops))
		})
	}
}

func TestNormalizeWithoutStops(t *testing.T) {
	// a nil stopword set means nothing is a stopword
	got := corpus.Normalize("The Court held...", nil)
	require.Equal(t, "the court held", got)
}

func TestStopSetKeepsDiscriminativeTerms(t *testing.T) {
	stops := corpus.StopSet()

	for _, keep := range []string{"evidence", "jury", "testimony", "state", "united"} {
		_, found := stops[keep]
		require.False(t, found, "%q should not be treated as a stopword", keep)
	}

	for _, toss := range []string{"the", "plaintiff", "court", "supra"} {
		_, found := stops[toss]
		require.True(t, found, "%q should be treated as a stopword", toss)
	}
}
