//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/topics"
)

func TestTopTermsForTopic(t *testing.T) {
	// 2 topics x 4 terms
	h := mat.NewDense(2, 4, []float64{
		0.1, 0.4, 0.2, 0.3,
		0.9, 0.0, 0.0, 0.1,
	})
	vocab := []string{"ant", "bee", "cat", "dog"}

	ranked, err := topics.TopTermsForTopic(h, vocab, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []topics.RankedTerm{{Term: "bee", Weight: 0.4}, {Term: "dog", Weight: 0.3}}, ranked)
}

func TestTopTermsTieBreaking(t *testing.T) {
	// equal weights resolve to the earlier vocabulary index
	h := mat.NewDense(1, 3, []float64{0.5, 0.5, 0.5})
	vocab := []string{"ant", "bee", "cat"}

	ranked, err := topics.TopTermsForTopic(h, vocab, 0, 3)
	require.NoError(t, err)
	require.Equal(t, "ant", ranked[0].Term)
	require.Equal(t, "bee", ranked[1].Term)
	require.Equal(t, "cat", ranked[2].Term)
}

func TestTopTermsOversizedRequest(t *testing.T) {
	h := mat.NewDense(1, 2, []float64{0.7, 0.3})

	ranked, err := topics.TopTermsForTopic(h, []string{"ant", "bee"}, 0, 100)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
}

func TestNegativeRequestsYieldNothing(t *testing.T) {
	// a stray "-tt -1" on the command line must not crash the run
	h := mat.NewDense(1, 2, []float64{0.7, 0.3})
	w := mat.NewDense(2, 1, []float64{0.6, 0.4})

	terms, err := topics.TopTermsForTopic(h, []string{"ant", "bee"}, 0, -1)
	require.NoError(t, err)
	require.Empty(t, terms)

	docs, err := topics.TopDocumentsForTopic(w, []string{"Roe", "Buck"}, 0, -5)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestTopTermsBadTopicIndex(t *testing.T) {
	h := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	vocab := []string{"ant", "bee"}

	for _, bad := range []int{-1, 2, 99} {
		_, err := topics.TopTermsForTopic(h, vocab, bad, 1)
		var ioe *topics.IndexOutOfRangeError
		require.ErrorAs(t, err, &ioe)
		require.Equal(t, bad, ioe.Index)
	}
}

func TestTopTermsVocabularyMismatch(t *testing.T) {
	h := mat.NewDense(1, 3, []float64{1, 2, 3})

	_, err := topics.TopTermsForTopic(h, []string{"ant"}, 0, 1)
	var lme *topics.LengthMismatchError
	require.ErrorAs(t, err, &lme)
	require.Equal(t, 3, lme.Want)
	require.Equal(t, 1, lme.Got)
}

func TestTopDocumentsForTopic(t *testing.T) {
	// 3 documents x 2 topics
	w := mat.NewDense(3, 2, []float64{
		0.9, 0.1,
		0.2, 0.8,
		0.6, 0.4,
	})
	labels := []string{"Roe", "Buck", "Miranda"}

	ranked, err := topics.TopDocumentsForTopic(w, labels, 0, 2)
	require.NoError(t, err)
	require.Equal(t, "Roe", ranked[0].Label)
	require.Equal(t, "Miranda", ranked[1].Label)
	require.InDelta(t, 0.9, ranked[0].Weight, 1e-12)

	ranked, err = topics.TopDocumentsForTopic(w, labels, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "Buck", ranked[0].Label)
}

func TestTopDocumentsLabelMismatch(t *testing.T) {
	w := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, err := topics.TopDocumentsForTopic(w, []string{"only one"}, 0, 1)
	var lme *topics.LengthMismatchError
	require.ErrorAs(t, err, &lme)
}

func TestDominantTopic(t *testing.T) {
	w := mat.NewDense(3, 3, []float64{
		0.2, 0.7, 0.1,
		0.5, 0.5, 0.0, // tie resolves to the lower index
		0.1, 0.2, 0.7,
	})

	require.Equal(t, []int{1, 0, 2}, topics.DominantTopic(w))
}
