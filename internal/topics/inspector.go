//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

type RankedTerm struct {
	Term   string
	Weight float64
}

type RankedDocument struct {
	Label  string
	Weight float64
}

// TopTermsForTopic - the n heaviest vocabulary terms in row 'topic' of the topic-term matrix.
// Ties break toward the lower vocabulary index, which is the lexicographically earlier term.
func TopTermsForTopic(h mat.Matrix, vocab []string, topic int, n int) ([]RankedTerm, error) {
	k, terms := h.Dims()
	if topic < 0 || topic >= k {
		return nil, &IndexOutOfRangeError{Index: topic, Topics: k}
	}
	if len(vocab) != terms {
		return nil, &LengthMismatchError{What: "vocabulary", Want: terms, Got: len(vocab)}
	}

	idx := rankrow(h, topic, terms)
	if n > terms {
		n = terms
	}
	if n < 0 {
		n = 0
	}

	ranked := make([]RankedTerm, n)
	for i := 0; i < n; i++ {
		ranked[i] = RankedTerm{Term: vocab[idx[i]], Weight: h.At(topic, idx[i])}
	}
	return ranked, nil
}

// TopDocumentsForTopic - the n documents most devoted to column 'topic' of the document-topic matrix
func TopDocumentsForTopic(w mat.Matrix, labels []string, topic int, n int) ([]RankedDocument, error) {
	docs, k := w.Dims()
	if topic < 0 || topic >= k {
		return nil, &IndexOutOfRangeError{Index: topic, Topics: k}
	}
	if len(labels) != docs {
		return nil, &LengthMismatchError{What: "labels", Want: docs, Got: len(labels)}
	}

	idx := make([]int, docs)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return w.At(idx[a], topic) > w.At(idx[b], topic)
	})

	if n > docs {
		n = docs
	}
	if n < 0 {
		n = 0
	}

	ranked := make([]RankedDocument, n)
	for i := 0; i < n; i++ {
		ranked[i] = RankedDocument{Label: labels[idx[i]], Weight: w.At(idx[i], topic)}
	}
	return ranked, nil
}

// DominantTopic - the topic with the largest share of each document; ties go to the lower topic index
func DominantTopic(w mat.Matrix) []int {
	docs, k := w.Dims()
	dom := make([]int, docs)
	for d := 0; d < docs; d++ {
		best := 0
		for t := 1; t < k; t++ {
			if w.At(d, t) > w.At(d, best) {
				best = t
			}
		}
		dom[d] = best
	}
	return dom
}

func rankrow(h mat.Matrix, row int, cols int) []int {
	idx := make([]int, cols)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return h.At(row, idx[a]) > h.At(row, idx[b])
	})
	return idx
}
