//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"

	"github.com/lexiconlabs/casetopics/internal/vv"
)

//
// DOCUMENT-TERM MATRICES
//

// TermMatrix - sparse weights with rows = documents and columns = vocabulary terms.
// Vocab is lexicographically ordered so that column indices are reproducible across runs.
type TermMatrix struct {
	M     *sparse.CSR
	Vocab []string
	Index map[string]int
	Docs  int
}

func (tm *TermMatrix) Terms() int {
	return len(tm.Vocab)
}

// Vectorizer - map a sequence of normalized documents to a weighted term matrix plus an ordered vocabulary
type Vectorizer interface {
	Vectorize(docs []string) (*TermMatrix, error)
}

// EmptyVocabularyError - document-frequency filtering removed every candidate term
type EmptyVocabularyError struct {
	Candidates int
	Docs       int
}

func (e *EmptyVocabularyError) Error() string {
	return fmt.Sprintf("empty vocabulary: frequency thresholds eliminated all %d candidate terms across %d documents",
		e.Candidates, e.Docs)
}

//
// COUNT STRATEGY
//

// CountVectorizer - term weight is the raw occurrence count in the document
type CountVectorizer struct {
	MaxDocFreqRatio float64 // drop terms appearing in more than this fraction of documents
	MinDocFreqCount int     // drop terms appearing in fewer than this many documents
	MaxVocabSize    int     // keep only the N most frequent remaining terms; 0 = unbounded
	Stopwords       map[string]struct{}
}

func NewCountVectorizer(stops map[string]struct{}) *CountVectorizer {
	return &CountVectorizer{
		MaxDocFreqRatio: vv.DEFAULTMAXDFRATIO,
		MinDocFreqCount: vv.DEFAULTMINDFCOUNT,
		MaxVocabSize:    vv.DEFAULTMAXVOCABSIZE,
		Stopwords:       stops,
	}
}

func (cv *CountVectorizer) Vectorize(docs []string) (*TermMatrix, error) {
	tfs, df, totals := countterms(docs, cv.Stopwords)

	vocab := winnowvocab(df, totals, len(docs), cv.MinDocFreqCount, cv.MaxDocFreqRatio, cv.MaxVocabSize)
	if len(vocab) == 0 {
		return nil, &EmptyVocabularyError{Candidates: len(df), Docs: len(docs)}
	}

	tm := newtermmatrix(vocab, len(docs))
	dok := sparse.NewDOK(len(docs), len(vocab))
	for d := 0; d < len(docs); d++ {
		for t, n := range tfs[d] {
			if col, ok := tm.Index[t]; ok {
				dok.Set(d, col, float64(n))
			}
		}
	}
	tm.M = dok.ToCSR()

	return tm, nil
}

//
// TF-IDF STRATEGY
//

// TfidfVectorizer - term weight is tf * idf with the smoothed idf ln((1+N)/(1+df)) + 1
type TfidfVectorizer struct {
	MinDocFreqCount int
	Stopwords       map[string]struct{}
}

func NewTfidfVectorizer(stops map[string]struct{}) *TfidfVectorizer {
	return &TfidfVectorizer{
		MinDocFreqCount: vv.DEFAULTTFIDFMINDF,
		Stopwords:       stops,
	}
}

func (tv *TfidfVectorizer) Vectorize(docs []string) (*TermMatrix, error) {
	tfs, df, totals := countterms(docs, tv.Stopwords)

	vocab := winnowvocab(df, totals, len(docs), tv.MinDocFreqCount, 1.0, 0)
	if len(vocab) == 0 {
		return nil, &EmptyVocabularyError{Candidates: len(df), Docs: len(docs)}
	}

	idf := make([]float64, len(vocab))
	for i, t := range vocab {
		idf[i] = math.Log(float64(1+len(docs))/float64(1+df[t])) + 1
	}

	tm := newtermmatrix(vocab, len(docs))
	dok := sparse.NewDOK(len(docs), len(vocab))
	for d := 0; d < len(docs); d++ {
		for t, n := range tfs[d] {
			if col, ok := tm.Index[t]; ok {
				dok.Set(d, col, float64(n)*idf[col])
			}
		}
	}
	tm.M = dok.ToCSR()

	return tm, nil
}

//
// SHARED MACHINERY
//

func newtermmatrix(vocab []string, docs int) *TermMatrix {
	idx := make(map[string]int, len(vocab))
	for i, t := range vocab {
		idx[t] = i
	}
	return &TermMatrix{Vocab: vocab, Index: idx, Docs: docs}
}

// countterms - per-document term frequencies, document frequencies, and corpus-wide totals
func countterms(docs []string, stops map[string]struct{}) ([]map[string]int, map[string]int, map[string]int) {
	tfs := make([]map[string]int, len(docs))
	df := make(map[string]int)
	totals := make(map[string]int)

	for d := 0; d < len(docs); d++ {
		tf := make(map[string]int)
		for _, w := range strings.Fields(docs[d]) {
			if _, s := stops[w]; s {
				continue
			}
			tf[w] += 1
			totals[w] += 1
		}
		for t := range tf {
			df[t] += 1
		}
		tfs[d] = tf
	}

	return tfs, df, totals
}

// winnowvocab - apply the document-frequency filters and the size cap; returns a lexicographically ordered vocabulary
func winnowvocab(df map[string]int, totals map[string]int, ndocs int, mindf int, maxratio float64, maxterms int) []string {
	var kept []string
	for t, n := range df {
		if n < mindf {
			continue
		}
		if ndocs > 0 && float64(n)/float64(ndocs) > maxratio {
			continue
		}
		kept = append(kept, t)
	}

	if maxterms > 0 && len(kept) > maxterms {
		// the N most frequent survivors; ties broken lexicographically so the cut is stable
		sort.Slice(kept, func(i, j int) bool {
			if totals[kept[i]] != totals[kept[j]] {
				return totals[kept[i]] > totals[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[0:maxterms]
	}

	sort.Strings(kept)
	return kept
}
