//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/dtm"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

// LDA - online variational inference via the nlp package. Convergence is iteration-bounded
// and approximate: that is a property of the algorithm, not a defect.
type LDA struct {
	cfg Config
}

func NewLDA(cfg Config) *LDA {
	return &LDA{cfg: fillconfig(cfg, vv.MODELLDA)}
}

func (l *LDA) Fit(tm *dtm.TermMatrix) (*Model, error) {
	if err := validatefit(tm, l.cfg.Topics); err != nil {
		return nil, err
	}

	// the nlp package wants terms as rows and documents as columns
	td := sparse.NewDOK(tm.Terms(), tm.Docs)
	tm.M.DoNonZero(func(d int, t int, v float64) {
		td.Set(t, d, v)
	})

	lda := nlp.NewLatentDirichletAllocation(l.cfg.Topics)
	lda.Iterations = l.cfg.Iterations
	lda.RhoPhi.Tau = l.cfg.LearningOffset
	lda.RhoTheta.Tau = l.cfg.LearningOffset
	lda.Rnd = rand.New(rand.NewSource(l.cfg.Seed))
	if l.cfg.Processes > 0 {
		lda.Processes = l.cfg.Processes
	}

	// docsOverTopics: topics x docs; Components: topics x terms
	docsOverTopics, err := lda.FitTransform(td.ToCSC())
	if err != nil {
		return nil, fmt.Errorf("LDA.Fit() inference failed: %w", err)
	}
	topicsOverWords := lda.Components()

	k := l.cfg.Topics
	w := mat.NewDense(tm.Docs, k, nil)
	for doc := 0; doc < tm.Docs; doc++ {
		for topic := 0; topic < k; topic++ {
			w.Set(doc, topic, docsOverTopics.At(topic, doc))
		}
	}

	h := mat.NewDense(k, tm.Terms(), nil)
	for topic := 0; topic < k; topic++ {
		for term := 0; term < tm.Terms(); term++ {
			h.Set(topic, term, topicsOverWords.At(topic, term))
		}
	}

	return &Model{TopicTerm: h, DocTopic: w}, nil
}
