//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/dtm"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

//
// TOPIC MODEL ENGINES
//

// Config - every knob for both engine variants; randomness is always an explicit input, never ambient
type Config struct {
	Topics         int
	Iterations     int
	LearningOffset float64 // LDA only: the tau_0 of the online learning schedule
	Seed           uint64
	Init           string // NMF only: "nndsvd" or "random"
	Processes      int    // LDA only: worker goroutines inside the inference loop
}

// Model - the pair of factor matrices a fit produces; read-only thereafter
type Model struct {
	// TopicTerm (H): topics x terms
	TopicTerm *mat.Dense
	// DocTopic (W): documents x topics
	DocTopic *mat.Dense
}

// Engine - fit(document-term matrix, k) -> (topic-term matrix, document-topic matrix)
type Engine interface {
	Fit(tm *dtm.TermMatrix) (*Model, error)
}

// validatefit - shared admission checks for both variants
func validatefit(tm *dtm.TermMatrix, k int) error {
	if tm.Docs == 0 || tm.Terms() == 0 {
		return &EmptyInputError{Rows: tm.Docs, Cols: tm.Terms()}
	}
	if k <= 0 {
		return &ConfigurationError{Topics: k, Vocabulary: tm.Terms(), Reason: "topic count must be positive"}
	}
	if k > tm.Terms() {
		return &ConfigurationError{Topics: k, Vocabulary: tm.Terms(), Reason: "topic count exceeds vocabulary size"}
	}
	return nil
}

func fillconfig(cfg Config, model string) Config {
	if cfg.Iterations <= 0 {
		if model == vv.MODELLDA {
			cfg.Iterations = vv.DEFAULTLDAITERATIONS
		} else {
			cfg.Iterations = vv.DEFAULTNMFITERATIONS
		}
	}
	if cfg.LearningOffset <= 0 {
		cfg.LearningOffset = vv.DEFAULTLEARNINGOFFSET
	}
	if cfg.Seed == 0 {
		cfg.Seed = vv.DEFAULTSEED
	}
	if cfg.Init == "" {
		cfg.Init = vv.NMFINITNNDSVD
	}
	return cfg
}
