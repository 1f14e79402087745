//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lexiconlabs/casetopics/internal/corpus"
	"github.com/lexiconlabs/casetopics/internal/dtm"
	"github.com/lexiconlabs/casetopics/internal/gen"
	"github.com/lexiconlabs/casetopics/internal/launch"
	"github.com/lexiconlabs/casetopics/internal/report"
	"github.com/lexiconlabs/casetopics/internal/topics"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

func main() {
	launch.ConfigAtLaunch()
	cfg := launch.Config
	msg := launch.Msg

	if cfg.ProfCPU {
		defer profile.Start().Stop()
	}

	if cfg.ProfMem {
		defer profile.Start(profile.MemProfile).Stop()
	}

	versioninfo := fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
	versioninfo += fmt.Sprintf(" [loglevel=%d]", cfg.LogLevel)
	msg.MAND(versioninfo)

	pr := message.NewPrinter(language.English)

	start := time.Now()
	previous := time.Now()

	// [A] the corpus

	stops := corpus.StopSet()

	recs, err := corpus.LoadRecords(cfg.CorpusFile, cfg.MaxRecords)
	msg.EC(err)
	msg.Timer("A1", pr.Sprintf("%d records read from '%s'", len(recs), cfg.CorpusFile), start, previous)

	previous = time.Now()
	docs, skipped := corpus.BuildDocuments(recs, stops)
	if skipped != 0 {
		msg.NOTE(pr.Sprintf("skipped %d records with no opinion text", skipped))
	}

	courts := make([]string, len(docs))
	labels := make([]string, len(docs))
	normed := make([]string, len(docs))
	for i, d := range docs {
		courts[i] = d.Court
		labels[i] = d.Label
		normed[i] = d.NormText
	}
	msg.FYI(pr.Sprintf("%d distinct courts in the corpus", len(gen.Unique(courts))))
	msg.TMI("courts: " + strings.Join(gen.StringMapKeysIntoSlice(gen.ToSet(courts)), "; "))
	msg.Timer("A2", pr.Sprintf("%d documents built", len(docs)), start, previous)

	// [B] the document-term matrix

	previous = time.Now()

	var vectorizer dtm.Vectorizer
	switch cfg.Weighting {
	case vv.WEIGHTTFIDF:
		v := dtm.NewTfidfVectorizer(stops)
		v.MinDocFreqCount = cfg.TfidfMinDocFreq
		vectorizer = v
	default:
		v := dtm.NewCountVectorizer(stops)
		v.MaxDocFreqRatio = cfg.MaxDocFreqRatio
		v.MinDocFreqCount = cfg.MinDocFreqCount
		v.MaxVocabSize = cfg.MaxVocabSize
		vectorizer = v
	}

	tm, err := vectorizer.Vectorize(normed)
	msg.EC(err)
	msg.Timer("B1", pr.Sprintf("%d documents vectorized over %d terms (%s weighting)", tm.Docs, tm.Terms(), cfg.Weighting), start, previous)

	// [C] the model

	previous = time.Now()

	var engine topics.Engine
	switch cfg.Model {
	case vv.MODELNMF:
		engine = topics.NewNMF(topics.Config{
			Topics:     cfg.Topics,
			Iterations: cfg.NMFIterations,
			Init:       cfg.NMFInit,
			Seed:       cfg.Seed,
		})
	default:
		engine = topics.NewLDA(topics.Config{
			Topics:         cfg.Topics,
			Iterations:     cfg.LDAIterations,
			LearningOffset: cfg.LearningOffset,
			Seed:           cfg.Seed,
			Processes:      cfg.WorkerCount,
		})
	}

	model, err := engine.Fit(tm)
	msg.EC(err)
	msg.Timer("C1", pr.Sprintf("%d topics extracted via %s", cfg.Topics, cfg.Model), start, previous)

	// [D] the results

	topicsummary(model, tm, labels)

	if cfg.WriteReport {
		fn, err := report.WriteHTML(".", report.Payload{
			ModelName: strings.ToUpper(cfg.Model),
			Weighting: cfg.Weighting,
			Vocab:     tm.Vocab,
			Labels:    labels,
			TopicTerm: model.TopicTerm,
			DocTopic:  model.DocTopic,
			TopTerms:  cfg.TopTerms,
		})
		msg.EC(err)
		msg.MAND(fmt.Sprintf("wrote '%s'", fn))
	}
}

// topicsummary - print every topic's top terms and its most devoted documents
func topicsummary(model *topics.Model, tm *dtm.TermMatrix, labels []string) {
	cfg := launch.Config
	msg := launch.Msg

	k, _ := model.TopicTerm.Dims()
	for t := 0; t < k; t++ {
		terms, err := topics.TopTermsForTopic(model.TopicTerm, tm.Vocab, t, cfg.TopTerms)
		msg.EC(err)

		words := make([]string, len(terms))
		for i, rt := range terms {
			words[i] = rt.Term
		}
		fmt.Printf("topic %d:\t%s\n", t+1, strings.Join(words, ", "))

		ranked, err := topics.TopDocumentsForTopic(model.DocTopic, labels, t, cfg.TopDocs)
		msg.EC(err)
		for _, rd := range ranked {
			fmt.Printf("\t%f\t%s\n", rd.Weight, rd.Label)
		}
	}
}
