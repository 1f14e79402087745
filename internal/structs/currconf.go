//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package structs

// CurrentConfiguration - the complete set of runtime settings; built from defaults, then a JSON file, then flags
type CurrentConfiguration struct {
	CorpusFile      string
	MaxRecords      int
	Weighting       string // "count" or "tfidf"
	MaxDocFreqRatio float64
	MinDocFreqCount int
	MaxVocabSize    int
	TfidfMinDocFreq int
	Model           string // "lda" or "nmf"
	Topics          int
	LDAIterations   int
	NMFIterations   int
	LearningOffset  float64
	NMFInit         string
	Seed            uint64
	WorkerCount     int
	TopTerms        int
	TopDocs         int
	WriteReport     bool
	LogLevel        int
	BlackAndWhite   bool
	ProfCPU         bool
	ProfMem         bool
}
