//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"github.com/lexiconlabs/casetopics/internal/gen"
)

//
// STOPWORDS
//

var (
	// English150 - common english function words; they carry no topical signal
	English150 = []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "can",
		"cannot", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i",
		"if", "in", "into", "is", "it", "its", "itself", "just", "me", "more", "most", "my", "myself", "no", "nor",
		"not", "now", "of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours", "ourselves", "out",
		"over", "own", "same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "upon", "us", "very", "was", "we", "were", "what", "when", "where", "which", "while", "who",
		"whom", "why", "will", "with", "would", "you", "your", "yours", "yourself", "yourselves"}

	// LegalExtra - court-opinion boilerplate that swamps every topic if left in place
	LegalExtra = []string{"also", "although", "among", "another", "appeal", "appellant", "appellee", "case",
		"cases", "cause", "certiorari", "cir", "court", "courts", "defendant", "defendants", "et", "al", "error",
		"evidence", "fact", "filed", "finding", "findings", "first", "however", "id", "ibid", "judge",
		"judgment", "jury", "law", "made", "make", "matter", "may", "motion", "must", "opinion", "order", "party",
		"parties", "petitioner", "plaintiff", "plaintiffs", "record", "respondent", "rule", "said", "see", "shall",
		"state", "states", "supra", "testimony", "therefore", "thereof", "time", "trial", "united", "v",
		"vs", "wherein", "without"}

	// LegalKeep - members of LegalExtra we will not toss: these discriminate between areas of law
	LegalKeep = []string{"evidence", "jury", "testimony", "state", "states", "united"}
)

// StopSet - the working stopword set for opinion text
func StopSet() map[string]struct{} {
	full := append(append([]string{}, English150...), LegalExtra...)
	kept := gen.SetSubtraction(full, LegalKeep)
	return gen.ToSet(kept)
}
