//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "CaseTopics"
	SHORTNAME = "CTS"
	VERSION   = "0.1.0"

	// corpus loading
	DEFAULTCORPUS     = "opinions.jsonl"
	DEFAULTMAXRECORDS = 0 // 0 = no cap

	// vectorizing
	WEIGHTCOUNT         = "count"
	WEIGHTTFIDF         = "tfidf"
	DEFAULTMAXDFRATIO   = 0.60
	DEFAULTMINDFCOUNT   = 50
	DEFAULTMAXVOCABSIZE = 10000
	DEFAULTTFIDFMINDF   = 2

	// topic modeling
	MODELLDA              = "lda"
	MODELNMF              = "nmf"
	DEFAULTTOPICS         = 5
	DEFAULTLDAITERATIONS  = 50
	DEFAULTLEARNINGOFFSET = 50
	DEFAULTNMFITERATIONS  = 200
	NMFINITNNDSVD         = "nndsvd"
	NMFINITRANDOM         = "random"
	DEFAULTSEED           = 1

	// result inspection
	DEFAULTTOPTERMS = 8
	DEFAULTTOPDOCS  = 5

	// configuration
	CONFIGNAME      = "casetopics-config.json"
	DEFAULTLOGLEVEL = 2
	JSONINDENT      = "  "
	WRITEPERMS      = 0644
)
