//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) Lexicon Labs 2025-26

    This program comes with ABSOLUTELY NO WARRANTY; without even the
    implied warranty of merchantability or fitness for a particular purpose.
    This is free software, and you are welcome to redistribute it and/or
    modify it under the terms of the GNU General Public License version 3.`

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cC0  C2{file}C0   load settings from a JSON file [C6defaultC0: C3{{.conffile}}C0]
   C1-cpC0          enable CPU profiling run
   C1-fC0  C2{file}C0   the NDJSON corpus to model; gzip detected automatically [C6currentC0: C3{{.corpus}}C0]
   C1-hC0           print this help information
   C1-iC0  C2{num}C0    training iterations [C6currentC0: C3{{.iterations}}C0]
   C1-kC0  C2{num}C0    number of topics to extract [C6currentC0: C3{{.topics}}C0]
   C1-lC0  C2{num}C0    set log level (C10-5C0) [C6currentC0: C3{{.loglevel}}C0]
   C1-loC0 C2{num}C0    lda learning offset [C6currentC0: C3{{.offset}}C0]
   C1-mC0  C2{string}C0 the model to fit; available: C3ldaC0 and C3nmfC0 [C6currentC0: C3{{.model}}C0]
   C1-mpC0          enable MEM profiling run
   C1-nC0  C2{num}C0    cap the number of records read; C30C0 reads everything [C6currentC0: C3{{.maxrecords}}C0]
   C1-niC0 C2{string}C0 nmf seeding; available: C3nndsvdC0 and C3randomC0 [C6currentC0: C3{{.nmfinit}}C0]
   C1-rC0           write an html report with topic charts next to the console summary
   C1-sdC0 C2{num}C0    random seed [C6currentC0: C3{{.seed}}C0]
   C1-tdC0 C2{num}C0    documents to print per topic [C6currentC0: C3{{.topdocs}}C0]
   C1-ttC0 C2{num}C0    terms to print per topic [C6currentC0: C3{{.topterms}}C0]
   C1-vC0           print version info and exit
   C1-wC0  C2{string}C0 term weighting; available: C3countC0 and C3tfidfC0 [C6currentC0: C3{{.weighting}}C0]
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-xcC0 C2{num}C0    drop terms seen in fewer than this many documents [C6currentC0: C3{{.mindf}}C0]
   C1-xrC0 C2{num}C0    drop terms seen in more than this share of documents (C10.0-1.0C0) [C6currentC0: C3{{.maxdf}}C0]
   C1-xvC0 C2{num}C0    keep at most this many vocabulary terms [C6currentC0: C3{{.maxvocab}}C0]`
)
