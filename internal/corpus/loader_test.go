//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/casetopics/internal/corpus"
)

const sampleNDJSON = `{"decision_date": "1973-01-22", "name_abbreviation": "Roe v. Wade", "court": {"name": "Supreme Court of the United States"}, "casebody": {"data": {"opinions": [{"text": "The statute is challenged on due process grounds."}]}}}
{"decision_date": "1927-05-02", "name_abbreviation": "Buck v. Bell", "court": {"name": "Supreme Court of the United States"}, "casebody": {"data": {"opinions": []}}}

{"decision_date": "1966-06-13", "name_abbreviation": "Miranda v. Arizona", "court": {"name": "Supreme Court of the United States"}, "casebody": {"data": {"opinions": [{"text": "Custodial interrogation requires warnings."}, {"text": "Dissenting."}]}}}
`

func writecorpus(t *testing.T, gzipped bool) string {
	t.Helper()
	dir := t.TempDir()

	if !gzipped {
		fn := filepath.Join(dir, "opinions.jsonl")
		require.NoError(t, os.WriteFile(fn, []byte(sampleNDJSON), 0644))
		return fn
	}

	fn := filepath.Join(dir, "opinions.jsonl.gz")
	f, err := os.Create(fn)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sampleNDJSON))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return fn
}

func TestLoadRecords(t *testing.T) {
	recs, err := corpus.LoadRecords(writecorpus(t, false), 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "Roe v. Wade", recs[0].NameAbbreviation)
	require.Equal(t, "Supreme Court of the United States", recs[0].Court.Name)
	require.Len(t, recs[2].Casebody.Data.Opinions, 2)
}

func TestLoadRecordsGzip(t *testing.T) {
	// magic-byte detection: the caller never says whether the corpus is compressed
	recs, err := corpus.LoadRecords(writecorpus(t, true), 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "Miranda v. Arizona", recs[2].NameAbbreviation)
}

func TestLoadRecordsCap(t *testing.T) {
	recs, err := corpus.LoadRecords(writecorpus(t, false), 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
}

func TestLoadRecordsBadJSON(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "garbage.jsonl")
	require.NoError(t, os.WriteFile(fn, []byte("{\"decision_date\": \"1973\"}\nnot json at all\n"), 0644))

	_, err := corpus.LoadRecords(fn, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := corpus.LoadRecords(filepath.Join(t.TempDir(), "nope.jsonl"), 0)
	require.Error(t, err)
}

func TestBuildDocuments(t *testing.T) {
	recs, err := corpus.LoadRecords(writecorpus(t, false), 0)
	require.NoError(t, err)

	docs, skipped := corpus.BuildDocuments(recs, corpus.StopSet())

	// Buck v. Bell has no opinion text and contributes no document
	require.Len(t, docs, 2)
	require.Equal(t, 1, skipped)

	require.Equal(t, "Roe v. Wade (1973-01-22)", docs[0].Label)
	require.Equal(t, "statute challenged due process grounds", docs[0].NormText)

	// multiple opinions are joined before normalization
	require.Contains(t, docs[1].RawText, "Custodial interrogation")
	require.Contains(t, docs[1].RawText, "Dissenting.")
}
