//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lexiconlabs/casetopics/internal/report"
)

func TestWriteHTML(t *testing.T) {
	// too few documents for the scatter: bar charts only
	h := mat.NewDense(2, 3, []float64{
		0.5, 0.3, 0.2,
		0.1, 0.1, 0.8,
	})
	w := mat.NewDense(4, 2, []float64{
		0.9, 0.1,
		0.8, 0.2,
		0.3, 0.7,
		0.2, 0.8,
	})

	fn, err := report.WriteHTML(t.TempDir(), report.Payload{
		ModelName: "NMF",
		Weighting: "count",
		Vocab:     []string{"breach", "contract", "kennel"},
		Labels:    []string{"a", "b", "c", "d"},
		TopicTerm: h,
		DocTopic:  w,
		TopTerms:  3,
	})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(fn, ".html"))

	content, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Contains(t, string(content), "Topic 0")
	require.Contains(t, string(content), "Topic 1")
	require.Contains(t, string(content), "kennel")
}

func TestWriteHTMLBadTopTermsSurface(t *testing.T) {
	// inspector errors propagate instead of producing a half-written page
	h := mat.NewDense(1, 2, []float64{0.6, 0.4})
	w := mat.NewDense(1, 1, []float64{1.0})

	_, err := report.WriteHTML(t.TempDir(), report.Payload{
		ModelName: "LDA",
		Weighting: "tfidf",
		Vocab:     []string{"wrong length"},
		Labels:    []string{"a"},
		TopicTerm: h,
		DocTopic:  w,
		TopTerms:  2,
	})
	require.Error(t, err)
}
