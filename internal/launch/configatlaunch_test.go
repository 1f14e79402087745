//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package launch_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/casetopics/internal/launch"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := launch.BuildDefaultConfig()

	require.Equal(t, vv.MODELLDA, c.Model)
	require.Equal(t, vv.WEIGHTCOUNT, c.Weighting)
	require.Equal(t, vv.NMFINITNNDSVD, c.NMFInit)
	require.Equal(t, vv.DEFAULTTOPICS, c.Topics)
	require.Equal(t, vv.DEFAULTMAXDFRATIO, c.MaxDocFreqRatio)
	require.Equal(t, vv.DEFAULTMINDFCOUNT, c.MinDocFreqCount)
	require.Equal(t, vv.DEFAULTMAXVOCABSIZE, c.MaxVocabSize)
	require.Equal(t, vv.DEFAULTTFIDFMINDF, c.TfidfMinDocFreq)
	require.Equal(t, uint64(vv.DEFAULTSEED), c.Seed)
	require.Equal(t, runtime.NumCPU(), c.WorkerCount)
	require.False(t, c.WriteReport)
}
