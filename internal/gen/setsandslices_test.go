//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/casetopics/internal/gen"
)

func TestToSet(t *testing.T) {
	s := gen.ToSet([]string{"a", "b", "a"})
	require.Len(t, s, 2)
	_, ok := s["a"]
	require.True(t, ok)
}

func TestUnique(t *testing.T) {
	// non-consecutive repeats collapse too
	u := gen.Unique([]string{"a", "a", "b", "a"})
	require.ElementsMatch(t, []string{"a", "b"}, u)
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	require.Equal(t, []string{"c", "d", "h"}, gen.SetSubtraction(aa, bb))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	m := map[string]int{"zebra": 1, "ant": 2, "mole": 3}
	require.Equal(t, []string{"ant", "mole", "zebra"}, gen.StringMapKeysIntoSlice(m))
}
