//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"sort"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks at consecutive repeats: [a, a, b, a] -> [a, b, a]
	set := ToSet(s)

	result := make([]T, 0, len(set))
	for k := range set {
		result = append(result, k)
	}

	return result
}

// SetSubtraction - returns [](set(aa) - set(bb))
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	// 	aa := []string{"a", "b", "c", "d", "g", "h"}
	//	bb := []string{"a", "b", "e", "f", "g"}
	//	dd := SetSubtraction(aa, bb)
	//  [c d h]

	pruner := ToSet(bb)

	var remain []T
	for _, a := range aa {
		if _, y := pruner[a]; !y {
			remain = append(remain, a)
		}
	}

	return remain
}

// StringMapKeysIntoSlice - the keys of a map[string]T, sorted for reproducibility
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	keys := make([]string, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
