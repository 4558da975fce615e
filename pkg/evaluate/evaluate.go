package evaluate

import (
	"slices"
	"sort"
	"strings"
)

func StringSliceContains(slice []string, contains string, caseInsensitive bool) bool {
	return slices.ContainsFunc(slice, func(s string) bool {
		if caseInsensitive {
			return strings.EqualFold(s, contains)
		}

		return s == contains
	})
}

// SortedKeys returns the keys of m in lexical order, for deterministic
// iteration and display.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
