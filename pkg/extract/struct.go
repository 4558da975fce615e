package extract

import (
	"strconv"
	"strings"
)

// Conv converts a captured group value into its final type. Conversion
// failures propagate unmodified to the caller; no partial results are
// recovered.
type Conv[T any] func(string) (T, error)

func String(s string) (string, error) {
	return s, nil
}

func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func Float(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

type MatchOptions struct {
	// TerminateOnMatch stops scanning a pattern after its first match has
	// been recorded.
	TerminateOnMatch bool
}

// MatchResult maps a pattern name to its match records, one record per
// non-overlapping match in order of appearance. Every requested pattern
// name is present, with an empty record list when it never matched.
type MatchResult[T any] map[string][][]T

// Get returns the records for name. Names that were never requested yield
// an empty list, never an error.
func (r MatchResult[T]) Get(name string) [][]T {
	if records, ok := r[name]; ok {
		return records
	}
	return [][]T{}
}
