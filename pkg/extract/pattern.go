package extract

import (
	"fmt"

	"github.com/soxt/soxt/pkg/regex"
)

// Match scans text with a set of named patterns and returns all
// non-overlapping matches per name. Each match yields one record holding
// the ordered positional capture-group values, passed through conv.
//
// Patterns are compiled with Multiline and Singleline semantics so "."
// spans line breaks; a syntactically invalid pattern fails the whole call
// before any scanning happens.
func Match[T any](text string, patterns map[string]string, conv Conv[T], opts MatchOptions) (MatchResult[T], error) {
	compiled := make(map[string]*regex.Pattern, len(patterns))
	for name, pattern := range patterns {
		p, err := regex.CompileDotAll(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", name, err)
		}
		compiled[name] = p
	}

	result := make(MatchResult[T], len(patterns))
	for name := range patterns {
		result[name] = [][]T{}
	}

	for name, p := range compiled {
		matches, err := p.Matches(text)
		if err != nil {
			return nil, fmt.Errorf("scan pattern %q: %w", name, err)
		}

		for _, m := range matches {
			groups := m.Groups()[1:]
			record := make([]T, 0, len(groups))
			for _, g := range groups {
				v, err := conv(g.String())
				if err != nil {
					return nil, fmt.Errorf("convert pattern %q group %s: %w", name, g.Name, err)
				}
				record = append(record, v)
			}

			result[name] = append(result[name], record)

			if opts.TerminateOnMatch {
				break
			}
		}
	}

	return result, nil
}
