package extract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soxt/soxt/pkg/regex"
)

// ErrNoTable is returned by LastTable when the composite pattern never
// matches. Zero tables from Tables is a normal empty result; asking for
// the last of zero tables is not.
var ErrNoTable = errors.New("table not found")

// TableQuery describes a structurally delimited table: a header pattern
// matching everything immediately before the body, a row pattern matching
// a single body line with capture groups for the fields of interest, and
// a footer pattern marking the end (e.g. a dashed rule).
//
// Header and footer must not consume row content; composing
// non-overlapping patterns is the caller's responsibility.
type TableQuery struct {
	Header string
	Row    string
	Footer string
}

// Row is one parsed table line. Exactly one of Values and Fields is set
// for every row of a given extraction: Fields when the row pattern uses
// named capture groups ("(?<name>...)"), Values otherwise.
type Row[T any] struct {
	Values []T
	Fields map[string]T
}

func (r Row[T]) MarshalJSON() ([]byte, error) {
	if r.Fields != nil {
		return json.Marshal(r.Fields)
	}
	return json.Marshal(r.Values)
}

type Table[T any] []Row[T]

// Tables extracts every table in text matching the query, in order of
// appearance. Repeated blocks (e.g. one table per ionic step) each
// produce their own Table.
func Tables[T any](text string, q TableQuery, conv Conv[T]) ([]Table[T], error) {
	composite := q.Header + `\s*(?<table_body>(?:` + q.Row + `)+)\s*` + q.Footer

	tablePattern, err := regex.CompileDotAll(composite)
	if err != nil {
		return nil, fmt.Errorf("compile table pattern: %w", err)
	}

	rowPattern, err := regex.Compile(q.Row)
	if err != nil {
		return nil, fmt.Errorf("compile row pattern: %w", err)
	}

	// row shape is fixed per call, not per row
	named := rowPattern.NamedGroups()

	matches, err := tablePattern.Matches(text)
	if err != nil {
		return nil, fmt.Errorf("scan table pattern: %w", err)
	}

	tables := make([]Table[T], 0, len(matches))
	for _, mt := range matches {
		body := mt.GroupByName("table_body").String()

		rowMatches, err := rowPattern.Matches(body)
		if err != nil {
			return nil, fmt.Errorf("scan table body: %w", err)
		}

		table := make(Table[T], 0, len(rowMatches))
		for _, mr := range rowMatches {
			if len(named) > 0 {
				fields := make(map[string]T, len(named))
				for _, name := range named {
					v, err := conv(mr.GroupByName(name).String())
					if err != nil {
						return nil, fmt.Errorf("convert field %q: %w", name, err)
					}
					fields[name] = v
				}
				table = append(table, Row[T]{Fields: fields})
				continue
			}

			groups := mr.Groups()[1:]
			values := make([]T, 0, len(groups))
			for _, g := range groups {
				v, err := conv(g.String())
				if err != nil {
					return nil, fmt.Errorf("convert field %s: %w", g.Name, err)
				}
				values = append(values, v)
			}
			table = append(table, Row[T]{Values: values})
		}

		tables = append(tables, table)
	}

	return tables, nil
}

// LastTable extracts only the final matching table. Callers parsing
// iterative output (successive relaxation or SCF cycles) usually want the
// converged one. Returns ErrNoTable when nothing matched.
func LastTable[T any](text string, q TableQuery, conv Conv[T]) (Table[T], error) {
	tables, err := Tables(text, q, conv)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrNoTable
	}
	return tables[len(tables)-1], nil
}
