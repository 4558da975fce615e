package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastTable(t *testing.T) {
	text := "BEGIN\nA 1\nA 2\nEND"
	query := TableQuery{
		Header: `BEGIN\n`,
		Row:    `A (\d+)\n`,
		Footer: `END`,
	}

	table, err := LastTable(text, query, Int)
	require.NoError(t, err)

	expected := Table[int]{
		{Values: []int{1}},
		{Values: []int{2}},
	}
	assert.Equal(t, expected, table)
}

func TestTables_MultipleBlocks(t *testing.T) {
	text := strings.Repeat("iteration\nval 1.0 2.0\nval 3.0 4.0\n----\n", 3)
	query := TableQuery{
		Header: `iteration\n`,
		Row:    `val (\S+) (\S+)\n`,
		Footer: `----`,
	}

	tables, err := Tables(text, query, Float)
	require.NoError(t, err)
	require.Len(t, tables, 3)

	for _, table := range tables {
		require.Len(t, table, 2)
		assert.Equal(t, []float64{1.0, 2.0}, table[0].Values)
		assert.Equal(t, []float64{3.0, 4.0}, table[1].Values)
	}

	// last-only collapses to the final element of the full sequence
	last, err := LastTable(text, query, Float)
	require.NoError(t, err)
	assert.Equal(t, tables[len(tables)-1], last)
}

func TestTables_NamedGroups(t *testing.T) {
	text := "FORCES\nFe 0.1\nO -0.2\nTOTAL"
	query := TableQuery{
		Header: `FORCES\n`,
		Row:    `(?<species>\w+) (?<force>\S+)\n`,
		Footer: `TOTAL`,
	}

	tables, err := Tables(text, query, String)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 2)

	// named row patterns yield field maps, never positional values
	assert.Equal(t, map[string]string{"species": "Fe", "force": "0.1"}, tables[0][0].Fields)
	assert.Equal(t, map[string]string{"species": "O", "force": "-0.2"}, tables[0][1].Fields)
	assert.Nil(t, tables[0][0].Values)
}

func TestTables_NoMatchIsEmptyResult(t *testing.T) {
	query := TableQuery{Header: `HEAD\n`, Row: `r (\d+)\n`, Footer: `FOOT`}

	tables, err := Tables("nothing of interest here", query, String)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestLastTable_NoMatch(t *testing.T) {
	query := TableQuery{Header: `HEAD\n`, Row: `r (\d+)\n`, Footer: `FOOT`}

	_, err := LastTable("nothing of interest here", query, String)
	require.ErrorIs(t, err, ErrNoTable)
}

func TestTables_RoundTrip(t *testing.T) {
	header := "BEGIN\n"
	footer := "END"
	rows := []string{"A 1\n", "A 2\n", "A 3\n"}
	text := header + strings.Join(rows, "") + footer

	// capture each full row so reassembly reproduces the original text
	query := TableQuery{
		Header: `BEGIN\n`,
		Row:    `(A \d+\n)`,
		Footer: `END`,
	}

	table, err := LastTable(text, query, String)
	require.NoError(t, err)
	require.Len(t, table, len(rows))

	rebuilt := header
	for _, row := range table {
		require.Len(t, row.Values, 1)
		rebuilt += row.Values[0]
	}
	rebuilt += footer

	assert.Equal(t, text, rebuilt)
}

func TestTables_MultilineHeader(t *testing.T) {
	text := "TOTAL-FORCE\n-----------\n0.0 0.1\n1.0 0.2\n-----------\n"
	query := TableQuery{
		Header: `TOTAL-FORCE\n-+\n`,
		Row:    `(\S+) (\S+)\n`,
		Footer: `-+`,
	}

	tables, err := Tables(text, query, Float)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0], 2)
	assert.Equal(t, []float64{0.0, 0.1}, tables[0][0].Values)
}

func TestTables_InvalidPatterns(t *testing.T) {
	_, err := Tables("text", TableQuery{Header: `(`, Row: `r`, Footer: `f`}, String)
	assert.Error(t, err)

	_, err = Tables("text", TableQuery{Header: `h`, Row: `(`, Footer: `f`}, String)
	assert.Error(t, err)
}

func TestRow_MarshalJSON(t *testing.T) {
	positional := Row[int]{Values: []int{1, 2}}
	b, err := positional.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(b))

	named := Row[int]{Fields: map[string]int{"a": 1}}
	b, err = named.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(b))
}
