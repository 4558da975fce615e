package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	p, err := Compile(`a (\d+)`)
	require.NoError(t, err)
	require.NotNil(t, p.Expression)

	_, err = Compile(`(`)
	assert.Error(t, err)
}

func TestCompileDotAll(t *testing.T) {
	p, err := CompileDotAll(`start(.+)end`)
	require.NoError(t, err)

	matches, err := p.Matches("start\nmiddle\nend")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "\nmiddle\n", matches[0].Groups()[1].String())
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns([]string{`a+`, `(\d+)`}))
	assert.Error(t, ValidatePatterns([]string{`a+`, `(`}))
}

func TestPattern_Matches_Order(t *testing.T) {
	p, err := Compile(`(\d+)`)
	require.NoError(t, err)

	matches, err := p.Matches("1 then 22 then 333")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	var values []string
	for _, m := range matches {
		values = append(values, m.Groups()[1].String())
	}
	assert.Equal(t, []string{"1", "22", "333"}, values)
}

func TestPattern_NamedGroups(t *testing.T) {
	p, err := Compile(`(?<species>\w+) (\d+) (?<charge>[-+])`)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"species", "charge"}, p.NamedGroups())

	positional, err := Compile(`(\w+) (\d+)`)
	require.NoError(t, err)
	assert.Empty(t, positional.NamedGroups())
}

func TestCheck(t *testing.T) {
	p, err := Compile(`\.out$`)
	require.NoError(t, err)

	ok, err := Check("run01.out", p)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Check("run01.log", p)
	require.NoError(t, err)
	assert.False(t, ok)
}
