package extract

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	text := "energy = -12.5 eV\nsteps: 3\nenergy = -11.9 eV\n"

	tests := []struct {
		name     string
		patterns map[string]string
		opts     MatchOptions
		expected MatchResult[string]
	}{
		{
			name: "all_occurrences_in_order",
			patterns: map[string]string{
				"energy": `energy = (\S+) eV`,
			},
			expected: MatchResult[string]{
				"energy": {{"-12.5"}, {"-11.9"}},
			},
		},
		{
			name: "terminate_on_match_records_first_only",
			patterns: map[string]string{
				"energy": `energy = (\S+) eV`,
			},
			opts: MatchOptions{TerminateOnMatch: true},
			expected: MatchResult[string]{
				"energy": {{"-12.5"}},
			},
		},
		{
			name: "absent_pattern_yields_empty_list",
			patterns: map[string]string{
				"pressure": `pressure = (\S+)`,
			},
			expected: MatchResult[string]{
				"pressure": {},
			},
		},
		{
			name: "multiple_groups_per_match",
			patterns: map[string]string{
				"steps":  `steps: (\d+)`,
				"energy": `energy = (\S+) (\S+)`,
			},
			expected: MatchResult[string]{
				"steps":  {{"3"}},
				"energy": {{"-12.5", "eV"}, {"-11.9", "eV"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Match(text, tt.patterns, String, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMatch_DotSpansNewlines(t *testing.T) {
	text := "BEGIN\nline one\nline two\nEND\n"

	result, err := Match(text, map[string]string{
		"block": `BEGIN(.+)END`,
	}, String, MatchOptions{})
	require.NoError(t, err)

	records := result.Get("block")
	require.Len(t, records, 1)
	assert.Equal(t, "\nline one\nline two\n", records[0][0])
}

func TestMatch_InvalidPattern(t *testing.T) {
	_, err := Match("text", map[string]string{"bad": `(`}, String, MatchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestMatch_ConversionFailurePropagates(t *testing.T) {
	_, err := Match("count = seven", map[string]string{
		"count": `count = (\w+)`,
	}, Int, MatchOptions{})
	require.Error(t, err)

	// the underlying conversion error is preserved, not swallowed
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestMatchResult_Get(t *testing.T) {
	result := MatchResult[string]{"known": {{"a"}}}

	assert.Equal(t, [][]string{{"a"}}, result.Get("known"))
	assert.Empty(t, result.Get("never_requested"))
	assert.NotNil(t, result.Get("never_requested"))
}
