package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSliceContains(t *testing.T) {
	slice := []string{"png", "svg", "pdf"}

	assert.True(t, StringSliceContains(slice, "svg", false))
	assert.False(t, StringSliceContains(slice, "SVG", false))
	assert.True(t, StringSliceContains(slice, "SVG", true))
	assert.False(t, StringSliceContains(slice, "bmp", true))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"charlie": 3, "alpha": 1, "bravo": 2}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
