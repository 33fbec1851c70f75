package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(labels []Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		s := l.String()
		if l.Current {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func TestLabels(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, ""},
		{1, 0, ""},
		{1, 2, "[1] 2"},
		{2, 3, "1 [2] 3"},
		{1, 3, "[1] 2 3"},
		{3, 3, "1 2 [3]"},
		{1, 10, "[1] 2 ... 10"},
		{5, 10, "1 ... 4 [5] 6 ... 10"},
		{3, 10, "1 2 [3] 4 ... 10"},
		{4, 10, "1 ... 3 [4] 5 ... 10"},
		{9, 10, "1 ... 8 [9] 10"},
		{10, 10, "1 ... 9 [10]"},
		{12, 10, "1 ... 9 [10]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render(Labels(tt.current, tt.total)), "current=%d total=%d", tt.current, tt.total)
	}
}

func TestLabelsAlwaysBracketFirstAndLast(t *testing.T) {
	for total := 2; total <= 12; total++ {
		for current := 1; current <= total; current++ {
			labels := Labels(current, total)
			assert.Equal(t, 1, labels[0].Page)
			assert.Equal(t, total, labels[len(labels)-1].Page)

			currents := 0
			for _, l := range labels {
				if l.Current {
					currents++
					assert.Equal(t, current, l.Page)
				}
			}
			assert.Equal(t, 1, currents)
		}
	}
}

func TestNavigationButtons(t *testing.T) {
	assert.False(t, CanPrev(1))
	assert.True(t, CanPrev(2))
	assert.True(t, CanNext(2, 3))
	assert.False(t, CanNext(3, 3))
}
