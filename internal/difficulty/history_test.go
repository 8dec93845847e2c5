package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(0)
	require.Equal(t, 10, h.Cap())

	for i := 1; i <= 11; i++ {
		h.Push(Record{Level: i})
		require.LessOrEqual(t, h.Len(), 10)
	}

	records := h.Records()
	require.Len(t, records, 10)
	for i, r := range records {
		assert.Equal(t, i+2, r.Level)
	}
}

func TestHistoryRecent(t *testing.T) {
	h := NewHistory(4)
	for i := 1; i <= 6; i++ {
		h.Push(Record{Level: i})
	}

	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{5, 6}},
		{4, []int{3, 4, 5, 6}},
		{9, []int{3, 4, 5, 6}},
		{0, []int{}},
		{-1, []int{}},
	}

	for _, tt := range tests {
		got := make([]int, 0, len(tt.want))
		for _, r := range h.Recent(tt.n) {
			got = append(got, r.Level)
		}
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestHistoryRecordsIsCopy(t *testing.T) {
	h := NewHistory(3)
	h.Push(Record{Level: 1})

	records := h.Records()
	records[0].Level = 99

	assert.Equal(t, 1, h.Records()[0].Level)
}
