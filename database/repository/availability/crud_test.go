// File: database/repository/availability/crud_test.go
package availabilityRepo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateSeq(n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, fmt.Sprintf("2024-01-%02d", i+1))
	}
	return dates
}

func TestChunkDates(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		wantSizes []int
	}{
		{name: "empty input yields no chunks", dates: nil, wantSizes: nil},
		{name: "single date", dates: dateSeq(1), wantSizes: []int{1}},
		{name: "exactly the limit stays one chunk", dates: dateSeq(10), wantSizes: []int{10}},
		{name: "one over the limit splits", dates: dateSeq(11), wantSizes: []int{10, 1}},
		{name: "a season of dates", dates: dateSeq(45), wantSizes: []int{10, 10, 10, 10, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chunks := chunkDates(tc.dates)

			require.Len(t, chunks, len(tc.wantSizes))
			var flattened []string
			for i, chunk := range chunks {
				assert.Len(t, chunk, tc.wantSizes[i])
				assert.LessOrEqual(t, len(chunk), MaxInValues)
				flattened = append(flattened, chunk...)
			}
			// Chunking reorders nothing and drops nothing.
			assert.Equal(t, tc.dates, flattened)
		})
	}
}
