package concurrent

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	jobs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	square := func(_ context.Context, job int) int { return job * job }

	testCases := []struct {
		name       string
		numWorkers int
	}{
		{"single worker", 1},
		{"more workers than jobs", 16},
		{"non-positive workers", 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(context.Background(), tt.numWorkers, jobs, square)
			sort.Ints(got)
			assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64}, got)
		})
	}
}

func TestRunEmpty(t *testing.T) {
	got := Run(context.Background(), 4, []int(nil), func(_ context.Context, job int) int { return job })
	assert.Empty(t, got)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := Run(ctx, 2, []int{1, 2, 3}, func(ctx context.Context, job int) error {
		return ctx.Err()
	})
	require.Len(t, got, 3)
	for _, err := range got {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
