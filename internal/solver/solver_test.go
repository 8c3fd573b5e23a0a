package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFSSolveUnder1s(t *testing.T) {
	s := NewBFS(nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	best, st, err := s.Solve(ctx, canonical(t))
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	require.NotNil(t, best)
	assert.Equal(t, 11, best.Cost())
	assert.Positive(t, st.Nodes)
	assert.Positive(t, st.Expanded)
	assert.Less(t, st.Duration, time.Second)
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBFSSolveUnsolvable(t *testing.T) {
	best, _, err := NewBFS(nil).Solve(context.Background(), build(t, []string{"AM", "BG", "CG"}, nil))
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestBFSSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	best, _, err := NewBFS(nil).Solve(ctx, canonical(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, best)
}

func TestBFSSolveDeadlineStopsSearch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	best, _, err := NewBFS(nil).Solve(ctx, build(t, []string{"AG", "AM", "BG", "BM", "CG", "CM"}, nil, nil, nil))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, best)
}
