package hint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/ports"
	"svw.info/elevator/internal/solver"
	"svw.info/elevator/internal/state"
)

func build(t *testing.T, elevator int, codes ...[]string) *state.State {
	t.Helper()
	floors := make([][]domain.Item, len(codes))
	for i, f := range codes {
		floors[i] = []domain.Item{}
		for _, c := range f {
			it, err := domain.ParseItem(c)
			require.NoError(t, err)
			floors[i] = append(floors[i], it)
		}
	}
	s, err := state.NewAt(floors, elevator)
	require.NoError(t, err)
	return s
}

func TestHintFirstMove(t *testing.T) {
	h := NewNext(solver.NewBFS(nil))
	s := build(t, 0, []string{"HM", "LiM"}, []string{"HG"}, []string{"LiG"}, nil)

	mv, ok, err := h.Hint(context.Background(), s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Move{From: 0, To: 1, Items: []string{"HM"}}, mv)
}

func TestHintFromDerivedState(t *testing.T) {
	h := NewNext(solver.NewBFS(nil))
	start := build(t, 0, []string{"AG", "AM"}, nil, nil)
	mid, err := start.WithMove(1, start.Cargo()...)
	require.NoError(t, err)

	mv, ok, err := h.Hint(context.Background(), mid)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Move{From: 1, To: 2, Items: []string{"AG", "AM"}}, mv)
}

func TestHintNothingToDo(t *testing.T) {
	h := NewNext(solver.NewBFS(nil))

	_, ok, err := h.Hint(context.Background(), build(t, 1, nil, []string{"AG", "AM"}))
	require.NoError(t, err)
	assert.False(t, ok, "already finished")

	_, ok, err = h.Hint(context.Background(), build(t, 0, []string{"AM", "BG", "CG"}, nil))
	require.NoError(t, err)
	assert.False(t, ok, "unsolvable")
}

type failingSolver struct{ err error }

func (f failingSolver) Solve(ctx context.Context, s *state.State) (*state.State, ports.Stats, error) {
	return nil, ports.Stats{}, f.err
}

func TestHintPropagatesSolverError(t *testing.T) {
	boom := errors.New("boom")
	_, ok, err := NewNext(failingSolver{err: boom}).Hint(context.Background(), build(t, 0, []string{"AG"}, nil))
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}
