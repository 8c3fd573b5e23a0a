package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/state"
)

func floors(t *testing.T, codes ...[]string) [][]domain.Item {
	t.Helper()
	out := make([][]domain.Item, len(codes))
	for i, f := range codes {
		out[i] = []domain.Item{}
		for _, c := range f {
			it, err := domain.ParseItem(c)
			require.NoError(t, err)
			out[i] = append(out[i], it)
		}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		floors [][]domain.Item
		want   domain.Status
	}{
		{"all on top", floors(t, nil, []string{"AG", "AM", "BG", "BM"}), domain.Success},
		{"chips alone", floors(t, []string{"AM", "BM"}, []string{"AG", "BG"}), domain.Safe},
		{"generators alone", floors(t, []string{"AG", "BG"}, []string{"AM"}, []string{"BM"}), domain.Safe},
		{"foreign generator", floors(t, []string{"AM", "BG"}, []string{"AG", "BM"}), domain.Fried},
		{"own generator protects", floors(t, []string{"AM", "AG", "BG"}, []string{"BM"}), domain.Safe},
		{"one of two chips exposed", floors(t, []string{"AM", "AG", "BM"}, []string{"BG"}), domain.Fried},
		{"empty instance is done", floors(t, nil, nil), domain.Success},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := state.New(tc.floors)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Evaluate(s))
		})
	}
}

func TestCheckListsFriedChips(t *testing.T) {
	s, err := state.New(floors(t, []string{"AM", "BG"}, []string{"AG", "BM"}, nil))
	require.NoError(t, err)

	st, fried := Check(s)
	assert.Equal(t, domain.Fried, st)
	assert.Equal(t, floors(t, []string{"AM", "BM"})[0], fried)
}

func TestEvaluateIgnoresLineage(t *testing.T) {
	start, err := state.New(floors(t, []string{"AM", "AG"}, []string{"BG"}, []string{"BM"}))
	require.NoError(t, err)
	up, err := start.WithMove(1, domain.Item{Category: "A", Kind: domain.Microchip})
	require.NoError(t, err)
	down, err := up.WithMove(0, domain.Item{Category: "A", Kind: domain.Microchip})
	require.NoError(t, err)

	assert.Equal(t, domain.Fried, Evaluate(up))
	assert.Equal(t, Evaluate(start), Evaluate(down))

	direct, err := state.NewAt(up.Floors(), up.Elevator())
	require.NoError(t, err)
	assert.Equal(t, Evaluate(up), Evaluate(direct))
}
