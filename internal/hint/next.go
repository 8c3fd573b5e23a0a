package hint

import (
	"context"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/ports"
	"svw.info/elevator/internal/state"
)

// Next suggests the first trip of a cheapest plan found by a Solver.
type Next struct {
	Solver ports.Solver
}

func NewNext(s ports.Solver) *Next { return &Next{Solver: s} }

// Hint returns the first move from s toward the top floor. It reports false when s is
// already finished or cannot be finished.
func (h *Next) Hint(ctx context.Context, s *state.State) (domain.Move, bool, error) {
	best, _, err := h.Solver.Solve(ctx, s)
	if err != nil {
		return domain.Move{}, false, err
	}
	if best == nil {
		return domain.Move{}, false, nil
	}
	for cur := best; cur != nil; cur = cur.Prev() {
		if cur.Prev() == s {
			return cur.Move(), true, nil
		}
	}
	return domain.Move{}, false, nil
}
