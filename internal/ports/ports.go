package ports

import (
	"context"
	"time"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/state"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int // states produced
	Expanded int // states taken off the frontier
	Duration time.Duration
}

// Solver finds a cheapest way to bring every item to the top floor.
// A nil state with a nil error means the instance has no solution.
type Solver interface {
	Solve(ctx context.Context, initial *state.State) (*state.State, Stats, error)
}

// Hinter suggests the next trip of an optimal plan.
type Hinter interface {
	Hint(ctx context.Context, s *state.State) (domain.Move, bool, error)
}

// Storage persists and retrieves solutions.
type Storage interface {
	Save(ctx context.Context, s *domain.Solution) error
	Load(ctx context.Context, id string) (*domain.Solution, error)
	List(ctx context.Context) ([]domain.SolutionMeta, error)
}
