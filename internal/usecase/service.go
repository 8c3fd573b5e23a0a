package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/parser"
	"svw.info/elevator/internal/ports"
	"svw.info/elevator/internal/state"
	"svw.info/elevator/internal/validator"
)

type Service struct {
	Solver  ports.Solver
	Hinter  ports.Hinter
	Storage ports.Storage
	Logger  *slog.Logger
}

func NewService(s ports.Solver, h ports.Hinter, st ports.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Solver: s, Hinter: h, Storage: st, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve searches for the cheapest plan for floors and reports it as a Solution.
// An unsolvable instance is a normal result with Solved false.
func (u *Service) Solve(ctx context.Context, name string, floors [][]domain.Item, part int) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := parser.CheckPairs(floors); err != nil {
		return nil, ports.Stats{}, err
	}
	initial, err := state.New(floors)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	best, st, err := u.Solver.Solve(ctx, initial)
	if err != nil {
		return nil, st, fmt.Errorf("solve part %d: %w", part, err)
	}

	sol := &domain.Solution{
		Name:       name,
		Part:       part,
		Floors:     domain.Codes(floors),
		Cost:       -1,
		Explored:   st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
		CreatedAt:  time.Now().UnixNano(),
	}
	if best != nil {
		sol.Solved = true
		sol.Cost = best.Cost()
		sol.Moves = best.Moves()
	}
	u.Logger.Info("solved",
		"name", name,
		"part", part,
		"solved", sol.Solved,
		"cost", sol.Cost,
		"explored", st.Nodes,
		"dur", st.Duration.Round(time.Millisecond),
	)
	return sol, st, nil
}

// SolvePart solves part one on floors, or part two on floors plus extras.
func (u *Service) SolvePart(ctx context.Context, name string, floors [][]domain.Item, part int, extras []string) (*domain.Solution, ports.Stats, error) {
	switch part {
	case 1:
	case 2:
		var err error
		if floors, err = parser.WithExtras(floors, extras); err != nil {
			return nil, ports.Stats{}, err
		}
	default:
		return nil, ports.Stats{}, fmt.Errorf("%w: unknown part %d (want 1 or 2)", domain.ErrMalformed, part)
	}
	return u.Solve(ctx, name, floors, part)
}

// SolveBoth runs part one on floors and part two on floors plus extras, in parallel.
func (u *Service) SolveBoth(ctx context.Context, name string, floors [][]domain.Item, extras []string) ([2]*domain.Solution, error) {
	var out [2]*domain.Solution
	second, err := parser.WithExtras(floors, extras)
	if err != nil {
		return out, err
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, fl := range [][][]domain.Item{floors, second} {
		g.Go(func() error {
			sol, _, err := u.Solve(ctx, name, fl, i+1)
			if err != nil {
				return err
			}
			out[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [2]*domain.Solution{}, err
	}
	return out, nil
}

// Check classifies an arrangement without searching.
func (u *Service) Check(ctx context.Context, floors [][]domain.Item, elevator int) (domain.Status, []domain.Item, error) {
	s, err := state.NewAt(floors, elevator)
	if err != nil {
		return domain.Safe, nil, err
	}
	st, fried := validator.Check(s)
	return st, fried, nil
}

// Hint returns the first trip of a cheapest plan from floors with the elevator at elevator.
func (u *Service) Hint(ctx context.Context, floors [][]domain.Item, elevator int) (domain.Move, bool, error) {
	if u.Hinter == nil {
		return domain.Move{}, false, errNotConfigured
	}
	if err := parser.CheckPairs(floors); err != nil {
		return domain.Move{}, false, err
	}
	s, err := state.NewAt(floors, elevator)
	if err != nil {
		return domain.Move{}, false, err
	}
	return u.Hinter.Hint(ctx, s)
}

// Persistence
func (u *Service) Save(ctx context.Context, s *domain.Solution) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if s.ID == "" {
		s.ID = newID()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, s)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Solution, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
