package solver

import (
	"context"
	"log/slog"
	"time"

	"svw.info/elevator/internal/ports"
	"svw.info/elevator/internal/state"
)

// BFS adapts Search to ports.Solver. The search runs on its own goroutine and stops
// at its next pop once ctx ends.
type BFS struct {
	Logger *slog.Logger
}

func NewBFS(logger *slog.Logger) *BFS { return &BFS{Logger: logger} }

func (b *BFS) Solve(ctx context.Context, initial *state.State) (*state.State, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	done := make(chan Result, 1)
	go func() {
		done <- SearchWith(initial, Options{Logger: b.Logger, Done: ctx.Done()})
	}()

	select {
	case <-ctx.Done():
		searchTotal.WithLabelValues("canceled").Inc()
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	case res := <-done:
		if res.Stopped {
			searchTotal.WithLabelValues("canceled").Inc()
			return nil, ports.Stats{Nodes: res.Explored, Expanded: res.Expanded, Duration: time.Since(start)}, ctx.Err()
		}
		st := ports.Stats{Nodes: res.Explored, Expanded: res.Expanded, Duration: time.Since(start)}
		observe(res, st.Duration)
		return res.Best(), st, nil
	}
}
