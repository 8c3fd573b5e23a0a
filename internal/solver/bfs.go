package solver

import (
	"log/slog"
	"math"

	"svw.info/elevator/internal/domain"
	"svw.info/elevator/internal/generator"
	"svw.info/elevator/internal/memo"
	"svw.info/elevator/internal/state"
	"svw.info/elevator/internal/validator"
)

// Unsolvable is the cost reported when no arrangement with every item on top is reachable.
const Unsolvable = -1

// Result is the outcome of one search.
type Result struct {
	Cost      int            // minimal number of moves, or Unsolvable
	Solutions []*state.State // every finished state found at Cost, in discovery order
	Explored  int            // states produced by the generator
	Expanded  int            // states taken off the frontier
	Stopped   bool           // Done fired before the frontier emptied
}

// Solved reports whether at least one finished state was reached.
func (r Result) Solved() bool { return r.Cost != Unsolvable }

// Best returns the first finished state found at the minimal cost, or nil.
func (r Result) Best() *state.State {
	if len(r.Solutions) == 0 {
		return nil
	}
	return r.Solutions[0]
}

// Options tune a search run. Only Done can change the result: a search stopped early
// reports what it found so far with Stopped set.
type Options struct {
	Logger *slog.Logger    // per-layer progress at debug level
	Done   <-chan struct{} // closing it stops the search at the next pop
}

// Search runs a breadth-first search from initial and returns the cheapest solutions.
// It runs to completion on the calling goroutine.
func Search(initial *state.State) Result {
	return SearchWith(initial, Options{})
}

// SearchWith is Search with diagnostics.
func SearchWith(initial *state.State, opt Options) Result {
	res := Result{Cost: Unsolvable}
	if validator.Evaluate(initial) == domain.Success {
		res.Cost = 0
		res.Solutions = []*state.State{initial}
		return res
	}

	gen := generator.New(memo.New())
	best := math.MaxInt
	frontier := []*state.State{initial}
	layer := initial.Cost()

	for len(frontier) > 0 {
		select {
		case <-opt.Done:
			res.Stopped = true
			if best != math.MaxInt {
				res.Cost = best
			}
			return res
		default:
		}
		cur := frontier[0]
		frontier[0] = nil
		frontier = frontier[1:]

		if opt.Logger != nil && cur.Cost() != layer {
			layer = cur.Cost()
			opt.Logger.Debug("search layer", "cost", layer, "frontier", len(frontier)+1, "explored", res.Explored)
		}
		// every successor would cost more than the best already found
		if cur.Cost()+1 > best {
			continue
		}
		res.Expanded++

		for _, next := range gen.Expand(cur) {
			res.Explored++
			switch validator.Evaluate(next) {
			case domain.Success:
				switch {
				case next.Cost() < best:
					best = next.Cost()
					res.Solutions = []*state.State{next}
				case next.Cost() == best:
					res.Solutions = append(res.Solutions, next)
				}
			case domain.Safe:
				if next.Cost() < best {
					frontier = append(frontier, next)
				}
			}
		}
	}

	if best != math.MaxInt {
		res.Cost = best
	}
	return res
}
