package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/lk16/flood/internal/bitset"
)

// solveParallel splits the search across the root moves: every productive
// first move is solved to completion by an independent solver, and the
// shortest sequence wins. The winner is deterministic regardless of jobs:
// the root searches share no state, and length ties are broken by root
// candidate order.
func (s *Solver) solveParallel(jobs int) []int {
	initial := bitset.FromIndices(s.g.NodeCount(), []int{s.start})

	s.flooded = initial
	s.moves = s.moves[:0]
	roots := s.candidates()

	if len(roots) == 0 {
		// single-region graph, nothing to flood
		return []int{}
	}

	results := make([][]int, len(roots))
	var group errgroup.Group
	group.SetLimit(jobs)

	for i, root := range roots {
		group.Go(func() error {
			sub := New(s.g, s.start)
			results[i] = sub.solveFrom(initial.Union(root.newly), []int{root.move})
			sub.logSpeed()
			return nil
		})
	}
	// the workers never return errors; Wait is a join
	_ = group.Wait()

	var best []int
	for _, seq := range results {
		if seq == nil {
			continue
		}
		if best == nil || len(seq) < len(best) {
			best = seq
		}
	}
	return best
}
