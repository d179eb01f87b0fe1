// Package solver finds short flood move sequences over region graphs using
// iterative-deepening depth-first search with lower-bound pruning.
package solver

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lk16/flood/internal/bitset"
	"github.com/lk16/flood/internal/graph"
)

// speedReportInterval is the number of search attempts between progress logs.
const speedReportInterval = 10000

// Options configures a solve.
type Options struct {
	// Jobs is the number of root moves searched concurrently. Values below
	// two select the single-threaded search.
	Jobs int
}

// Solver searches one graph from a fixed start node. A Solver is not safe
// for concurrent use; the parallel mode creates one per root move.
type Solver struct {
	g     *graph.Graph
	start int

	// maxMoves bounds the depth of the current search attempt. Each found
	// solution tightens it to one move less than the solution length.
	maxMoves int

	// flooded is shared across the recursion and mutated with undo: union
	// the newly flooded nodes on entry, xor them back out on exit.
	flooded bitset.Set
	moves   []int

	best []int

	attempts   uint64
	solveStart time.Time
}

// New creates a solver for the graph, flooding outward from start.
func New(g *graph.Graph, start int) *Solver {
	return &Solver{
		g:     g,
		start: start,
	}
}

// Solve returns the shortest move sequence discovered that floods the
// whole graph from the start node. An empty sequence means the graph is
// already a single region.
func (s *Solver) Solve() []int {
	initial := bitset.FromIndices(s.g.NodeCount(), []int{s.start})
	seq := s.solveFrom(initial, nil)
	s.logSpeed()
	return seq
}

// SolveWith runs Solve with the given options.
func (s *Solver) SolveWith(opts Options) []int {
	if opts.Jobs < 2 {
		return s.Solve()
	}
	return s.solveParallel(opts.Jobs)
}

// solveFrom runs the iterative deepening loop from a seeded search state.
// prefix holds the moves already played to reach the seeded state and is
// included in the returned sequence and in the move bound. The return is
// nil only if no solution exists within the node-count bound, which cannot
// happen on a well-formed graph.
func (s *Solver) solveFrom(initial bitset.Set, prefix []int) []int {
	s.solveStart = time.Now()
	s.attempts = 0
	s.maxMoves = s.g.NodeCount()
	s.best = nil

	for {
		s.flooded = initial.Clone()
		s.moves = append(s.moves[:0], prefix...)

		if !s.search() {
			break
		}

		log.Debug().
			Int("length", len(s.best)).
			Ints("moves", s.best).
			Msg("solution found")

		s.maxMoves = len(s.best) - 1
	}
	return s.best
}

// search is the bounded DFS. It returns true as soon as one solution has
// been recorded in s.best, unwinding the whole recursion; the caller
// restarts with a tighter bound.
func (s *Solver) search() bool {
	if len(s.moves) > s.maxMoves {
		return false
	}

	// Each color still present outside the flooded set needs at least one
	// more move, so this bound never overestimates.
	if s.unfloodedColors()+len(s.moves) > s.maxMoves {
		return false
	}

	if s.flooded.PopCount() == s.g.NodeCount() {
		s.best = append(make([]int, 0, len(s.moves)), s.moves...)
		return true
	}

	s.attempts++
	if s.attempts%speedReportInterval == 0 {
		s.logSpeed()
	}

	for _, c := range s.candidates() {
		s.flooded.UnionWith(c.newly)
		s.moves = append(s.moves, c.move)

		solved := s.search()

		s.moves = s.moves[:len(s.moves)-1]
		s.flooded.XorWith(c.newly)

		if solved {
			return true
		}
	}
	return false
}

// candidate is a scored successor move.
type candidate struct {
	move  int
	newly bitset.Set
	count int
}

// candidates generates the productive moves from the current state,
// ordered greedily: largest newly flooded set first, lowest color on ties.
func (s *Solver) candidates() []candidate {
	last := -1
	if len(s.moves) > 0 {
		last = s.moves[len(s.moves)-1]
	}

	cands := make([]candidate, 0, s.g.ColorCount())
	for move := 0; move < s.g.ColorCount(); move++ {
		if move == last {
			// the previous move already absorbed every reachable node
			// of this color
			continue
		}
		newly := s.newlyFlooded(move)
		if newly.None() {
			continue
		}
		cands = append(cands, candidate{
			move:  move,
			newly: newly,
			count: newly.PopCount(),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].count > cands[j].count
	})
	return cands
}

// newlyFlooded returns the unflooded nodes of the move's color that touch
// the flooded set.
func (s *Solver) newlyFlooded(move int) bitset.Set {
	newly := bitset.New(s.g.NodeCount())
	unflooded := s.g.ColorSets[move].AndNot(s.flooded)
	unflooded.ForEach(func(node int) {
		if s.g.Neighbours[node].Intersects(s.flooded) {
			newly.Set(node)
		}
	})
	return newly
}

// unfloodedColors counts the colors with at least one node outside the
// flooded set.
func (s *Solver) unfloodedColors() int {
	count := 0
	for _, set := range s.g.ColorSets {
		if !set.SubsetOf(s.flooded) {
			count++
		}
	}
	return count
}

func (s *Solver) logSpeed() {
	seconds := time.Since(s.solveStart).Seconds()
	if seconds == 0 || s.attempts == 0 {
		return
	}
	log.Debug().
		Uint64("attempts", s.attempts).
		Float64("seconds", seconds).
		Float64("attempts_per_sec", float64(s.attempts)/seconds).
		Msg("search progress")
}
