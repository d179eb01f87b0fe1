package player

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lk16/flood/internal/board"
	"github.com/lk16/flood/internal/graph"
	"github.com/lk16/flood/internal/solver"
)

// ErrMultiplayer is returned when the graph player is given an opponent
// origin; two-origin search is not supported.
var ErrMultiplayer = errors.New("graph player does not support multiplayer")

// Graph solves the whole board with the region-graph solver on the first
// call and replays the remaining moves of the solution on later calls. The
// cache is only valid while the caller applies every returned move to the
// origin; it re-solves once the cache runs out.
type Graph struct {
	// Jobs is the number of root moves the solver searches concurrently.
	// Zero or one selects the single-threaded search.
	Jobs int

	cached []int
}

// BestMove implements Player.
func (p *Graph) BestMove(b *board.Board, origin board.Point, opponent *board.Point, _ time.Duration) (int, error) {
	if opponent != nil {
		return 0, ErrMultiplayer
	}

	if len(p.cached) > 0 {
		move := p.cached[0]
		p.cached = p.cached[1:]
		return move, nil
	}

	g, nodeIDs := graph.FromBoard(b)
	start := nodeIDs[b.Index(origin.X, origin.Y)]

	seq := solver.New(g, start).SolveWith(solver.Options{Jobs: p.Jobs})
	if len(seq) == 0 {
		return 0, errors.New("board is already solved")
	}

	p.cached = seq[1:]
	return seq[0], nil
}
