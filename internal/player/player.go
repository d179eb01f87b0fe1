// Package player implements the move-selection strategies: random,
// one-ply greedy, the two-signal kurt heuristic, a multi-ply greedy
// lookahead, and the exact-ish region-graph solver.
package player

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/lk16/flood/internal/board"
)

// Player picks the next color to flood from the origin. The opponent
// origin is nil in single-player games. The timeout is advisory; no
// current player enforces it.
type Player interface {
	BestMove(b *board.Board, origin board.Point, opponent *board.Point, timeout time.Duration) (int, error)
}

// New returns the player registered under name. The random player draws
// from rng; the other players ignore it.
func New(name string, rng *rand.Rand) (Player, error) {
	switch name {
	case "graph":
		return &Graph{}, nil
	case "greedy":
		return &Greedy{}, nil
	case "kurt":
		return &Kurt{}, nil
	case "random":
		return &Random{rng: rng}, nil
	case "recursive":
		return &Recursive{}, nil
	}
	return nil, errors.Errorf("no player named %q", name)
}

// Names returns the registered player names in alphabetical order.
func Names() []string {
	return []string{"graph", "greedy", "kurt", "random", "recursive"}
}
