package player

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/lk16/flood/internal/board"
)

// Random picks uniformly among the valid moves.
type Random struct {
	rng *rand.Rand
}

// BestMove implements Player.
func (p *Random) BestMove(b *board.Board, origin board.Point, opponent *board.Point, _ time.Duration) (int, error) {
	moves := b.ValidMoves(origin, opponent)
	if len(moves) == 0 {
		return 0, errors.New("no valid moves")
	}
	return moves[p.rng.Intn(len(moves))], nil
}
