package player

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lk16/flood/internal/board"
)

// Greedy plays the color that floods the most cells one move ahead. Ties
// go to the lowest color.
type Greedy struct{}

// BestMove implements Player.
func (p *Greedy) BestMove(b *board.Board, origin board.Point, opponent *board.Point, _ time.Duration) (int, error) {
	moves := b.ValidMoves(origin, opponent)
	if len(moves) == 0 {
		return 0, errors.New("no valid moves")
	}

	best := moves[0]
	mostFlooded := b.DoMove(origin, best).CountFlooded(origin)

	for _, move := range moves[1:] {
		flooded := b.DoMove(origin, move).CountFlooded(origin)
		if flooded > mostFlooded {
			mostFlooded = flooded
			best = move
		}
	}
	return best, nil
}
