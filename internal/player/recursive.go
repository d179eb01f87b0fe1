package player

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lk16/flood/internal/board"
)

// recursiveDepth is how many plies the lookahead explores.
const recursiveDepth = 7

// Recursive looks several plies ahead over region-growing moves and plays
// toward the largest flooded region at the horizon. When no move grows the
// region it falls back to the first valid color.
type Recursive struct{}

// BestMove implements Player.
func (p *Recursive) BestMove(b *board.Board, origin board.Point, opponent *board.Point, _ time.Duration) (int, error) {
	moves := b.ValidMoves(origin, opponent)
	if len(moves) == 0 {
		return 0, errors.New("no valid moves")
	}

	move, _ := p.evaluate(b, origin, opponent, recursiveDepth)
	if move == -1 {
		return moves[0], nil
	}
	return move, nil
}

// evaluate returns the region-growing move reaching the most flooded cells
// within depth plies, and that cell count. The move is -1 when nothing
// grows the region.
func (p *Recursive) evaluate(b *board.Board, origin board.Point, opponent *board.Point, depth int) (int, int) {
	current := b.CountFlooded(origin)

	bestMove := -1
	bestFlooded := current

	for _, move := range b.ValidMoves(origin, opponent) {
		future := b.DoMove(origin, move)
		flooded := future.CountFlooded(origin)
		if flooded <= current {
			continue
		}

		if depth > 1 && !future.IsSolved() {
			if _, deep := p.evaluate(future, origin, opponent, depth-1); deep > flooded {
				flooded = deep
			}
		}

		if flooded > bestFlooded {
			bestFlooded = flooded
			bestMove = move
		}
	}
	return bestMove, bestFlooded
}
