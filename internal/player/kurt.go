package player

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lk16/flood/internal/board"
)

// Kurt keeps only the moves that grow the flooded region, then prefers the
// move whose resulting region owns the biggest share of its color on the
// new board. When no move grows the region it falls back to the first
// valid color.
type Kurt struct{}

// BestMove implements Player.
func (p *Kurt) BestMove(b *board.Board, origin board.Point, opponent *board.Point, _ time.Duration) (int, error) {
	moves := b.ValidMoves(origin, opponent)
	if len(moves) == 0 {
		return 0, errors.New("no valid moves")
	}

	current := b.CountFlooded(origin)
	var improving []int
	for _, move := range moves {
		if b.DoMove(origin, move).CountFlooded(origin) > current {
			improving = append(improving, move)
		}
	}
	if len(improving) == 0 {
		return moves[0], nil
	}

	best := improving[0]
	bestShare := 0.0
	for _, move := range improving {
		future := b.DoMove(origin, move)
		share := float64(future.CountFlooded(origin)) / float64(future.CountColor(move))
		if share > bestShare {
			bestShare = share
			best = move
		}
	}
	return best, nil
}
