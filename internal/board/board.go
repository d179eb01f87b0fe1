// Package board implements the Flood-It grid: an immutable rectangular
// field of colored cells stored in row-major order.
package board

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// Point is a cell coordinate. X indexes columns, Y indexes rows; the
// origin (0, 0) is the top-left corner.
type Point struct {
	X, Y int
}

// Board is an immutable colored grid. Moves yield a new Board.
type Board struct {
	cells []int
	rows  int
	cols  int
}

// New builds a board from row-major cell colors. It panics when the
// geometry is invalid: cells must be non-empty and divide evenly into rows.
func New(cells []int, rows int) *Board {
	if len(cells) == 0 || rows < 1 || len(cells)%rows != 0 {
		panic(fmt.Sprintf("board: invalid geometry: %d cells in %d rows", len(cells), rows))
	}
	copied := make([]int, len(cells))
	copy(copied, cells)
	return &Board{
		cells: copied,
		rows:  rows,
		cols:  len(cells) / rows,
	}
}

// Random generates a rows×cols board with cell colors drawn uniformly
// from [0, colors) using rng.
func Random(rng *rand.Rand, rows, cols, colors int) *Board {
	cells := make([]int, rows*cols)
	for i := range cells {
		cells[i] = rng.Intn(colors)
	}
	return New(cells, rows)
}

// Rows returns the row count.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the column count.
func (b *Board) Cols() int {
	return b.cols
}

// CellCount returns the total number of cells.
func (b *Board) CellCount() int {
	return len(b.cells)
}

// Index returns the row-major cell index of (x, y).
func (b *Board) Index(x, y int) int {
	return y*b.cols + x
}

// Coordinates returns the (x, y) coordinates of a row-major cell index.
func (b *Board) Coordinates(index int) (x, y int) {
	return index % b.cols, index / b.cols
}

// ColorAt returns the color of the cell at (x, y).
func (b *Board) ColorAt(x, y int) int {
	return b.cells[b.Index(x, y)]
}

// Cells returns a copy of the row-major cell colors.
func (b *Board) Cells() []int {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// RemainingColors returns the colors present on the board in ascending order.
func (b *Board) RemainingColors() []int {
	seen := make(map[int]bool)
	var colors []int
	for _, c := range b.cells {
		if !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	sort.Ints(colors)
	return colors
}

// CountColor returns how many cells have the given color.
func (b *Board) CountColor(color int) int {
	count := 0
	for _, c := range b.cells {
		if c == color {
			count++
		}
	}
	return count
}

// FloodRegion returns the indices of all cells 4-connected to (x, y) that
// share its color, in breadth-first discovery order.
func (b *Board) FloodRegion(x, y int) []int {
	target := b.ColorAt(x, y)
	seed := b.Index(x, y)

	visited := make([]bool, len(b.cells))
	visited[seed] = true
	queue := []int{seed}
	var region []int

	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]
		region = append(region, index)

		cx, cy := b.Coordinates(index)
		for _, n := range [4]Point{{cx - 1, cy}, {cx + 1, cy}, {cx, cy - 1}, {cx, cy + 1}} {
			if n.X < 0 || n.X >= b.cols || n.Y < 0 || n.Y >= b.rows {
				continue
			}
			ni := b.Index(n.X, n.Y)
			if visited[ni] || b.cells[ni] != target {
				continue
			}
			visited[ni] = true
			queue = append(queue, ni)
		}
	}
	return region
}

// CountFlooded returns the size of the region containing p.
func (b *Board) CountFlooded(p Point) int {
	return len(b.FloodRegion(p.X, p.Y))
}

// DoMove returns a new board in which the region containing p is recolored
// to color. Recoloring a region to its own color returns an equal board.
func (b *Board) DoMove(p Point, color int) *Board {
	cells := b.Cells()
	for _, index := range b.FloodRegion(p.X, p.Y) {
		cells[index] = color
	}
	return New(cells, b.rows)
}

// IsSolved reports whether all cells share one color.
func (b *Board) IsSolved() bool {
	return len(b.RemainingColors()) == 1
}

// ValidMoves returns the remaining colors minus the color at origin, and
// minus the color at the opponent origin when one is given, in ascending
// order.
func (b *Board) ValidMoves(origin Point, opponent *Point) []int {
	exclude := map[int]bool{b.ColorAt(origin.X, origin.Y): true}
	if opponent != nil {
		exclude[b.ColorAt(opponent.X, opponent.Y)] = true
	}

	var moves []int
	for _, c := range b.RemainingColors() {
		if !exclude[c] {
			moves = append(moves, c)
		}
	}
	return moves
}

// Equal reports whether two boards have the same geometry and cell colors.
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || len(b.cells) != len(o.cells) {
		return false
	}
	for i, c := range b.cells {
		if c != o.cells[i] {
			return false
		}
	}
	return true
}
