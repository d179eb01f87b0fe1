package graph

import (
	"github.com/lk16/flood/internal/bitset"
	"github.com/lk16/flood/internal/board"
)

// FromBoard builds the region graph of a board. It also returns the node
// id assigned to every cell, indexed row-major, so callers can map a cell
// coordinate to its region.
func FromBoard(b *board.Board) (*Graph, []int) {
	nodeIDs, nodeCount := cellNodeIDs(b)

	colors := nodeColors(b, nodeIDs, nodeCount)
	neighbours := nodeNeighbours(b, nodeIDs, nodeCount)

	colorCount := 0
	for _, c := range colors {
		if c+1 > colorCount {
			colorCount = c + 1
		}
	}

	colorSets := make([]bitset.Set, colorCount)
	for c := range colorSets {
		colorSets[c] = bitset.New(nodeCount)
	}
	for node, c := range colors {
		colorSets[c].Set(node)
	}

	return &Graph{
		Colors:     colors,
		Neighbours: neighbours,
		ColorSets:  colorSets,
	}, nodeIDs
}

// cellNodeIDs assigns each cell a region node id. Ids are handed out in
// row-major order of each region's first cell, so the origin cell always
// maps to node 0.
func cellNodeIDs(b *board.Board) ([]int, int) {
	nodeIDs := make([]int, b.CellCount())
	for i := range nodeIDs {
		nodeIDs[i] = -1
	}

	next := 0
	for cell := 0; cell < b.CellCount(); cell++ {
		if nodeIDs[cell] != -1 {
			continue
		}
		x, y := b.Coordinates(cell)
		for _, member := range b.FloodRegion(x, y) {
			nodeIDs[member] = next
		}
		next++
	}
	return nodeIDs, next
}

func nodeColors(b *board.Board, nodeIDs []int, nodeCount int) []int {
	colors := make([]int, nodeCount)
	for cell := 0; cell < b.CellCount(); cell++ {
		x, y := b.Coordinates(cell)
		colors[nodeIDs[cell]] = b.ColorAt(x, y)
	}
	return colors
}

// nodeNeighbours records region adjacency by scanning each cell's right
// and down neighbours; the other two directions are covered symmetrically.
func nodeNeighbours(b *board.Board, nodeIDs []int, nodeCount int) []bitset.Set {
	neighbours := make([]bitset.Set, nodeCount)
	for node := range neighbours {
		neighbours[node] = bitset.New(nodeCount)
	}

	for cell := 0; cell < b.CellCount(); cell++ {
		x, y := b.Coordinates(cell)
		node := nodeIDs[cell]

		if x+1 < b.Cols() {
			right := nodeIDs[b.Index(x+1, y)]
			if right != node {
				neighbours[node].Set(right)
				neighbours[right].Set(node)
			}
		}
		if y+1 < b.Rows() {
			down := nodeIDs[b.Index(x, y+1)]
			if down != node {
				neighbours[node].Set(down)
				neighbours[down].Set(node)
			}
		}
	}
	return neighbours
}
