// Package graph reduces a board to its region-adjacency graph: one node
// per maximal same-color region, with adjacency and color classes stored
// as bitsets for the solver.
package graph

import (
	"github.com/lk16/flood/internal/bitset"
)

// Graph is the region-adjacency view of a board.
type Graph struct {
	// Colors holds each node's color.
	Colors []int

	// Neighbours holds each node's adjacent nodes. Adjacency is symmetric
	// and no node neighbours itself.
	Neighbours []bitset.Set

	// ColorSets holds, per color, the bitset of nodes having that color.
	// The sets partition the nodes.
	ColorSets []bitset.Set
}

// NodeCount returns the number of regions.
func (g *Graph) NodeCount() int {
	return len(g.Colors)
}

// ColorCount returns the number of color classes.
func (g *Graph) ColorCount() int {
	return len(g.ColorSets)
}
