package graph

import (
	"fmt"
	"io"

	"github.com/lk16/flood/internal/board"
)

// RenderNodeIDs writes each cell's node id in the shape of the board.
func RenderNodeIDs(w io.Writer, b *board.Board, nodeIDs []int) {
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			fmt.Fprintf(w, "%2d", nodeIDs[b.Index(x, y)])
		}
		fmt.Fprintln(w)
	}
}

// RenderNodeColors writes each node's color glyph, one node per line.
func RenderNodeColors(w io.Writer, g *Graph) {
	for node, c := range g.Colors {
		fmt.Fprintf(w, "%2d -> %s\n", node, board.ColorString(c))
	}
}

// RenderNeighbours writes each node's adjacency list, one node per line.
func RenderNeighbours(w io.Writer, g *Graph) {
	for node, neighbours := range g.Neighbours {
		fmt.Fprintf(w, "%2d -> %s\n", node, neighbours.String())
	}
}
