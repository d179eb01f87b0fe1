package graph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// regionNode labels DOT nodes with the region id and its color.
type regionNode struct {
	id    int64
	color int
}

func (n regionNode) ID() int64 {
	return n.id
}

// Attributes implements encoding.Attributer for DOT output.
func (n regionNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("r%d_c%d", n.id, n.color)},
	}
}

// DOT renders the region graph in Graphviz DOT format.
func (g *Graph) DOT() ([]byte, error) {
	dst := simple.NewUndirectedGraph()
	for node := 0; node < g.NodeCount(); node++ {
		dst.AddNode(regionNode{id: int64(node), color: g.Colors[node]})
	}
	for node := 0; node < g.NodeCount(); node++ {
		g.Neighbours[node].ForEach(func(neighbour int) {
			if neighbour > node {
				dst.SetEdge(dst.NewEdge(dst.Node(int64(node)), dst.Node(int64(neighbour))))
			}
		})
	}
	return dot.Marshal(dst, "regions", "", "  ")
}
