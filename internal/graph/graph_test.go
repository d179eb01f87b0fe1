package graph

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/lk16/flood/internal/board"
)

func TestFromBoardSmall(t *testing.T) {
	// 0 1
	// 1 0
	b := board.New([]int{0, 1, 1, 0}, 2)
	g, nodeIDs := FromBoard(b)

	if diff := cmp.Diff([]int{0, 1, 2, 3}, nodeIDs); diff != "" {
		t.Errorf("node ids mismatch (-want +got):\n%s", diff)
	}
	if got := g.NodeCount(); got != 4 {
		t.Fatalf("NodeCount = %d, want 4", got)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 0}, g.Colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}

	wantNeighbours := [][]int{{1, 2}, {0, 3}, {0, 3}, {1, 2}}
	for node, want := range wantNeighbours {
		if diff := cmp.Diff(want, g.Neighbours[node].Indices()); diff != "" {
			t.Errorf("neighbours of %d mismatch (-want +got):\n%s", node, diff)
		}
	}

	if diff := cmp.Diff([]int{0, 3}, g.ColorSets[0].Indices()); diff != "" {
		t.Errorf("color set 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2}, g.ColorSets[1].Indices()); diff != "" {
		t.Errorf("color set 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestOriginCellIsNodeZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := board.Random(rng, 6, 6, 4)
	_, nodeIDs := FromBoard(b)

	if nodeIDs[b.Index(0, 0)] != 0 {
		t.Errorf("origin cell mapped to node %d, want 0", nodeIDs[b.Index(0, 0)])
	}
}

func TestAdjacencyIsSymmetricAndIrreflexive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 20; trial++ {
		b := board.Random(rng, 7, 5, 4)
		g, _ := FromBoard(b)

		for node := 0; node < g.NodeCount(); node++ {
			if g.Neighbours[node].Test(node) {
				t.Fatalf("trial %d: node %d neighbours itself", trial, node)
			}
			g.Neighbours[node].ForEach(func(neighbour int) {
				if !g.Neighbours[neighbour].Test(node) {
					t.Fatalf("trial %d: %d -> %d is not symmetric", trial, node, neighbour)
				}
				if g.Colors[node] == g.Colors[neighbour] {
					t.Fatalf("trial %d: neighbouring regions %d and %d share color %d",
						trial, node, neighbour, g.Colors[node])
				}
			})
		}
	}
}

func TestColorSetsPartitionNodes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		b := board.Random(rng, 5, 8, 5)
		g, _ := FromBoard(b)

		seen := make([]int, g.NodeCount())
		for c, set := range g.ColorSets {
			set.ForEach(func(node int) {
				seen[node]++
				if g.Colors[node] != c {
					t.Fatalf("trial %d: node %d in color set %d but has color %d",
						trial, node, c, g.Colors[node])
				}
			})
		}
		for node, count := range seen {
			if count != 1 {
				t.Fatalf("trial %d: node %d appears in %d color sets", trial, node, count)
			}
		}
	}
}

func TestNodeIDsMatchFloodRegions(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	b := board.Random(rng, 6, 6, 3)
	_, nodeIDs := FromBoard(b)

	for cell := 0; cell < b.CellCount(); cell++ {
		x, y := b.Coordinates(cell)

		region := b.FloodRegion(x, y)
		sort.Ints(region)

		var mapped []int
		for other, id := range nodeIDs {
			if id == nodeIDs[cell] {
				mapped = append(mapped, other)
			}
		}

		if diff := cmp.Diff(region, mapped); diff != "" {
			t.Fatalf("cells of node %d do not match the flood region of cell %d (-want +got):\n%s",
				nodeIDs[cell], cell, diff)
		}
	}
}

func TestRenderNodeIDs(t *testing.T) {
	b := board.New([]int{0, 1, 1, 0}, 2)
	_, nodeIDs := FromBoard(b)

	var sb strings.Builder
	RenderNodeIDs(&sb, b, nodeIDs)

	want := " 0 1\n 2 3\n"
	if sb.String() != want {
		t.Errorf("RenderNodeIDs = %q, want %q", sb.String(), want)
	}
}

func TestRenderNeighbours(t *testing.T) {
	b := board.New([]int{0, 1, 1, 0}, 2)
	g, _ := FromBoard(b)

	var sb strings.Builder
	RenderNeighbours(&sb, g)

	if !strings.Contains(sb.String(), "1 -> [0, 3]") {
		t.Errorf("RenderNeighbours output missing adjacency list:\n%s", sb.String())
	}
}

func TestDOT(t *testing.T) {
	b := board.New([]int{0, 1, 1, 0}, 2)
	g, _ := FromBoard(b)

	data, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}

	out := string(data)
	for _, want := range []string{"graph regions", "r0_c0", "r1_c1", "0 -- 1", "1 -- 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}
