package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/lk16/flood/internal/board"
	"github.com/lk16/flood/internal/graph"
	"github.com/lk16/flood/internal/player"
)

var (
	width      int
	height     int
	colorCount int
	seed       uint64
	delay      float64
	jobs       int
	debugGraph bool
	dotFile    string
)

var solveCmd = &cobra.Command{
	Use:   "solve <player>",
	Short: "Generate a random board and let a player solve it",
	Long: "Generate a random board and let a player solve it.\n\n" +
		"Players: " + strings.Join(player.Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&width, "width", "w", 10, "Board column count")
	solveCmd.Flags().IntVarP(&height, "height", "h", 10, "Board row count")
	solveCmd.Flags().IntVarP(&colorCount, "colors", "c", 5, "Number of distinct colors")
	solveCmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "RNG seed for deterministic board generation")
	solveCmd.Flags().Float64VarP(&delay, "delay", "d", 0, "Seconds to sleep between rendered frames")
	solveCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Concurrent root searches for the graph player")
	solveCmd.Flags().BoolVar(&debugGraph, "debug-graph", false, "Print the region graph before solving")
	solveCmd.Flags().StringVar(&dotFile, "dot", "", "Write the region graph in DOT format to this file")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	source := rand.NewSource(uint64(time.Now().UnixNano()))
	if cmd.Flags().Changed("seed") {
		source = rand.NewSource(seed)
	}
	rng := rand.New(source)

	p, err := player.New(args[0], rng)
	if err != nil {
		return err
	}
	if gp, ok := p.(*player.Graph); ok {
		gp.Jobs = jobs
	}

	b := board.Random(rng, height, width, colorCount)
	origin := board.Point{X: 0, Y: 0}

	if debugGraph || dotFile != "" {
		if err := renderGraph(b); err != nil {
			return err
		}
	}

	var moves []int
	for !b.IsSolved() {
		b.Render(os.Stdout)
		fmt.Println()

		move, err := p.BestMove(b, origin, nil, 0)
		if err != nil {
			return err
		}
		moves = append(moves, move)
		b = b.DoMove(origin, move)

		if delay > 0 {
			time.Sleep(time.Duration(delay * float64(time.Second)))
		}
	}
	b.Render(os.Stdout)

	fmt.Printf("\nSolved in %d moves:", len(moves))
	for _, move := range moves {
		fmt.Print(" ", board.ColorString(move))
	}
	fmt.Println()
	return nil
}

// renderGraph prints the debug view of the board's region graph and writes
// the DOT export when requested.
func renderGraph(b *board.Board) error {
	g, nodeIDs := graph.FromBoard(b)

	if debugGraph {
		graph.RenderNodeIDs(os.Stdout, b, nodeIDs)
		graph.RenderNodeColors(os.Stdout, g)
		graph.RenderNeighbours(os.Stdout, g)
	}

	if dotFile != "" {
		data, err := g.DOT()
		if err != nil {
			return errors.Wrap(err, "rendering region graph")
		}
		if err := os.WriteFile(dotFile, data, 0o644); err != nil {
			return errors.Wrap(err, "writing dot file")
		}
	}
	return nil
}
