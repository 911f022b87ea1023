// Command analyze prints quick, human-readable statistics about the mazes in
// the maze directory. It summarizes dimensions, wall density, the start and
// exit, and highlights mazes whose exit cannot be reached or whose layout is
// full of dead ends.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/mazegame/game/config"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/validate"
)

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "print statistics for mazes in the maze directory",
		ArgsUsage: "[maze-name...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Value:   "mazes",
				Usage:   "directory containing maze files",
				Sources: cli.EnvVars("MAZE_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return analyze(ctx, os.Stdout, cmd.String("dir"), cmd.Args().Slice())
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// analyze prints a report for the named mazes, or for every maze in dir
func analyze(ctx context.Context, out io.Writer, dir string, names []string) error {
	manager, err := config.NewManager(dir)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		mazes, err := manager.ListMazes(ctx)
		if err != nil {
			return err
		}
		for _, info := range mazes {
			names = append(names, info.MazeID)
		}
	}

	for _, name := range names {
		fmt.Fprintf(out, "\n=== Analyzing %s ===\n", name)

		grid, err := manager.LoadMaze(ctx, name)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		analyzeGrid(out, grid)
	}

	return nil
}

func analyzeGrid(out io.Writer, grid *maze.Grid) {
	stats := maze.Analyze(grid)
	total := stats.Width * stats.Height

	fmt.Fprintf(out, "Grid Size: %d x %d\n", stats.Width, stats.Height)
	fmt.Fprintf(out, "Walls: %d (%.0f%%)\n", stats.Walls, 100*float64(stats.Walls)/float64(total))
	fmt.Fprintf(out, "Open Cells: %d\n", stats.OpenCells)
	fmt.Fprintf(out, "Start: (%d, %d)\n", stats.Start.X, stats.Start.Y)
	fmt.Fprintf(out, "Exit: (%d, %d)\n", stats.Exit.X, stats.Exit.Y)
	fmt.Fprintf(out, "Manhattan Distance: %d\n", stats.ExitDistance)

	steps, ok := validate.ShortestPath(grid)
	if !ok {
		fmt.Fprintf(out, "⚠️  CRITICAL: exit is unreachable from start!\n")
	} else {
		fmt.Fprintf(out, "✅ Shortest route: %d moves (%.1fx Manhattan)\n", steps, float64(steps)/float64(max(stats.ExitDistance, 1)))
	}

	deadEnds := findDeadEnds(grid)
	if len(deadEnds) > 0 {
		fmt.Fprintf(out, "Dead ends: %d\n", len(deadEnds))
		for i, p := range deadEnds {
			if i < 5 { // Show first 5 dead ends
				fmt.Fprintf(out, "   Dead end: (%d, %d)\n", p.X, p.Y)
			}
		}
		if len(deadEnds) > 5 {
			fmt.Fprintf(out, "   ... and %d more\n", len(deadEnds)-5)
		}
	} else {
		fmt.Fprintf(out, "Dead ends: none\n")
	}
}

// findDeadEnds returns open cells with exactly one passable neighbour.
// Start and exit are excluded.
func findDeadEnds(grid *maze.Grid) []maze.Position {
	var deadEnds []maze.Position
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			if symbol, _ := grid.At(p); symbol != maze.Open {
				continue
			}

			exits := 0
			for _, next := range []maze.Position{p.Offset(0, -1), p.Offset(0, 1), p.Offset(-1, 0), p.Offset(1, 0)} {
				if symbol, ok := grid.At(next); ok && symbol.IsPassable() {
					exits++
				}
			}
			if exits == 1 {
				deadEnds = append(deadEnds, p)
			}
		}
	}
	return deadEnds
}
