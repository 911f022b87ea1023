// Package validate checks maze files before they are played. It reports:
//   - Load errors with the loader's reason (dimensions, characters, start/exit)
//   - Grid size and cell counts for valid mazes
//   - Connectivity: whether the exit is reachable from the start, and the
//     length of the shortest route
package validate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

// Result captures the outcome of validating a single file.
// Info holds the informational lines for valid files; Errors holds the
// failures for invalid ones. Warnings never make a file invalid.
type Result struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
	Info     []string
}

// File loads and validates a single maze file
func File(path string) Result {
	result := Result{
		File:  filepath.Base(path),
		Valid: true,
	}

	grid, err := maze.LoadFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	stats := maze.Analyze(grid)
	result.Info = append(result.Info,
		fmt.Sprintf("✓ Grid: %dx%d", stats.Width, stats.Height),
		fmt.Sprintf("✓ Start: (%d,%d) Exit: (%d,%d)", stats.Start.X, stats.Start.Y, stats.Exit.X, stats.Exit.Y),
		fmt.Sprintf("✓ Walls: %d Open: %d", stats.Walls, stats.OpenCells),
	)

	steps, ok := ShortestPath(grid)
	if ok {
		result.Info = append(result.Info, fmt.Sprintf("✓ Connectivity: exit reachable in %d moves", steps))
	} else {
		result.Warnings = append(result.Warnings, "Exit is unreachable from start; the maze cannot be won")
	}

	return result
}

// Files validates every path in order
func Files(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, File(path))
	}
	return results
}

// ShortestPath runs a breadth-first flood fill from the start over passable
// cells using 4-directional movement. It returns the number of moves on the
// shortest route to the exit, or false if the exit cannot be reached.
func ShortestPath(grid *maze.Grid) (int, bool) {
	start, exit := grid.Start(), grid.Exit()

	distance := map[maze.Position]int{start: 0}
	queue := []maze.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == exit {
			return distance[current], true
		}

		for _, delta := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			next := current.Offset(delta[0], delta[1])
			if _, seen := distance[next]; seen {
				continue
			}
			if symbol, ok := grid.At(next); !ok || !symbol.IsPassable() {
				continue
			}
			distance[next] = distance[current] + 1
			queue = append(queue, next)
		}
	}

	return 0, false
}

// Report prints a concise report and returns whether every file was valid
func Report(w io.Writer, results []Result) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
			for _, warning := range result.Warnings {
				fmt.Fprintln(w, "  ⚠️  "+warning)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All mazes are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some mazes have errors")
	}
	return allValid
}
