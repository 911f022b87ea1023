package maze

// Stats summarizes a maze layout
type Stats struct {
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Walls        int      `json:"walls"`
	OpenCells    int      `json:"open_cells"`
	Start        Position `json:"start"`
	Exit         Position `json:"exit"`
	ExitDistance int      `json:"exit_distance"`
}

// Analyze computes layout statistics. ExitDistance is the Manhattan
// distance from start to exit, a lower bound on the number of moves.
func Analyze(g *Grid) Stats {
	return Stats{
		Width:        g.width,
		Height:       g.height,
		Walls:        g.Count(Wall),
		OpenCells:    g.width*g.height - g.Count(Wall),
		Start:        g.start,
		Exit:         g.exit,
		ExitDistance: ManhattanDistance(g.start, g.exit),
	}
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
