package maze

import "strings"

// RenderLines draws the grid with the Marker over pos. Cells are copied,
// so the grid itself never sees the marker. A pos outside the grid draws
// no marker.
func RenderLines(g *Grid, pos Position) []string {
	lines := make([]string, g.height)
	var b strings.Builder
	for y, row := range g.cells {
		b.Reset()
		for x, cell := range row {
			if x == pos.X && y == pos.Y {
				b.WriteRune(rune(Marker))
				continue
			}
			b.WriteRune(rune(cell))
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns RenderLines joined with newlines, ending with a newline
func Render(g *Grid, pos Position) string {
	return strings.Join(RenderLines(g, pos), "\n") + "\n"
}
