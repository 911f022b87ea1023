package maze

// Symbol represents the content of a single maze cell
type Symbol rune

const (
	Wall  Symbol = '#'
	Open  Symbol = ' '
	Start Symbol = 'S'
	Exit  Symbol = 'E'

	// Marker is drawn over the player's cell when rendering. It is never
	// stored in a Grid.
	Marker Symbol = 'X'

	// Validation constants
	MinSize = 5
	MaxSize = 100
)

// Valid reports whether s is one of the four maze symbols
func (s Symbol) Valid() bool {
	switch s {
	case Wall, Open, Start, Exit:
		return true
	}
	return false
}

// IsPassable returns true if the player may stand on the cell
func (s Symbol) IsPassable() bool {
	return s.Valid() && s != Wall
}

// Name returns a human-readable cell name
func (s Symbol) Name() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case Marker:
		return "marker"
	default:
		return "unknown"
	}
}

// Position represents x,y coordinates. X grows to the right, Y grows down.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the position moved by dx, dy
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a validated, immutable maze layout
type Grid struct {
	width  int
	height int
	cells  [][]Symbol
	start  Position
	exit   Position
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Start returns the start cell position
func (g *Grid) Start() Position {
	return g.start
}

// Exit returns the exit cell position
func (g *Grid) Exit() Position {
	return g.exit
}

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the symbol at p. The boolean is false when p is out of bounds.
func (g *Grid) At(p Position) (Symbol, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Rows returns a copy of the layout as strings, one per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y, row := range g.cells {
		runes := make([]rune, len(row))
		for x, cell := range row {
			runes[x] = rune(cell)
		}
		rows[y] = string(runes)
	}
	return rows
}

// Count returns the number of cells holding the given symbol
func (g *Grid) Count(s Symbol) int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == s {
				count++
			}
		}
	}
	return count
}
