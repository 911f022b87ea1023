package maze

// Load validates maze lines and builds a Grid.
//
// Dimension checks run over all lines before any cell is inspected, so a
// maze that is both non-rectangular and contains bad symbols reports
// ReasonNonRectangular.
func Load(lines []string) (*Grid, error) {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width, err := checkDimensions(rows)
	if err != nil {
		return nil, err
	}

	return scanCells(rows, width)
}

// checkDimensions validates height, width and rectangularity, returning width
func checkDimensions(rows [][]rune) (int, error) {
	height := len(rows)
	if height < MinSize || height > MaxSize {
		return 0, &InvalidMazeError{Reason: ReasonHeightOutOfRange, Got: height}
	}

	width := len(rows[0])
	if width < MinSize || width > MaxSize {
		return 0, &InvalidMazeError{Reason: ReasonWidthOutOfRange, Got: width}
	}

	for i, row := range rows {
		if len(row) != width {
			return 0, &InvalidMazeError{Reason: ReasonNonRectangular, Row: i + 1, Got: len(row)}
		}
	}

	return width, nil
}

// scanCells checks every symbol and locates the unique start and exit
func scanCells(rows [][]rune, width int) (*Grid, error) {
	cells := make([][]Symbol, len(rows))
	var start, exit Position
	hasStart, hasExit := false, false

	for y, row := range rows {
		cells[y] = make([]Symbol, width)
		for x, char := range row {
			symbol := Symbol(char)
			if !symbol.Valid() {
				return nil, &InvalidMazeError{Reason: ReasonInvalidCharacter, Char: char, Row: y + 1, Col: x + 1}
			}
			cells[y][x] = symbol

			switch symbol {
			case Start:
				if hasStart {
					return nil, &InvalidMazeError{Reason: ReasonMultipleStarts, Row: y + 1, Col: x + 1}
				}
				hasStart = true
				start = Position{X: x, Y: y}
			case Exit:
				if hasExit {
					return nil, &InvalidMazeError{Reason: ReasonMultipleExits, Row: y + 1, Col: x + 1}
				}
				hasExit = true
				exit = Position{X: x, Y: y}
			}
		}
	}

	if !hasStart {
		return nil, &InvalidMazeError{Reason: ReasonMissingStart}
	}
	if !hasExit {
		return nil, &InvalidMazeError{Reason: ReasonMissingExit}
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
		start:  start,
		exit:   exit,
	}, nil
}
