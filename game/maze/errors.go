package maze

import (
	"errors"
	"fmt"
)

// Reasons reported by InvalidMazeError. They are shown to the user verbatim.
const (
	ReasonHeightOutOfRange = "height out of range"
	ReasonWidthOutOfRange  = "width out of range"
	ReasonNonRectangular   = "non-rectangular"
	ReasonInvalidCharacter = "invalid character"
	ReasonMultipleStarts   = "multiple starts"
	ReasonMissingStart     = "missing start"
	ReasonMultipleExits    = "multiple exits"
	ReasonMissingExit      = "missing exit"
	ReasonFileNotFound     = "file not found"
)

var (
	// ErrInvalidMaze matches every *InvalidMazeError via errors.Is
	ErrInvalidMaze = errors.New("invalid maze")
)

// InvalidMazeError describes why a maze failed to load.
// Row and Col are 1-based and zero when they do not apply.
type InvalidMazeError struct {
	Reason string
	Char   rune
	Path   string
	Row    int
	Col    int
	Got    int
}

func (e *InvalidMazeError) Error() string {
	switch e.Reason {
	case ReasonFileNotFound:
		return fmt.Sprintf("%s: %s", e.Reason, e.Path)
	case ReasonHeightOutOfRange:
		return fmt.Sprintf("%s: got %d rows, want %d to %d", e.Reason, e.Got, MinSize, MaxSize)
	case ReasonWidthOutOfRange:
		return fmt.Sprintf("%s: got %d columns, want %d to %d", e.Reason, e.Got, MinSize, MaxSize)
	case ReasonNonRectangular:
		return fmt.Sprintf("%s: row %d has %d columns", e.Reason, e.Row, e.Got)
	case ReasonInvalidCharacter:
		return fmt.Sprintf("%s %q at row %d, col %d", e.Reason, e.Char, e.Row, e.Col)
	case ReasonMultipleStarts, ReasonMultipleExits:
		return fmt.Sprintf("%s: second at row %d, col %d", e.Reason, e.Row, e.Col)
	default:
		return e.Reason
	}
}

// Is lets errors.Is(err, ErrInvalidMaze) match any InvalidMazeError
func (e *InvalidMazeError) Is(target error) bool {
	return target == ErrInvalidMaze
}

// ReasonOf returns the reason of an InvalidMazeError anywhere in err's chain,
// or an empty string.
func ReasonOf(err error) string {
	var invalid *InvalidMazeError
	if errors.As(err, &invalid) {
		return invalid.Reason
	}
	return ""
}
