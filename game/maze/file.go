package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineBytes bounds a single scanned line; anything near it is far past MaxSize anyway
const maxLineBytes = 1 << 20

// LoadFile reads a maze file and validates it with Load.
// A missing file is reported as an InvalidMazeError with ReasonFileNotFound.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InvalidMazeError{Reason: ReasonFileNotFound, Path: path}
		}
		return nil, fmt.Errorf("failed to open maze file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader reads maze lines from r and validates them with Load
func LoadReader(r io.Reader) (*Grid, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Load(lines)
}

// ReadLines splits r into lines. LF and CRLF endings are accepted and a
// trailing newline does not produce an extra empty line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	return lines, nil
}
