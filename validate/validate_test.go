package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

func writeMaze(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestFile_Valid(t *testing.T) {
	path := writeMaze(t, t.TempDir(), "small.txt",
		"#####",
		"#S  #",
		"# # #",
		"#  E#",
		"#####",
	)

	result := File(path)
	require.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Equal(t, "small.txt", result.File)
	assert.Empty(t, result.Warnings)
	assert.Contains(t, result.Info, "✓ Grid: 5x5")
	assert.Contains(t, result.Info, "✓ Connectivity: exit reachable in 4 moves")
}

func TestFile_Unreachable(t *testing.T) {
	path := writeMaze(t, t.TempDir(), "walled.txt",
		"#####",
		"#S# #",
		"### #",
		"#  E#",
		"#####",
	)

	result := File(path)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unreachable")
}

func TestFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   string
		reason string
	}{
		{
			name:   "missing exit",
			path:   writeMaze(t, dir, "noexit.txt", "#####", "#S  #", "#   #", "#   #", "#####"),
			reason: maze.ReasonMissingExit,
		},
		{
			name:   "too short",
			path:   writeMaze(t, dir, "short.txt", "#####", "#SE #", "#####"),
			reason: maze.ReasonHeightOutOfRange,
		},
		{
			name:   "missing file",
			path:   filepath.Join(dir, "nope.txt"),
			reason: maze.ReasonFileNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := File(test.path)
			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Contains(t, result.Errors[0], test.reason)
		})
	}
}

func TestShortestPath(t *testing.T) {
	grid, err := maze.Load([]string{
		"#######",
		"#S    #",
		"##### #",
		"#E    #",
		"#######",
	})
	require.NoError(t, err)

	steps, ok := ShortestPath(grid)
	assert.True(t, ok)
	assert.Equal(t, 10, steps)
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	good := writeMaze(t, dir, "good.txt", "#####", "#S  #", "# # #", "#  E#", "#####")
	bad := writeMaze(t, dir, "bad.txt", "#####", "#S  #", "# # #", "#  S#", "#####")

	var out bytes.Buffer
	assert.True(t, Report(&out, Files([]string{good})))
	assert.Contains(t, out.String(), "✅ VALID")
	assert.Contains(t, out.String(), "All mazes are valid")

	out.Reset()
	assert.False(t, Report(&out, Files([]string{good, bad})))
	assert.Contains(t, out.String(), "❌ INVALID")
	assert.Contains(t, out.String(), maze.ReasonMultipleStarts)
	assert.Contains(t, out.String(), "Some mazes have errors")
}
