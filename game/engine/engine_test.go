package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
)

func newTestSession(t *testing.T, lines ...string) *Session {
	t.Helper()
	if len(lines) == 0 {
		lines = []string{
			"#####",
			"#S  #",
			"# # #",
			"#  E#",
			"#####",
		}
	}

	grid, err := maze.Load(lines)
	require.NoError(t, err)

	sess, err := NewSession(grid)
	require.NoError(t, err)
	return sess
}

func parseAll(inputs ...string) []Command {
	cmds := make([]Command, len(inputs))
	for i, in := range inputs {
		cmds[i] = ParseCommand(in)
	}
	return cmds
}

func TestNewSession(t *testing.T) {
	sess := newTestSession(t)

	assert.Equal(t, Active, sess.State())
	assert.Equal(t, maze.Position{X: 1, Y: 1}, sess.Position())
	assert.False(t, sess.IsOver())
	assert.Empty(t, sess.History())
	assert.Nil(t, sess.LastMove())

	_, err := NewSession(nil)
	assert.ErrorIs(t, err, ErrNilGrid)
}

func TestApply_DirectionMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected maze.Position
	}{
		{"w", maze.Position{X: 2, Y: 1}},
		{"s", maze.Position{X: 2, Y: 3}},
		{"a", maze.Position{X: 1, Y: 2}},
		{"d", maze.Position{X: 3, Y: 2}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			sess := newTestSession(t,
				"#####",
				"#   #",
				"# S #",
				"#   #",
				"###E#",
			)

			outcome, err := sess.Apply(ParseCommand(test.input))
			require.NoError(t, err)

			assert.Equal(t, SignalMoved, outcome.Signal)
			assert.Equal(t, test.expected, outcome.To)
			assert.Equal(t, test.expected, sess.Position())
			assert.Equal(t, maze.Position{X: 2, Y: 2}, outcome.From)
			require.NotNil(t, outcome.Target)
			assert.Equal(t, test.expected, *outcome.Target)
			assert.Equal(t, Active, outcome.State)
		})
	}
}

func TestApply_Blocked(t *testing.T) {
	walled := []string{
		"#####",
		"#S  #",
		"# # #",
		"#  E#",
		"#####",
	}
	edge := []string{
		"S   #",
		"    #",
		"# # #",
		"#  E#",
		"#####",
	}

	tests := []struct {
		name   string
		layout []string
		input  string
	}{
		{"wall above", walled, "w"},
		{"wall left", walled, "a"},
		{"off grid above", edge, "w"},
		{"off grid left", edge, "a"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sess := newTestSession(t, test.layout...)
			start := sess.Position()

			outcome, err := sess.Apply(ParseCommand(test.input))
			require.NoError(t, err)

			assert.Equal(t, SignalBlocked, outcome.Signal)
			assert.Equal(t, start, sess.Position())
			assert.Equal(t, start, outcome.To)
			assert.Equal(t, Active, sess.State())

			last := sess.LastMove()
			require.NotNil(t, last)
			assert.False(t, last.Success)
		})
	}
}

func TestApply_Scenario5x5(t *testing.T) {
	sess := newTestSession(t)

	outcomes, err := sess.ApplyAll(parseAll("d", "d", "s", "s", "d"))
	require.NoError(t, err)

	// The fourth command lands on the exit, so the fifth is never applied
	require.Len(t, outcomes, 4)
	for _, o := range outcomes {
		assert.Equal(t, SignalMoved, o.Signal)
	}
	assert.True(t, outcomes[3].Won())
	assert.Equal(t, Won, sess.State())
	assert.Equal(t, sess.Grid().Exit(), sess.Position())

	_, err = sess.Apply(ParseCommand("d"))
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestApply_WonExactlyOnce(t *testing.T) {
	sess := newTestSession(t)

	inputs := []string{"w", "a", "s", "w", "m", "x", "d", "d", "d", "s", "s"}
	wins := 0
	for _, in := range inputs {
		outcome, err := sess.Apply(ParseCommand(in))
		require.NoError(t, err)
		if outcome.Won() {
			wins++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, Won, sess.State())
	assert.True(t, sess.IsOver())
}

func TestApply_Quit(t *testing.T) {
	sess := newTestSession(t)

	outcome, err := sess.Apply(ParseCommand("Q"))
	require.NoError(t, err)
	assert.Equal(t, SignalQuit, outcome.Signal)
	assert.Equal(t, Quit, outcome.State)
	assert.True(t, sess.IsOver())

	_, err = sess.Apply(ParseCommand("m"))
	assert.ErrorIs(t, err, ErrSessionClosed)

	outcomes, err := sess.ApplyAll(parseAll("d"))
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Empty(t, outcomes)
}

func TestApply_ShowMapDoesNotMutate(t *testing.T) {
	sess := newTestSession(t)
	rows := sess.Grid().Rows()
	_, err := sess.Apply(ParseCommand("d"))
	require.NoError(t, err)
	pos := sess.Position()

	first, err := sess.Apply(ParseCommand("m"))
	require.NoError(t, err)
	firstMap := sess.Render()

	second, err := sess.Apply(ParseCommand("M"))
	require.NoError(t, err)
	secondMap := sess.Render()

	assert.Equal(t, SignalShowMap, first.Signal)
	assert.Equal(t, SignalShowMap, second.Signal)
	assert.Nil(t, first.Target)
	assert.Equal(t, firstMap, secondMap)
	assert.Equal(t, "#####\n#SX #\n# # #\n#  E#\n#####\n", firstMap)
	assert.Equal(t, pos, sess.Position())
	assert.Equal(t, rows, sess.Grid().Rows())
	assert.Len(t, sess.History(), 1)
}

func TestApply_Unrecognized(t *testing.T) {
	sess := newTestSession(t)

	for _, in := range []string{"", "x", "up", "ww", "?"} {
		outcome, err := sess.Apply(ParseCommand(in))
		require.NoError(t, err)

		assert.Equal(t, SignalInvalidInput, outcome.Signal)
		assert.Equal(t, Unrecognized, outcome.Command.Kind)
		assert.Equal(t, in, outcome.Command.Raw)
		assert.Equal(t, Active, outcome.State)
	}

	assert.Equal(t, maze.Position{X: 1, Y: 1}, sess.Position())
	assert.Empty(t, sess.History())
}

func TestPossibleMoves(t *testing.T) {
	sess := newTestSession(t)

	assert.Equal(t, []Direction{Down, Right}, sess.PossibleMoves())
	assert.True(t, sess.CanMove(Right))
	assert.False(t, sess.CanMove(Up))
	assert.False(t, sess.CanMove(Direction("sideways")))

	_, err := sess.Apply(ParseCommand("q"))
	require.NoError(t, err)
	assert.Empty(t, sess.PossibleMoves())
}

func TestHistory(t *testing.T) {
	sess := newTestSession(t)

	_, err := sess.ApplyAll(parseAll("d", "w", "d"))
	require.NoError(t, err)

	history := sess.History()
	require.Len(t, history, 3)
	assert.Equal(t, MoveHistoryEntry{Direction: Right, From: maze.Position{X: 1, Y: 1}, To: maze.Position{X: 2, Y: 1}, Success: true, MoveNumber: 1}, history[0])
	assert.Equal(t, MoveHistoryEntry{Direction: Up, From: maze.Position{X: 2, Y: 1}, To: maze.Position{X: 2, Y: 1}, Success: false, MoveNumber: 2}, history[1])
	assert.Equal(t, 3, sess.LastMove().MoveNumber)

	history[0].Success = false
	assert.True(t, sess.History()[0].Success, "History must return a copy")
}
