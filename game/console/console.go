// Package console drives a game from a line-oriented reader and writer.
//
// Each line read is one command. The console prints the welcome text once,
// then prompts, applies and reports until the game is won or quit. End of
// input counts as quitting.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

// maxLineBytes bounds how much of one input line is kept. Longer lines are
// truncated, which still leaves them unrecognized.
const maxLineBytes = 1 << 10

// Console connects a GameService to an input and an output stream
type Console struct {
	game   service.GameService
	in     *bufio.Reader
	out    io.Writer
	logger logr.Logger
}

// Option configures a Console
type Option func(*Console)

// WithLogger sets the logger used for input errors
func WithLogger(logger logr.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New creates a console reading commands from in and writing to out
func New(game service.GameService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		game:   game,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays until the game ends, the input is exhausted or ctx is cancelled
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, c.game.Welcome())

	prompt := c.game.Messages().Prompt
	for !c.game.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, prompt)
		result, err := c.next(ctx)
		if err != nil {
			return err
		}

		c.print(result)
	}

	return nil
}

// next reads one line and applies it. EOF becomes a quit command.
func (c *Console) next(ctx context.Context) (*service.Result, error) {
	line, err := c.readLine()
	if err == nil {
		return c.game.Execute(ctx, line)
	}
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	c.logger.V(1).Info("input closed, quitting")
	fmt.Fprintln(c.out)
	return c.game.Apply(ctx, engine.Command{Kind: engine.QuitGame})
}

// readLine returns the next line without its LF or CRLF ending. Lines of any
// length are consumed in full but only the first maxLineBytes are kept.
func (c *Console) readLine() (string, error) {
	var line []byte
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			return "", err
		}
		if len(line) < maxLineBytes {
			line = append(line, chunk[:min(len(chunk), maxLineBytes-len(line))]...)
		}
		if !isPrefix {
			return string(line), nil
		}
	}
}

func (c *Console) print(result *service.Result) {
	fmt.Fprintln(c.out, result.Message)
	if result.Map != "" {
		fmt.Fprint(c.out, result.Map)
	}
}
