// Command mazegame plays a text maze on the console.
//
// It supports these commands:
//  1. "play" (default) – loads a maze and plays it on stdin/stdout
//  2. "validate" – checks maze files and reports problems
//  3. "list" – lists the mazes in the maze directory
//  4. "mcp" – serves one game over MCP stdio for AI agents
//
// A maze argument is either a file path or the name of a maze in the maze
// directory (for example "reg_5x5").
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/mazegame/game/config"
	"github.com/wricardo/mcp-training/mazegame/game/console"
	"github.com/wricardo/mcp-training/mazegame/game/service"
	"github.com/wricardo/mcp-training/mazegame/logging"
	"github.com/wricardo/mcp-training/mazegame/telemetry"
	"github.com/wricardo/mcp-training/mazegame/transport/mcp"
	"github.com/wricardo/mcp-training/mazegame/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Maze Game"
)

// Process streams, replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var errMazeArgument = errors.New("expected exactly one maze argument")

// main loads .env, runs the command tree and converts errors to exit status 1.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Warning: Error loading .env file: %v\n", err)
	}

	os.Exit(run(context.Background(), os.Args))
}

func run(ctx context.Context, args []string) int {
	if err := newApp().Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.Command {
	play := &cli.Command{
		Name:      "play",
		Usage:     "play a maze on the console",
		ArgsUsage: "<maze>",
		Action:    playAction,
	}

	return &cli.Command{
		Name:      "mazegame",
		Usage:     "walk from S to E in a text maze",
		Version:   Version,
		ArgsUsage: "<maze>",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "maze-dir",
				Value:   "mazes",
				Usage:   "directory searched for maze names",
				Sources: cli.EnvVars("MAZE_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("MAZE_DEBUG"),
			},
		},
		Action: playAction,
		Commands: []*cli.Command{
			play,
			{
				Name:      "validate",
				Usage:     "check maze files and report problems",
				ArgsUsage: "<maze-file>...",
				Action:    validateAction,
			},
			{
				Name:   "list",
				Usage:  "list mazes in the maze directory",
				Action: listAction,
			},
			{
				Name:      "mcp",
				Usage:     "serve one game over MCP stdio",
				ArgsUsage: "<maze>",
				Action:    mcpAction,
			},
		},
	}
}

func newLogger(cmd *cli.Command) logr.Logger {
	return logging.New(stderr, cmd.Bool("debug"))
}

// startGame loads the maze named by the single argument and starts a game on it.
// The returned shutdown flushes telemetry and must always be called.
func startGame(ctx context.Context, cmd *cli.Command, logger logr.Logger) (*service.Game, func(), error) {
	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Error(err, "telemetry disabled")
		shutdownTelemetry = func(context.Context) error { return nil }
	}
	shutdown := func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error(err, "failed to flush telemetry")
		}
	}

	if cmd.Args().Len() != 1 {
		return nil, shutdown, fmt.Errorf("%w, usage: %s %s", errMazeArgument, cmd.Name, cmd.ArgsUsage)
	}
	arg := cmd.Args().First()

	grid, err := config.Open(ctx, cmd.String("maze-dir"), arg)
	if err != nil {
		return nil, shutdown, err
	}
	logger.V(1).Info("maze loaded", "maze", arg, "width", grid.Width(), "height", grid.Height())

	game, err := service.NewGame(arg, grid, service.WithLogger(logger))
	if err != nil {
		return nil, shutdown, err
	}
	return game, shutdown, nil
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)

	game, shutdown, err := startGame(ctx, cmd, logger)
	defer shutdown()
	if err != nil {
		return err
	}

	return console.New(game, stdin, stdout, console.WithLogger(logger)).Run(ctx)
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)

	game, shutdown, err := startGame(ctx, cmd, logger)
	defer shutdown()
	if err != nil {
		return err
	}

	return mcp.NewServer(game, Version, logger).ServeStdio()
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no maze files given, usage: %s %s", cmd.Name, cmd.ArgsUsage)
	}

	if !validate.Report(stdout, validate.Files(cmd.Args().Slice())) {
		return errors.New("some mazes are invalid")
	}
	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("maze-dir"))
	if err != nil {
		return err
	}

	mazes, err := manager.ListMazes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Available Mazes (%d):\n\n", len(mazes))
	for _, info := range mazes {
		if info.Valid {
			fmt.Fprintf(stdout, "• %s (%dx%d)\n", info.MazeID, info.Width, info.Height)
		} else {
			fmt.Fprintf(stdout, "• %s (invalid: %s)\n", info.MazeID, info.Error)
		}
	}
	return nil
}
