package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/telemetry"
)

var (
	ErrNoMoves      = errors.New("no moves provided")
	ErrTooManyMoves = fmt.Errorf("too many moves, limit is %d", MaxBulkMoves)
)

// Game runs one maze session. It is not safe for concurrent use; callers
// that share a Game across goroutines must serialize access.
type Game struct {
	id        string
	mazeName  string
	session   *engine.Session
	messages  Messages
	logger    logr.Logger
	tracer    trace.Tracer
	createdAt time.Time
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithMessages replaces the player-facing messages
func WithMessages(messages Messages) Option {
	return func(g *Game) {
		g.messages = messages
	}
}

// WithTracer sets the tracer used for command spans
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Game) {
		g.tracer = tracer
	}
}

// NewGame starts a new game on grid
func NewGame(mazeName string, grid *maze.Grid, opts ...Option) (*Game, error) {
	session, err := engine.NewSession(grid)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	g := &Game{
		id:        uuid.New().String(),
		mazeName:  mazeName,
		session:   session,
		messages:  DefaultMessages(),
		logger:    logr.Discard(),
		tracer:    telemetry.Tracer("service"),
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.logger = g.logger.WithValues("game", g.id)
	g.logger.Info("game started",
		"maze", mazeName,
		"width", grid.Width(),
		"height", grid.Height(),
		"start", fmt.Sprintf("(%d,%d)", grid.Start().X, grid.Start().Y),
	)

	return g, nil
}

// ID returns the unique game identifier
func (g *Game) ID() string {
	return g.id
}

// MazeName returns the name the maze was loaded under
func (g *Game) MazeName() string {
	return g.mazeName
}

// Grid returns the maze being played
func (g *Game) Grid() *maze.Grid {
	return g.session.Grid()
}

// Messages returns the player-facing messages
func (g *Game) Messages() Messages {
	return g.messages
}

// Welcome returns the greeting shown before the first command
func (g *Game) Welcome() string {
	return g.messages.Welcome + "\n" + g.messages.Usage
}

// IsOver returns whether the game was won or quit
func (g *Game) IsOver() bool {
	return g.session.IsOver()
}

// History returns the move history
func (g *Game) History() []engine.MoveHistoryEntry {
	return g.session.History()
}

// Execute parses raw player input and applies it
func (g *Game) Execute(ctx context.Context, input string) (*Result, error) {
	return g.Apply(ctx, engine.ParseCommand(input))
}

// Apply runs one command on the session
func (g *Game) Apply(ctx context.Context, cmd engine.Command) (*Result, error) {
	_, span := g.tracer.Start(ctx, "game.command", trace.WithAttributes(
		attribute.String("game.id", g.id),
		attribute.String("command.kind", cmd.Kind.String()),
	))
	defer span.End()

	outcome, err := g.session.Apply(cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Error(err, "command rejected", "command", cmd.Kind.String(), "state", g.session.State().String())
		return nil, fmt.Errorf("failed to apply %s: %w", cmd.Kind, err)
	}

	span.SetAttributes(
		attribute.String("command.signal", string(outcome.Signal)),
		attribute.String("game.state", outcome.State.String()),
		attribute.Int("position.x", outcome.To.X),
		attribute.Int("position.y", outcome.To.Y),
	)

	g.logOutcome(outcome)
	return g.describe(outcome), nil
}

// BulkMove executes moves in sequence, stopping when the game ends
func (g *Game) BulkMove(ctx context.Context, moves []engine.Direction) (*BulkMoveResult, error) {
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	if len(moves) > MaxBulkMoves {
		return nil, ErrTooManyMoves
	}

	ctx, span := g.tracer.Start(ctx, "game.bulk_move", trace.WithAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("moves.requested", len(moves)),
	))
	defer span.End()

	result := &BulkMoveResult{RequestedMoves: len(moves)}
	for i, dir := range moves {
		cmd := engine.MoveCommand(dir)
		if !cmd.IsMove() {
			return nil, fmt.Errorf("move %d: unknown direction %q", i+1, dir)
		}
	}

	for i, dir := range moves {
		res, err := g.Apply(ctx, engine.MoveCommand(dir))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		result.Results = append(result.Results, res)
		result.MovesExecuted++

		if res.GameOver {
			if i < len(moves)-1 {
				result.StoppedReason = fmt.Sprintf("game ended (%s) on move %d", res.Outcome.State, i+1)
			}
			break
		}
	}

	span.SetAttributes(attribute.Int("moves.executed", result.MovesExecuted))
	result.GameState = g.State()
	return result, nil
}

// State returns a snapshot of the game
func (g *Game) State() *GameState {
	grid := g.session.Grid()
	state := g.session.State()

	return &GameState{
		ID:            g.id,
		MazeName:      g.mazeName,
		State:         state.String(),
		Position:      g.session.Position(),
		Width:         grid.Width(),
		Height:        grid.Height(),
		PossibleMoves: g.session.PossibleMoves(),
		TotalMoves:    len(g.session.History()),
		GameOver:      state.Terminal(),
		Victory:       state == engine.Won,
		Map:           g.session.Render(),
	}
}

// describe turns an outcome into the text shown to the player
func (g *Game) describe(outcome engine.Outcome) *Result {
	result := &Result{
		Outcome:  outcome,
		GameOver: outcome.State.Terminal(),
	}

	switch outcome.Signal {
	case engine.SignalMoved:
		result.Message = g.messages.Moved
	case engine.SignalBlocked:
		result.Message = g.messages.Blocked
	case engine.SignalShowMap:
		result.Message = g.messages.MapHeader
		result.Map = g.session.Render()
	case engine.SignalQuit:
		result.Message = g.messages.Goodbye
	default:
		result.Message = g.messages.InvalidInput + " " + g.messages.Usage
	}

	if outcome.Won() {
		result.Message += "\n" + g.messages.Victory
	}

	return result
}

// logOutcome records the outcome at a level matching its importance
func (g *Game) logOutcome(outcome engine.Outcome) {
	g.logger.V(1).Info("command applied",
		"command", outcome.Command.Kind.String(),
		"signal", string(outcome.Signal),
		"x", outcome.To.X,
		"y", outcome.To.Y,
	)

	switch outcome.State {
	case engine.Won:
		g.logger.Info("maze solved",
			"moves", len(g.session.History()),
			"elapsed", time.Since(g.createdAt).Round(time.Millisecond).String(),
		)
	case engine.Quit:
		g.logger.Info("player quit", "moves", len(g.session.History()))
	}
}

var _ GameService = (*Game)(nil)
