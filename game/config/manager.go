package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wricardo/mcp-training/mazegame/game/maze"
	"github.com/wricardo/mcp-training/mazegame/telemetry"
)

// MazeExt is the file extension of maze files in the maze directory
const MazeExt = ".txt"

var (
	ErrMazeDirNotFound = errors.New("maze directory not found")
)

// MazeInfo provides information about a maze file in the catalog
type MazeInfo struct {
	Filename string `json:"filename"`
	MazeID   string `json:"maze_id"` // The identifier to pass to LoadMaze
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// Manager handles maze loading and caching for a maze directory
type Manager struct {
	mazeDir string
	mazes   map[string]*maze.Grid
	mu      sync.RWMutex
}

// NewManager creates a new maze catalog rooted at mazeDir
func NewManager(mazeDir string) (*Manager, error) {
	info, err := os.Stat(mazeDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMazeDirNotFound, mazeDir)
	}

	return &Manager{
		mazeDir: mazeDir,
		mazes:   make(map[string]*maze.Grid),
	}, nil
}

// Dir returns the maze directory
func (m *Manager) Dir() string {
	return m.mazeDir
}

// LoadMaze loads a maze by name. The ".txt" extension is optional.
// Validation failures are returned unchanged as *maze.InvalidMazeError.
func (m *Manager) LoadMaze(ctx context.Context, name string) (*maze.Grid, error) {
	id := strings.TrimSuffix(name, MazeExt)

	_, span := telemetry.Tracer("config").Start(ctx, "maze.load")
	defer span.End()
	span.SetAttributes(attribute.String("maze.id", id))

	m.mu.RLock()
	// Check cache first
	grid, exists := m.cached(span, id)
	m.mu.RUnlock()
	if exists {
		return grid, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if grid, exists := m.cached(span, id); exists {
		return grid, nil
	}

	grid, err := maze.LoadFile(filepath.Join(m.mazeDir, id+MazeExt))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.width", grid.Width()),
		attribute.Int("maze.height", grid.Height()),
	)

	m.mazes[id] = grid
	return grid, nil
}

// cached returns the cached grid for id and marks the span on a hit.
// The caller must hold m.mu.
func (m *Manager) cached(span trace.Span, id string) (*maze.Grid, bool) {
	grid, exists := m.mazes[id]
	if exists {
		span.SetAttributes(attribute.Bool("maze.cached", true))
	}
	return grid, exists
}

// ListMazes returns information about every maze file in the directory,
// including the ones that fail validation.
func (m *Manager) ListMazes(ctx context.Context) ([]*MazeInfo, error) {
	entries, err := os.ReadDir(m.mazeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze directory: %w", err)
	}

	var mazes []*MazeInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MazeExt) {
			continue
		}

		info := &MazeInfo{
			Filename: entry.Name(),
			MazeID:   strings.TrimSuffix(entry.Name(), MazeExt),
		}

		grid, err := m.LoadMaze(ctx, info.MazeID)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.Valid = true
			info.Width = grid.Width()
			info.Height = grid.Height()
		}

		mazes = append(mazes, info)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].MazeID < mazes[j].MazeID
	})

	return mazes, nil
}

// RefreshCache drops all cached mazes so the next load rereads the files
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mazes = make(map[string]*maze.Grid)
}

// Open resolves a maze argument given on the command line. An existing
// file, or anything that looks like a path, is loaded directly. A bare name
// is looked up in mazeDir. If the catalog cannot be used the argument is
// treated as a path, so a missing maze always surfaces as
// maze.ReasonFileNotFound.
func Open(ctx context.Context, mazeDir, arg string) (*maze.Grid, error) {
	if looksLikePath(arg) {
		return maze.LoadFile(arg)
	}

	manager, err := NewManager(mazeDir)
	if err != nil {
		return maze.LoadFile(arg)
	}

	grid, err := manager.LoadMaze(ctx, arg)
	if maze.ReasonOf(err) == maze.ReasonFileNotFound {
		// Report the name the user typed rather than the catalog path
		return nil, &maze.InvalidMazeError{Reason: maze.ReasonFileNotFound, Path: arg}
	}
	return grid, err
}

// looksLikePath reports whether arg names a file rather than a catalog entry
func looksLikePath(arg string) bool {
	if _, err := os.Stat(arg); err == nil {
		return true
	}
	return strings.ContainsAny(arg, `/\`) || filepath.Ext(arg) != ""
}
