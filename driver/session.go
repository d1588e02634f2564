// Package driver owns the current generation on behalf of an interactive
// front end and advances it on a fixed cadence while running.
package driver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/model"
)

// DefaultCellSize is the on-screen edge length of one cell in pixels.
const DefaultCellSize = 10

// ErrHalted may be returned from a FrameFunc to end Run without reporting a failure.
var ErrHalted = errors.New("session halted")

// Frame is what a front end needs to draw one generation.
type Frame struct {
	Grid       model.Grid
	Generation int
	Population int
	Running    bool
}

// FrameFunc is called by Run after every automatic step.
type FrameFunc func(Frame) error

// Session holds the current grid and the running flag. All methods are safe
// for concurrent use, so input handlers may call them while Run is ticking.
type Session struct {
	id       uuid.UUID
	engine   *engine.Engine
	random   engine.RandomSource
	cellSize int

	mu         sync.Mutex
	grid       model.Grid
	generation int
	running    bool
}

// Option configures a Session
type Option func(*Session)

// WithRandomSource replaces the seeded default random source.
func WithRandomSource(src engine.RandomSource) Option {
	return func(s *Session) { s.random = src }
}

// WithSeed seeds the default random source.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.random = rand.New(rand.NewSource(seed)) }
}

// WithCellSize sets the pixel size used by Click.
func WithCellSize(px int) Option {
	return func(s *Session) {
		if px > 0 {
			s.cellSize = px
		}
	}
}

// NewSession returns a stopped session holding an empty grid.
func NewSession(e *engine.Engine, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		engine:   e,
		cellSize: DefaultCellSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.random == nil {
		s.random = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	s.grid = e.CreateEmpty()
	return s
}

// ID identifies the session in operator output
func (s *Session) ID() uuid.UUID { return s.id }

// Engine returns the engine the session steps with
func (s *Session) Engine() *engine.Engine { return s.engine }

// Snapshot returns the current generation. The grid is immutable and stays
// valid after later steps.
func (s *Session) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Session) frameLocked() Frame {
	return Frame{
		Grid:       s.grid,
		Generation: s.generation,
		Population: s.grid.CountLivingCells(),
		Running:    s.running,
	}
}

// Running reports whether Run is currently advancing the grid
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start lets Run advance the grid on each tick
func (s *Session) Start() { s.setRunning(true) }

// Stop pauses automatic stepping; Step still works
func (s *Session) Stop() { s.setRunning(false) }

// ToggleRunning flips between started and stopped and returns the new state.
func (s *Session) ToggleRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
	return s.running
}

func (s *Session) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

// Step advances exactly one generation whether or not the session is running.
func (s *Session) Step() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stepLocked(); err != nil {
		return s.frameLocked(), err
	}
	return s.frameLocked(), nil
}

func (s *Session) stepLocked() error {
	next, err := s.engine.Step(s.grid)
	if err != nil {
		return errors.Wrapf(err, "[Session.Step] generation %d", s.generation)
	}
	s.grid = next
	s.generation++
	return nil
}

// Reset stops the session and clears the grid.
func (s *Session) Reset() {
	s.replace(s.engine.CreateEmpty())
}

// Randomize stops the session and fills the grid from the random source.
func (s *Session) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(s.engine.CreateRandom(s.random))
}

// Load stops the session and installs g as generation zero. g must match the
// engine's dimensions.
func (s *Session) Load(g model.Grid) error {
	if !g.HasShape(s.engine.Rows(), s.engine.Cols()) {
		return errors.Wrapf(model.ErrInvalidDimensions,
			"[Session.Load] got %dx%d, want %dx%d", g.Rows(), g.Cols(), s.engine.Rows(), s.engine.Cols())
	}
	s.replace(g)
	return nil
}

func (s *Session) replace(g model.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(g)
}

func (s *Session) replaceLocked(g model.Grid) {
	s.running = false
	s.grid = g
	s.generation = 0
}

// ToggleCell flips one cell. Coordinates outside the grid are ignored.
func (s *Session) ToggleCell(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.engine.Toggle(s.grid, row, col)
	if err != nil {
		return errors.Wrap(err, "[Session.ToggleCell]")
	}
	s.grid = next
	return nil
}

// CellAt maps a pixel offset from the grid's top-left corner to a cell. ok is
// false when the pixel lies outside the grid.
func (s *Session) CellAt(x, y int) (c model.Coordinate, ok bool) {
	if x < 0 || y < 0 {
		return model.Coordinate{}, false
	}
	c = model.Coordinate{Row: y / s.cellSize, Col: x / s.cellSize}
	if c.Row >= s.engine.Rows() || c.Col >= s.engine.Cols() {
		return model.Coordinate{}, false
	}
	return c, true
}

// Click toggles the cell under pixel (x, y) and reports whether one was hit.
func (s *Session) Click(x, y int) (bool, error) {
	c, ok := s.CellAt(x, y)
	if !ok {
		return false, nil
	}
	if err := s.ToggleCell(c.Row, c.Col); err != nil {
		return false, err
	}
	return true, nil
}

// Run steps the grid once per interval while the session is running and hands
// each new generation to onFrame. Ticks that arrive while stopped are skipped.
// Run returns nil when ctx is cancelled or onFrame returns ErrHalted, and the
// first other error otherwise.
func (s *Session) Run(ctx context.Context, interval time.Duration, onFrame FrameFunc) error {
	if interval <= 0 {
		return errors.Errorf("[Session.Run] interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frame, stepped, err := s.tick()
		if err != nil {
			return err
		}
		if !stepped || onFrame == nil {
			continue
		}
		if err := onFrame(frame); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}
			return err
		}
	}
}

func (s *Session) tick() (Frame, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return Frame{}, false, nil
	}
	if err := s.stepLocked(); err != nil {
		return Frame{}, false, err
	}
	return s.frameLocked(), true, nil
}
