package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/driver"
	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// game wires a session to the terminal and tracks run-level state
type game struct {
	config   utils.Config
	session  *driver.Session
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *utils.History
	out      io.Writer

	stagnantCount    int
	totalGenerations int
	lastFrameTime    time.Time
}

// loadConfig reads path, falling back to defaults when the file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	e, err := engine.New(config.Rows, config.Cols, config.AliveThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build engine")
	}

	opts := []driver.Option{driver.WithCellSize(config.CellSize)}
	if config.Seed != 0 {
		opts = append(opts, driver.WithSeed(uint64(config.Seed)))
	}

	g := &game{
		config:        config,
		session:       driver.NewSession(e, opts...),
		renderer:      model.NewTerminalRenderer(out),
		stats:         utils.NewStats(),
		history:       utils.NewHistory(config.HistorySize),
		out:           out,
		lastFrameTime: time.Now(),
	}
	if err := g.seedBoard(); err != nil {
		return nil, err
	}
	return g, nil
}

// seedBoard loads either a random board or a few well-known patterns
func (g *game) seedBoard() error {
	g.history.Reset()
	g.stagnantCount = 0

	if g.config.StartRandom {
		g.session.Randomize()
		return nil
	}

	grid, err := interestingPatterns(g.session.Engine())
	if err != nil {
		return errors.Wrap(err, "[seedBoard] failed to place patterns")
	}
	return g.session.Load(grid)
}

// interestingPatterns places gliders and blinkers on an empty board where they fit
func interestingPatterns(e *engine.Engine) (model.Grid, error) {
	var (
		rows, cols = e.Rows(), e.Cols()
		live       []model.Coordinate
	)

	addGlider := func(row, col int) {
		live = append(live,
			model.Coordinate{Row: row, Col: col + 1},
			model.Coordinate{Row: row + 1, Col: col + 2},
			model.Coordinate{Row: row + 2, Col: col},
			model.Coordinate{Row: row + 2, Col: col + 1},
			model.Coordinate{Row: row + 2, Col: col + 2},
		)
	}
	addBlinker := func(row, col int) {
		for i := range 3 {
			live = append(live, model.Coordinate{Row: row, Col: col + i})
		}
	}

	if rows >= 10 && cols >= 10 {
		addGlider(1, 1)
		if cols >= 20 && rows >= 15 {
			addGlider(1, cols-8)
		}

		addBlinker(rows/2, cols/4)
		if cols >= 30 {
			addBlinker(3*rows/4, 3*cols/4)
		}
	}

	alive := make(map[model.Coordinate]bool, len(live))
	for _, c := range live {
		alive[c] = true
	}
	return model.Build(rows, cols, func(row, col int) bool {
		return alive[model.Coordinate{Row: row, Col: col}]
	})
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	frame := g.session.Snapshot()
	fmt.Fprintf(g.out, "Session: %s\n", g.session.ID())
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d | Frame rate: %v\n",
		frame.Grid.Rows(), frame.Grid.Cols(), frame.Population, g.config.FrameRate)
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// onFrame is called by the session after each automatic step
func (g *game) onFrame(frame driver.Frame) error {
	g.totalGenerations++

	if err := g.renderer.Clear(); err != nil {
		fmt.Fprintln(g.out, "Error clearing terminal:", err)
	}

	density, status := g.updateGameState(frame)
	g.displayGameStatus(frame, density, status)
	if err := g.renderer.Display(frame.Grid); err != nil {
		return errors.Wrap(err, "[onFrame]")
	}

	// Check for max generations limit
	if g.config.MaxGenerations > 0 && g.totalGenerations >= g.config.MaxGenerations {
		fmt.Fprintf(g.out, "\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
		return driver.ErrHalted
	}

	shouldRestart, reason := g.checkRestartConditions(frame)
	if !shouldRestart {
		return nil
	}
	if !g.config.AutoRestart {
		fmt.Fprintf(g.out, "Stopping due to %s\n", reason)
		return driver.ErrHalted
	}

	fmt.Fprintf(g.out, "🔄 Restarting due to %s...\n", reason)
	return g.restartGame()
}

// updateGameState updates stats and stagnation tracking, returning density and a status label
func (g *game) updateGameState(frame driver.Frame) (float64, string) {
	cells := frame.Grid.Rows() * frame.Grid.Cols()
	density := float64(frame.Population) / float64(cells) * 100

	now := time.Now()
	g.stats.Update(g.totalGenerations, frame.Population, now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	if g.history.Observe(frame.Grid.Hash()) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	switch {
	case frame.Population == 0:
		return density, "Extinct"
	case g.stagnantCount > 0:
		return density, fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	default:
		return density, "Active"
	}
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(frame driver.Frame, density float64, status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		frame.Generation, frame.Population, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func (g *game) checkRestartConditions(frame driver.Frame) (bool, string) {
	if frame.Population == 0 {
		return true, "extinction"
	}
	if g.config.StagnationThreshold > 0 && g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the board and resumes stepping
func (g *game) restartGame() error {
	if err := g.seedBoard(); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	g.stats.Restarts++
	g.session.Start()

	fmt.Fprintf(g.out, "✨ New board loaded! Living cells: %d\n", g.session.Snapshot().Population)
	return nil
}

// displayFinalStats prints a summary when the run ends
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats for session %s: %d generations in %.1f seconds\n",
		g.session.ID(), g.totalGenerations, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population, %d restarts\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Restarts)
}
