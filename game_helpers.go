package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifegrid/model"
	"github.com/sheikhrachel/go-lifegrid/utils"
)

// frame is one rendered generation handed from the simulation to the renderer
type frame struct {
	generation  int
	cells       model.Frame
	population  int
	fingerprint string
}

// initializeGame builds and seeds the board described by config
func initializeGame(config utils.Config) (model.Board, error) {
	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to resolve pattern")
	}

	board, err := model.NewBoard(model.Variant(config.Variant), pattern(config.Height, config.Width))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}
	return board, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, board model.Board) {
	fmt.Fprintf(w, "Variant: %s | Pattern: %s\n", config.Variant, config.Pattern)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, model.Population(board))
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// simulate publishes the current generation, then steps, until the configured
// number of generations has been shown or ctx is cancelled. Only this
// goroutine touches the board.
func simulate(ctx context.Context, config utils.Config, board model.Board, frames chan<- frame) error {
	defer close(frames)

	for {
		snapshot := model.Snapshot(board)
		f := frame{
			generation:  board.Generation(),
			cells:       snapshot,
			population:  model.Population(snapshot),
			fingerprint: model.Fingerprint(snapshot),
		}

		select {
		case frames <- f:
		case <-ctx.Done():
			return ctx.Err()
		}

		if config.Generations > 0 && board.Generation() >= config.Generations {
			return nil
		}

		board.Step()

		if config.FrameRate > 0 {
			select {
			case <-time.After(config.FrameRate):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// present renders frames as they arrive and keeps run statistics
func present(w io.Writer, config utils.Config, renderer *model.TerminalRenderer, stats *utils.Stats, frames <-chan frame) error {
	var (
		history   []string
		lastFrame = time.Now()
	)

	for f := range frames {
		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				utils.Logf("%v", err)
			}
		}

		now := time.Now()
		stats.Update(f.generation, f.population, now.Sub(lastFrame))
		lastFrame = now

		if config.ShowStats {
			displayGameStatus(w, f, statusOf(history, f), stats)
		}
		if err := renderer.Render(w, f.cells); err != nil {
			return errors.Wrap(err, "[present] failed to render frame")
		}
		fmt.Fprintln(w)

		history = recordHistory(history, f.fingerprint)
	}
	return nil
}

// recordHistory appends a fingerprint, keeping only the most recent two
func recordHistory(history []string, fingerprint string) []string {
	history = append(history, fingerprint)
	if len(history) > 2 {
		history = history[1:]
	}
	return history
}

// statusOf describes the frame relative to the previous two generations
func statusOf(history []string, f frame) string {
	switch {
	case f.population == 0:
		return "Extinct"
	case len(history) >= 1 && history[len(history)-1] == f.fingerprint:
		return "Still life"
	case len(history) >= 2 && history[len(history)-2] == f.fingerprint:
		return "Period 2"
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, f frame, status string, stats *utils.Stats) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Status: %s\n", f.generation, f.population, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}
