package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifegrid/model"
	"github.com/sheikhrachel/go-lifegrid/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		utils.Logf("Using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	if err := run(config); err != nil {
		utils.Logf("%+v", err)
		os.Exit(1)
	}
}

// run drives one simulation until it finishes or is interrupted
func run(config utils.Config) error {
	board, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(os.Stdout, config, board)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame)
		renderer  = &model.TerminalRenderer{}
		stats     = utils.NewStats()
	)

	eg.Go(func() error {
		return simulate(egCtx, config, board, frames)
	})
	eg.Go(func() error {
		return present(os.Stdout, config, renderer, stats, frames)
	})

	err = eg.Wait()
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nShutting down gracefully...")
		err = nil
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds | %.1f avg population\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.AveragePopulation)
	return err
}
