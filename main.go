package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		fmt.Println("Failed to start:", err)
		os.Exit(1)
	}
	g.displayGameInfo()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		g.session.Start()
		return g.session.Run(ctx, config.FrameRate, g.onFrame)
	})

	if err := eg.Wait(); err != nil {
		fmt.Println("Simulation stopped with error:", err)
		g.displayFinalStats()
		os.Exit(1)
	}
	g.displayFinalStats()
}
