package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nstehr/dronecraft/agent"
	"github.com/nstehr/dronecraft/config"
	"github.com/nstehr/dronecraft/drone"
	"github.com/nstehr/dronecraft/ipc"
)

const banner = `
    ___                                     ______
   / _ \ ____ ___   ___  ___  ____ ____ _  / _/ /_
  / // // __// _ \ / _ \/ -_)/ __// __ '/ / _/ __/
 /____//_/   \___//_//_/\__/ \__//_/  \_,_/_/ \__/

Scripted drone controllers`

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults built in)")
	seed := flag.Uint64("seed", 0, "random seed; overrides the config file, 0 keeps the file's value")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	// stdout carries the engine bridge, so everything human-readable goes to stderr.
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Fprintln(os.Stderr, banner)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	slog.Info("starting dronecraft",
		"seed", cfg.Seed,
		"buildSteps", len(cfg.BuildOrder),
		"harvesterRadius", cfg.Harvester.WanderRadius,
		"soldierRadius", cfg.Soldier.WanderRadius,
		"patrolChance", cfg.Soldier.PatrolChance,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := drone.NewRand(cfg.Seed)
	tuning := cfg.Tuning()
	newMothership := func() (drone.Controller, error) {
		return drone.NewMothership(cfg.BuildOrder, drone.NewRand(rng.Uint64()), tuning)
	}

	conn := ipc.NewConnection(os.Stdin, os.Stdout, nil)
	a := agent.New(conn, newMothership)
	conn.RegisterHandler(ipc.TypeHello, a.HandleHello)
	conn.RegisterHandler(ipc.TypeTick, a.HandleTick)
	conn.RegisterHandler(ipc.TypeGameOver, a.HandleGameOver)

	done := make(chan error, 1)
	go func() {
		done <- conn.ReadLoop()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-done:
		if err != nil {
			slog.Error("engine bridge failed", "error", err)
			os.Exit(1)
		}
		slog.Info("engine bridge closed")
	}
}
