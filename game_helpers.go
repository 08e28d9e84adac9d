package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/scene"
	"github.com/sheikhrachel/go-gol3d/sim"
	"github.com/sheikhrachel/go-gol3d/utils"
	"github.com/sheikhrachel/go-gol3d/viewer"
)

var errShutdown = errors.New("shutdown requested")

// game bundles everything one run of the simulation needs
type game struct {
	lattice *model.Lattice
	driver  *sim.Driver
	rng     *rand.Rand
	stats   *utils.Stats
}

func (g *game) elapsed() time.Duration {
	return time.Since(g.stats.StartTime)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *log.Logger) (*game, error) {
	lattice, err := model.NewLattice(config.Width, config.Height, config.Depth)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	var pool *model.GenerationPool
	if config.UseMemoryPool {
		pool = model.NewGenerationPool()
	}

	g := &game{
		lattice: lattice,
		driver:  sim.NewDriver(lattice, pool, logger),
		rng:     rand.New(rand.NewSource(config.Seed)),
		stats:   utils.NewStats(),
	}
	if err = lattice.ResetWithPattern(config.Pattern, g.rng, config.RandomDensity); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	return g, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game, logger *log.Logger) {
	logger.Printf("Features: Memory Pool: %v, Auto Restart: %v, Headless: %v",
		config.UseMemoryPool, config.AutoRestart, config.Headless)
	logger.Printf("Lattice: %dx%dx%d | Pattern: %s | Initial living cells: %d",
		g.lattice.GetWidth(), g.lattice.GetHeight(), g.lattice.GetDepth(), config.Pattern, g.lattice.CountAlive())
}

// updateGameState updates the game state and returns status information
func updateGameState(g *game, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.lattice.CountAlive()
	density := float64(livingCells) / float64(g.lattice.Len()) * 100

	// Update performance stats
	g.stats.Update(g.driver.Generation(), livingCells, time.Since(lastFrameTime))

	// Compare against earlier generations before recording this one
	isStagnant := g.lattice.IsStagnant()
	g.lattice.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.2f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.TotalBirths, stats.TotalDeaths,
		time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the lattice in place so listeners see every change
func restartGame(g *game, config utils.Config, logger *log.Logger) error {
	if err := g.lattice.ResetWithPattern(config.Pattern, g.rng, config.RandomDensity); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	logger.Printf("new pattern loaded, living cells: %d", g.lattice.CountAlive())
	return nil
}

// runViewer opens the interactive window and blocks until it closes
func runViewer(g *game, config utils.Config, logger *log.Logger) error {
	sc := scene.New(g.lattice)

	lastFrame := time.Now()
	opts := viewer.Options{
		Title:          fmt.Sprintf("gol3d %dx%dx%d", config.Width, config.Height, config.Depth),
		Width:          config.WindowWidth,
		Height:         config.WindowHeight,
		MaxGenerations: config.MaxGenerations,
		OnStep: func(res sim.StepResult) {
			g.stats.Update(res.Generation, res.Population, time.Since(lastFrame))
			g.stats.RecordTransitions(res.Births, res.Deaths)
			lastFrame = time.Now()
		},
		Reseed: func() error {
			return restartGame(g, config, logger)
		},
	}
	if config.FrameRate > 0 {
		opts.TPS = int(time.Second / config.FrameRate)
	}

	return viewer.Run(viewer.New(g.driver, sc, logger, opts))
}

// runHeadless runs the frame loop in the terminal until interrupted,
// the generation limit is reached, or a step fails
func runHeadless(ctx context.Context, g *game, config utils.Config, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			logger.Printf("received %s, shutting down gracefully", sig)
			return errShutdown
		case <-ctx.Done():
			return nil
		}
	})

	eg.Go(func() error {
		defer cancel()
		return runFrames(ctx, g, config, logger, &model.TerminalRenderer{})
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errShutdown) {
		return err
	}
	return nil
}

// runFrames is the headless main loop: one generation per frame
func runFrames(ctx context.Context, g *game, config utils.Config, logger *log.Logger, renderer *model.TerminalRenderer) error {
	var tick <-chan time.Time
	if config.FrameRate > 0 {
		ticker := time.NewTicker(config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		renderer.Clear()

		generation := g.driver.Generation()
		livingCells, density, status, isStagnant := updateGameState(g, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, g.stats, lastRestartGen)
		renderer.Display(g.lattice)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			logger.Printf("reached maximum generations limit (%d)", config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)
		if shouldRestart && config.AutoRestart {
			logger.Printf("restarting due to %s", restartReason)
			if err := restartGame(g, config, logger); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && config.InjectionCount > 0 &&
			(config.StagnationThreshold == 0 || stagnantCount < config.StagnationThreshold) {
			// Inject some life to try to break the stagnation
			g.lattice.InjectRandomLife(g.rng, config.InjectionCount)
		}

		res, err := g.driver.Step()
		if err != nil {
			return errors.Wrap(err, "[runFrames]")
		}
		g.stats.RecordTransitions(res.Births, res.Deaths)
	}
}
