package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON or YAML config file")
		headless   = flag.Bool("headless", false, "run in the terminal instead of opening a window")
		plotPath   = flag.String("plot", "", "write a population plot here on exit (overrides plot_path)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[gol3d] ", log.LstdFlags|log.Lmicroseconds)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	} else if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *headless {
		config.Headless = true
	}
	if *plotPath != "" {
		config.PlotPath = *plotPath
	}

	g, err := initializeGame(config, logger)
	if err != nil {
		logger.Fatalf("initialize: %v", err)
	}
	displayGameInfo(config, g, logger)

	if config.Headless {
		err = runHeadless(context.Background(), g, config, logger)
	} else {
		err = runViewer(g, config, logger)
	}

	logger.Printf("final stats: %d generations in %.1f seconds, %.1f avg population",
		g.driver.Generation(), g.elapsed().Seconds(), g.stats.AveragePopulation)

	if config.PlotPath != "" && len(g.stats.History) > 0 {
		if perr := utils.SavePopulationPlot(g.stats, config.PlotPath); perr != nil {
			logger.Printf("population plot: %v", perr)
		} else {
			logger.Printf("population plot written to %s", config.PlotPath)
		}
	}

	if err != nil {
		logger.Fatalf("simulation halted: %v", err)
	}
}
