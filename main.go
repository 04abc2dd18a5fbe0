package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/utils"
)

const defaultConfigFile = "config.json"

// parseConfig layers defaults, the JSON config file, GOL_* environment variables
// and finally explicitly set flags
func parseConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	var (
		configPath string
		flags      = utils.DefaultConfig()
	)
	fs.StringVar(&configPath, "config", defaultConfigFile, "path to a JSON config file")
	fs.IntVar(&flags.Size, "s", flags.Size, "board side length")
	fs.IntVar(&flags.InitialCells, "n", flags.InitialCells, "number of initial living cells")
	fs.IntVar(&flags.MaxGenerations, "m", flags.MaxGenerations, "maximum number of generations")
	fs.DurationVar(&flags.FrameRate, "d", flags.FrameRate, "delay between generations")
	fs.BoolVar(&flags.UseParallel, "parallel", flags.UseParallel, "compute each generation with one worker per band of rows")
	fs.BoolVar(&flags.UseMemoryPool, "pool", flags.UseMemoryPool, "recycle generation buffers")
	fs.BoolVar(&flags.ClearScreen, "clear", flags.ClearScreen, "clear the terminal before each frame")
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, err
	}

	explicitConfig := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if explicitConfig || !errors.Is(err, os.ErrNotExist) {
			return utils.Config{}, err
		}
		config = utils.DefaultConfig()
	}

	if err = utils.LoadEnv(&config); err != nil {
		return utils.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			config.Size = flags.Size
		case "n":
			config.InitialCells = flags.InitialCells
		case "m":
			config.MaxGenerations = flags.MaxGenerations
		case "d":
			config.FrameRate = flags.FrameRate
		case "parallel":
			config.UseParallel = flags.UseParallel
		case "pool":
			config.UseMemoryPool = flags.UseMemoryPool
		case "clear":
			config.ClearScreen = flags.ClearScreen
		}
	})

	if err = config.Validate(); err != nil {
		return utils.Config{}, err
	}
	return config, nil
}

func main() {
	log.SetPrefix("[GOL] ")

	config, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}
