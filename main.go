package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-arena/internal"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
)

// main - is the entry point of the application. Without arguments it runs the
// coordinator; `worker -player N` runs one player against an existing arena.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if len(args) > 0 && args[0] == app.WorkerCommand {
		runWorker(args[1:])
		return
	}

	runCoordinator(args)
}

func runCoordinator(args []string) {
	flags := flag.NewFlagSet("tictactoe-arena", flag.ExitOnError)
	configPath := flags.String("config", defaultConfigPath(), "path to config file")
	_ = flags.Parse(args)

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, *configPath); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func runWorker(args []string) {
	flags := flag.NewFlagSet(app.WorkerCommand, flag.ExitOnError)
	configPath := flags.String("config", defaultConfigPath(), "path to config file")
	player := flags.Int("player", -1, "player slot to play")
	_ = flags.Parse(args)

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if err := app.RunWorker(logger, conf, *player); err != nil {
		panic(fmt.Errorf("worker %d failed: %w", *player, err))
	}
}

// default config location.
func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
