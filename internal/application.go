package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-arena/internal/arena"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/eventlog"
	"github.com/rocketscienceinc/tictactoe-arena/internal/gamestate"
	"github.com/rocketscienceinc/tictactoe-arena/internal/scheduler"
	"github.com/rocketscienceinc/tictactoe-arena/internal/scores"
	"github.com/rocketscienceinc/tictactoe-arena/transport/rest"
)

// WorkerCommand - the subcommand a coordinator re-executes itself with for each player.
const WorkerCommand = "worker"

// RunApp - runs the coordinator until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config, configPath string) error {
	ctx, cancel := signalContext(logger.With("component", "app"))
	defer cancel()

	return Run(ctx, logger, conf, configPath)
}

// Run - creates the arena, starts the scheduler, the log drain and one worker
// per active player, and tears everything down once ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runID := uuid.NewString()
	logger = logger.With("run", runID)
	log := logger.With("component", "app")

	shared, err := newArena(conf)
	if err != nil {
		return fmt.Errorf("could not create shared region: %w", err)
	}

	exits := &reaper{state: shared.State}

	defer func() {
		exits.stop()
		if err = shared.Close(); err != nil {
			log.Error("could not unmap shared region", "error", err)
		}
		if err = shared.Unlink(); err != nil {
			log.Error("could not remove shared region", "error", err)
		}
	}()

	shared.Events.Logf("Run %s started", runID)

	repo, closeRepo, err := newScoreRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open score storage: %w", err)
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	store := scores.NewStore(logger, shared.Scores, repo)
	store.Load(ctx)

	sinks, err := newSinks(log, conf)
	if err != nil {
		return err
	}

	drainer := eventlog.NewDrainer(logger, shared.Events, conf.DrainInterval, sinks...)
	defer func() {
		if err = drainer.Close(); err != nil {
			log.Error("could not close event sinks", "error", err)
		}
	}()

	var background sync.WaitGroup

	background.Add(1)
	go func() {
		defer background.Done()
		if drainErr := drainer.Run(ctx); drainErr != nil {
			log.Error("event log drain failed", "error", drainErr)
		}
	}()

	background.Add(1)
	go func() {
		defer background.Done()
		scheduler.New(logger, shared.State, shared.Events, conf.SchedulerInterval).Run(ctx)
	}()

	if conf.HTTPPort != "" {
		background.Add(1)
		go func() {
			defer background.Done()
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			handler := rest.NewHandler(logger, shared.State, shared.Scores)
			if httpErr := rest.Start(ctx, conf.HTTPPort, handler); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
		}()
	}

	log.Info("Arena started", "mode", conf.Mode, "players", conf.Players, "region", shared.Name())

	var processes []*exec.Cmd
	switch conf.Mode {
	case config.ModeInProc:
		for _, player := range conf.Players {
			background.Add(1)
			go func(player int) {
				defer background.Done()
				if playErr := play(ctx, logger, conf, shared, player); playErr != nil {
					log.Error("worker failed", "player", player, "error", playErr)
					_ = shared.State.SetActive(player, false)
				}
			}(player)
		}
	default:
		processes, err = spawnWorkers(log, conf, configPath, shared.Name(), exits)
		if err != nil {
			stopWorkers(log, processes)
			cancel()
			background.Wait()
			return err
		}
	}

	<-ctx.Done()
	log.Info("Application context canceled, shutting down")

	saveErr := store.Save(context.WithoutCancel(ctx))
	if saveErr != nil {
		log.Error("could not save scores", "error", saveErr)
	}

	stopWorkers(log, processes)
	background.Wait()

	return saveErr
}

func newArena(conf *config.Config) (*arena.Arena, error) {
	if conf.Mode == config.ModeInProc {
		return arena.Anonymous(conf.Players)
	}

	return arena.Create(conf.ShmName, conf.Players)
}

func newSinks(log *slog.Logger, conf *config.Config) ([]eventlog.Sink, error) {
	file, err := eventlog.NewFileSink(conf.LogFile)
	if err != nil {
		return nil, fmt.Errorf("could not open event log: %w", err)
	}

	sinks := []eventlog.Sink{file}

	if conf.NATS.URL == "" {
		return sinks, nil
	}

	broadcast, err := eventlog.NewNATSSink(conf.NATS.URL, conf.NATS.Subject)
	if err != nil {
		log.Warn("event broadcast disabled", "url", conf.NATS.URL, "error", err)
		return sinks, nil
	}

	log.Info("Broadcasting events", "url", conf.NATS.URL, "subject", conf.NATS.Subject)

	return append(sinks, broadcast), nil
}

// reaper - takes the slot of an exited child out of the rotation until the
// coordinator starts unmapping the region.
type reaper struct {
	mu      sync.Mutex
	state   *gamestate.State
	stopped bool
}

func (that *reaper) deactivate(player int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.stopped {
		_ = that.state.SetActive(player, false)
	}
}

func (that *reaper) stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopped = true
}

// spawnWorkers - starts one child per active player. A child that exits is
// reaped in the background and its slot leaves the rotation.
func spawnWorkers(log *slog.Logger, conf *config.Config, configPath, region string, exits *reaper) ([]*exec.Cmd, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("could not locate executable: %w", err)
	}

	processes := make([]*exec.Cmd, 0, len(conf.Players))
	for _, player := range conf.Players {
		cmd := exec.Command(executable, WorkerCommand, "-config", configPath, "-player", strconv.Itoa(player))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Env = append(os.Environ(), "ARENA_SHM_NAME="+region)

		if err = cmd.Start(); err != nil {
			return processes, fmt.Errorf("could not start worker %d: %w", player, err)
		}

		log.Info("Worker started", "player", player, "pid", cmd.Process.Pid)
		processes = append(processes, cmd)

		go func(player int, cmd *exec.Cmd) {
			waitErr := cmd.Wait()
			log.Info("Worker exited", "player", player, "pid", cmd.Process.Pid, "status", cmd.ProcessState.String(), "error", waitErr)
			exits.deactivate(player)
		}(player, cmd)
	}

	return processes, nil
}

// stopWorkers - asks every child to stop and does not wait for it.
func stopWorkers(log *slog.Logger, processes []*exec.Cmd) {
	for _, cmd := range processes {
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
			log.Warn("could not signal worker", "pid", cmd.Process.Pid, "error", err)
		}
	}
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
