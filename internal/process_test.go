package application

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/arena"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/notify"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/scheduler"
	"github.com/rocketscienceinc/tictactoe-arena/internal/shm"
)

// TestMain - the coordinator re-executes the running binary with the worker
// subcommand, so the test binary has to be able to act as a worker too.
func TestMain(m *testing.M) {
	if len(os.Args) > 1 && os.Args[1] == WorkerCommand {
		os.Exit(runTestWorker(os.Args[2:]))
	}

	os.Exit(m.Run())
}

func runTestWorker(args []string) int {
	flags := flag.NewFlagSet(WorkerCommand, flag.ContinueOnError)
	configPath := flags.String("config", "", "path to config file")
	player := flags.Int("player", -1, "player slot to play")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err = RunWorker(slog.New(slog.NewJSONHandler(io.Discard, nil)), conf, *player); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// processConfig - writes a process mode config file and loads it back, so the
// coordinator and its children read the same settings.
func processConfig(t *testing.T) (*config.Config, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	body := fmt.Sprintf(`log-level: debug
mode: process
players: [0, 1, 2]
shm-name: %s
pipe-prefix: %s
log-file: %s
score-file: %s
score-backend: file
scheduler-interval: 20ms
worker-interval: 10ms
drain-interval: 5ms
`,
		"arena_test_"+uuid.NewString(),
		filepath.Join(dir, "player_pipe_"),
		filepath.Join(dir, "game.log"),
		filepath.Join(dir, "scores.txt"),
	)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	conf, err := config.Load(path)
	require.NoError(t, err)

	return conf, path
}

func pipesGone(conf *config.Config, players ...int) func() bool {
	return func() bool {
		for _, player := range players {
			if _, err := os.Stat(notify.Path(conf.PipePrefix, player)); !os.IsNotExist(err) {
				return false
			}
		}

		return true
	}
}

func TestRun_Process(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns worker processes")
	}

	// Given: A coordinator that re-executes itself for players 0, 1 and 2
	conf, path := processConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()

	// When
	err := Run(ctx, slog.New(slog.NewJSONHandler(io.Discard, nil)), conf, path)

	// Then: Every child attached to the region and moved
	require.NoError(t, err)

	content, err := os.ReadFile(conf.LogFile)
	require.NoError(t, err)
	for player := range 3 {
		assert.Contains(t, string(content), fmt.Sprintf("Player %d placed", player))
	}

	// Then: Wins counted by the children were saved by the coordinator
	records, err := repository.NewFileScoreRepository(conf.ScoreFile).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	total := 0
	for _, record := range records {
		assert.True(t, strings.HasPrefix(record.Name, "Player"), record.Name)
		total += record.Score
	}
	assert.Positive(t, total)

	// Then: The segment is gone at once, the channels once the children exit
	_, err = os.Stat(shm.Path(conf.ShmName))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Eventually(t, pipesGone(conf, 0, 1, 2), 5*time.Second, 10*time.Millisecond)
}

func TestSpawnWorkers_ExitedChildLeavesRotation(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns worker processes")
	}

	// Given: Three running children over a fresh region
	conf, path := processConfig(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	shared, err := arena.Create(conf.ShmName, conf.Players)
	require.NoError(t, err)

	exits := &reaper{state: shared.State}
	t.Cleanup(func() {
		exits.stop()
		_ = shared.Close()
		_ = shared.Unlink()
	})

	processes, err := spawnWorkers(logger, conf, path, shared.Name(), exits)
	require.NoError(t, err)
	require.Len(t, processes, 3)
	t.Cleanup(func() {
		stopWorkers(logger, processes)
		assert.Eventually(t, pipesGone(conf, 0, 2), 5*time.Second, 10*time.Millisecond)
	})

	require.Eventually(t, func() bool {
		records := shared.Scores.Records()
		return records[0].Name != "" && records[1].Name != "" && records[2].Name != ""
	}, 5*time.Second, 10*time.Millisecond)

	// When: Player 1's process dies
	require.NoError(t, processes[1].Process.Kill())

	// Then: Its slot leaves the active set and the others stay
	require.Eventually(t, func() bool {
		return !shared.State.IsActive(1)
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{0, 2}, shared.State.ActivePlayers())

	// Then: The scheduler no longer hands it the turn
	turns := scheduler.New(logger, shared.State, shared.Events, time.Hour)
	for range 6 {
		next, ok := turns.Tick()
		require.True(t, ok)
		assert.NotEqual(t, 1, next)
	}
}
