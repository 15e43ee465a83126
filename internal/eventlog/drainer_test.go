package eventlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockedEventLog "github.com/rocketscienceinc/tictactoe-arena/mocks/eventlog"
)

var errSinkDown = errors.New("sink down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestDrainer_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("Hands pending entries to every sink", func(t *testing.T) {
		// Given: A queue with two entries and two sinks
		queue := newQueue(t)
		queue.Log("Player 0 placed X at (0,0)")
		queue.Log("Scheduler: Next turn -> Player 1")

		first := mockedEventLog.NewMockSink(t)
		second := mockedEventLog.NewMockSink(t)
		want := []string{"Player 0 placed X at (0,0)", "Scheduler: Next turn -> Player 1"}

		first.EXPECT().Write(mock.Anything, want).Return(nil).Once()
		second.EXPECT().Write(mock.Anything, want).Return(nil).Once()

		drainer := NewDrainer(discardLogger(), queue, time.Millisecond, first, second)

		// When
		err := drainer.Flush(ctx)

		// Then
		require.NoError(t, err)
		assert.Zero(t, queue.Pending())
	})

	t.Run("Empty queue does not touch sinks", func(t *testing.T) {
		// Given
		queue := newQueue(t)
		sink := mockedEventLog.NewMockSink(t)
		drainer := NewDrainer(discardLogger(), queue, time.Millisecond, sink)

		// When
		err := drainer.Flush(ctx)

		// Then: No Write expectation was set, so any call would fail the mock
		require.NoError(t, err)
	})

	t.Run("Failing sink does not stop the others and entries are consumed", func(t *testing.T) {
		// Given
		queue := newQueue(t)
		queue.Log("Game Draw!")

		broken := mockedEventLog.NewMockSink(t)
		healthy := mockedEventLog.NewMockSink(t)

		broken.EXPECT().Write(mock.Anything, []string{"Game Draw!"}).Return(errSinkDown).Once()
		healthy.EXPECT().Write(mock.Anything, []string{"Game Draw!"}).Return(nil).Once()

		drainer := NewDrainer(discardLogger(), queue, time.Millisecond, broken, healthy)

		// When
		err := drainer.Flush(ctx)

		// Then
		require.ErrorIs(t, err, errSinkDown)
		assert.Zero(t, queue.Pending())
	})
}

func TestDrainer_Run(t *testing.T) {
	t.Run("Final flush on cancellation writes everything to the file", func(t *testing.T) {
		// Given: A file sink and a drainer with an interval longer than the test
		path := filepath.Join(t.TempDir(), "game.log")
		sink, err := NewFileSink(path)
		require.NoError(t, err)

		queue := newQueue(t)
		drainer := NewDrainer(discardLogger(), queue, time.Hour, sink)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- drainer.Run(ctx)
		}()

		// When
		queue.Log("Player 1 placed Y at (1,1)")
		queue.Log("Player 1 WINS!")
		cancel()

		// Then
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("drainer did not stop")
		}
		require.NoError(t, drainer.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Player 1 placed Y at (1,1)\nPlayer 1 WINS!\n", string(content))
	})

	t.Run("Periodic drain empties the queue while running", func(t *testing.T) {
		// Given
		path := filepath.Join(t.TempDir(), "game.log")
		sink, err := NewFileSink(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = sink.Close() })

		queue := newQueue(t)
		drainer := NewDrainer(discardLogger(), queue, 5*time.Millisecond, sink)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			_ = drainer.Run(ctx)
		}()

		// When
		queue.Log("Scheduler: Next turn -> Player 2")

		// Then
		assert.Eventually(t, func() bool {
			return queue.Pending() == 0
		}, 2*time.Second, 5*time.Millisecond)
	})
}

func TestFileSink(t *testing.T) {
	t.Run("Appends to an existing file", func(t *testing.T) {
		// Given
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "game.log")
		require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

		sink, err := NewFileSink(path)
		require.NoError(t, err)

		// When
		require.NoError(t, sink.Write(ctx, []string{"Game Draw!"}))
		require.NoError(t, sink.Close())

		// Then
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "earlier run\nGame Draw!\n", string(content))
	})

	t.Run("Fails on an unwritable path", func(t *testing.T) {
		// When
		_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "game.log"))

		// Then
		require.Error(t, err)
	})
}
