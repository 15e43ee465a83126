package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	mockedWorker "github.com/rocketscienceinc/tictactoe-arena/mocks/worker"
)

var (
	errPipeBroken = errors.New("pipe broken")
	errScoreLost  = errors.New("score lost")
)

type mocks struct {
	state    *mockedWorker.MockgameStateDep
	events   *mockedWorker.MockeventLogDep
	scores   *mockedWorker.MockscoreBoardDep
	notifier *mockedWorker.MocknotifierDep
}

func newMocked(t *testing.T, player int) (*Worker, mocks) {
	t.Helper()

	m := mocks{
		state:    mockedWorker.NewMockgameStateDep(t),
		events:   mockedWorker.NewMockeventLogDep(t),
		scores:   mockedWorker.NewMockscoreBoardDep(t),
		notifier: mockedWorker.NewMocknotifierDep(t),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, player, m.state, m.events, m.scores, m.notifier, time.Millisecond), m
}

func TestWorker_Tick(t *testing.T) {
	t.Run("Does nothing when it is not the player's turn", func(t *testing.T) {
		// Given: The state refuses the move
		worker, m := newMocked(t, 1)
		m.state.EXPECT().PlayTurn(1).Return(entity.TurnResult{}, apperror.ErrNotYourTurn).Once()

		// When
		_, err := worker.Tick()

		// Then: Nothing is logged or sent
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Reports a committed move to the channel and the event log", func(t *testing.T) {
		// Given
		worker, m := newMocked(t, 0)
		result := entity.TurnResult{Player: 0, Symbol: 'X', Cell: entity.Cell{Row: 0, Col: 1}, Outcome: entity.OutcomeContinue, Epoch: 4}

		m.state.EXPECT().PlayTurn(0).Return(result, nil).Once()
		m.notifier.EXPECT().Send("Player 0 placed X at (0,1)").Return(nil).Once()
		m.events.EXPECT().Log("Player 0 placed X at (0,1)").Return().Once()

		// When
		got, err := worker.Tick()

		// Then
		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("Win is announced and counted", func(t *testing.T) {
		// Given
		worker, m := newMocked(t, 1)
		result := entity.TurnResult{Player: 1, Symbol: 'Y', Cell: entity.Cell{Row: 2, Col: 1}, Outcome: entity.OutcomeWin, Epoch: 9}

		m.state.EXPECT().PlayTurn(1).Return(result, nil).Once()
		m.notifier.EXPECT().Send("Player 1 placed Y at (2,1)").Return(nil).Once()
		m.events.EXPECT().Log("Player 1 placed Y at (2,1)").Return().Once()
		m.events.EXPECT().Log("Player 1 WINS!").Return().Once()
		m.scores.EXPECT().Increment(1).Return(nil).Once()

		// When
		got, err := worker.Tick()

		// Then
		require.NoError(t, err)
		assert.True(t, got.IsWin())
	})

	t.Run("Draw is announced without a score change", func(t *testing.T) {
		// Given
		worker, m := newMocked(t, 2)
		result := entity.TurnResult{Player: 2, Symbol: 'Z', Cell: entity.Cell{Row: 2, Col: 2}, Outcome: entity.OutcomeDraw, Epoch: 12}

		m.state.EXPECT().PlayTurn(2).Return(result, nil).Once()
		m.notifier.EXPECT().Send(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Log("Player 2 placed Z at (2,2)").Return().Once()
		m.events.EXPECT().Log("Game Draw!").Return().Once()

		// When
		got, err := worker.Tick()

		// Then
		require.NoError(t, err)
		assert.True(t, got.IsDraw())
	})

	t.Run("Notification failures do not stop the turn", func(t *testing.T) {
		for name, sendErr := range map[string]error{
			"full pipe":   apperror.ErrChannelFull,
			"broken pipe": errPipeBroken,
		} {
			t.Run(name, func(t *testing.T) {
				// Given
				worker, m := newMocked(t, 0)
				result := entity.TurnResult{Player: 0, Symbol: 'X', Outcome: entity.OutcomeContinue, Epoch: 2}

				m.state.EXPECT().PlayTurn(0).Return(result, nil).Once()
				m.notifier.EXPECT().Send(mock.Anything).Return(sendErr).Once()
				m.events.EXPECT().Log("Player 0 placed X at (0,0)").Return().Once()

				// When
				_, err := worker.Tick()

				// Then
				require.NoError(t, err)
			})
		}
	})

	t.Run("A lost score does not fail the turn", func(t *testing.T) {
		// Given
		worker, m := newMocked(t, 0)
		result := entity.TurnResult{Player: 0, Symbol: 'X', Outcome: entity.OutcomeWin, Epoch: 7}

		m.state.EXPECT().PlayTurn(0).Return(result, nil).Once()
		m.notifier.EXPECT().Send(mock.Anything).Return(nil).Once()
		m.events.EXPECT().Log(mock.Anything).Return().Twice()
		m.scores.EXPECT().Increment(0).Return(errScoreLost).Once()

		// When
		_, err := worker.Tick()

		// Then
		require.NoError(t, err)
	})
}

func TestWorker_Run(t *testing.T) {
	t.Run("Stops once the context is cancelled", func(t *testing.T) {
		// Given: A turn that never arrives
		worker, m := newMocked(t, 2)
		ctx, cancel := context.WithCancel(context.Background())

		m.state.EXPECT().Sequence().Return(uint32(1)).Once()
		m.state.EXPECT().PlayTurn(2).Return(entity.TurnResult{}, apperror.ErrNotYourTurn)
		m.state.EXPECT().WaitTurnChange(mock.Anything, time.Millisecond).
			RunAndReturn(func(seen uint32, timeout time.Duration) uint32 {
				time.Sleep(timeout)
				cancel()
				return seen
			})

		done := make(chan struct{})

		// When
		go func() {
			defer close(done)
			worker.Run(ctx)
		}()

		// Then
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
