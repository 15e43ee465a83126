package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const DefaultInterval = time.Second

type gameStateDep interface {
	PlayTurn(player int) (entity.TurnResult, error)
	Sequence() uint32
	WaitTurnChange(seen uint32, timeout time.Duration) uint32
}

type eventLogDep interface {
	Log(text string)
}

type scoreBoardDep interface {
	Increment(player int) error
}

type notifierDep interface {
	Send(text string) error
}

// Worker - plays one slot: waits for its turn, makes the forced move and
// reports what happened.
type Worker struct {
	logger   *slog.Logger
	player   int
	state    gameStateDep
	events   eventLogDep
	scores   scoreBoardDep
	notifier notifierDep
	interval time.Duration
}

func New(
	logger *slog.Logger,
	player int,
	state gameStateDep,
	events eventLogDep,
	scores scoreBoardDep,
	notifier notifierDep,
	interval time.Duration,
) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Worker{
		logger:   logger.With("component", "worker", "player", player),
		player:   player,
		state:    state,
		events:   events,
		scores:   scores,
		notifier: notifier,
		interval: interval,
	}
}

// Run - plays until ctx is done. Between attempts it sleeps until the turn
// changes or the interval passes, so it returns within one interval of cancellation.
func (that *Worker) Run(ctx context.Context) {
	that.logger.Info("worker started", "interval", that.interval)

	seen := that.state.Sequence()
	for ctx.Err() == nil {
		_, _ = that.Tick()
		seen = that.state.WaitTurnChange(seen, that.interval)
	}

	that.logger.Info("worker stopped")
}

// Tick - tries to play once. It returns apperror.ErrNotYourTurn or
// apperror.ErrAlreadyMoved when there is nothing to do.
func (that *Worker) Tick() (entity.TurnResult, error) {
	log := that.logger.With("method", "Tick")

	result, err := that.state.PlayTurn(that.player)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrAlreadyMoved):
		default:
			log.Warn("turn failed", "error", err)
		}
		return entity.TurnResult{}, err
	}

	message := result.MoveMessage()
	that.notify(message)
	that.events.Log(message)

	log.Debug("move committed", "cell", result.Cell.String(), "epoch", result.Epoch, "outcome", result.Outcome)

	switch {
	case result.IsWin():
		that.events.Log(result.OutcomeMessage())
		if err = that.scores.Increment(that.player); err != nil {
			log.Error("can't record win", "error", err)
		}
	case result.IsDraw():
		that.events.Log(result.OutcomeMessage())
	}

	return result, nil
}

func (that *Worker) notify(message string) {
	err := that.notifier.Send(message)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrChannelFull):
		that.logger.Debug("channel full, message dropped", "message", message)
	default:
		that.logger.Warn("can't notify player", "error", err)
	}
}
