package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/gamestate"
)

const DefaultInterval = time.Second

type turnState interface {
	AdvanceWith(selector gamestate.Selector, announce func(next int)) (int, bool)
}

type eventLog interface {
	Logf(format string, args ...any)
}

// Scheduler - periodically hands the turn to the next active slot in cyclic order.
type Scheduler struct {
	logger   *slog.Logger
	state    turnState
	events   eventLog
	interval time.Duration
}

func New(logger *slog.Logger, state turnState, events eventLog, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Scheduler{
		logger:   logger.With("component", "scheduler"),
		state:    state,
		events:   events,
		interval: interval,
	}
}

// Next - the first active slot after current, wrapping around. current itself
// is chosen only when no other slot is active; ok is false when none is.
func Next(current int, active [entity.MaxPlayers]bool) (int, bool) {
	for step := 1; step <= entity.MaxPlayers; step++ {
		candidate := (current + step) % entity.MaxPlayers
		if candidate < 0 {
			candidate += entity.MaxPlayers
		}

		if active[candidate] {
			return candidate, true
		}
	}

	return current, false
}

// Tick - advances the turn once. The hand-over is logged before the new
// holder can move.
func (that *Scheduler) Tick() (int, bool) {
	var previous int
	next, ok := that.state.AdvanceWith(func(current int, active [entity.MaxPlayers]bool) (int, bool) {
		previous = current
		return Next(current, active)
	}, func(next int) {
		if next == previous {
			that.logger.Debug("sole active player keeps the turn", "player", next)
		}

		that.events.Logf("Scheduler: Next turn -> Player %d", next)
	})

	if !ok {
		that.logger.Debug("no active players, turn unchanged", "turn", next)
		return next, false
	}

	return next, true
}

// Run - ticks on the interval until ctx is done.
func (that *Scheduler) Run(ctx context.Context) {
	that.logger.Info("scheduler started", "interval", that.interval)

	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			that.Tick()
		}
	}
}
