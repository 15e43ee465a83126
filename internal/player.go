package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/arena"
	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/notify"
	"github.com/rocketscienceinc/tictactoe-arena/internal/worker"
)

// RunWorker - plays one slot against the region a coordinator created, until
// SIGINT or SIGTERM.
func RunWorker(logger *slog.Logger, conf *config.Config, player int) error {
	if err := entity.ValidatePlayer(player); err != nil {
		return err
	}

	log := logger.With("component", "app", "player", player)

	ctx, cancel := signalContext(log)
	defer cancel()

	shared, err := arena.Open(conf.ShmName)
	if err != nil {
		return fmt.Errorf("could not open shared region: %w", err)
	}

	defer func() {
		if err = shared.Close(); err != nil {
			log.Error("could not unmap shared region", "error", err)
		}
	}()

	return play(ctx, logger, conf, shared, player)
}

// play - opens the player's channel, registers the slot and runs the worker loop.
// Without a channel the worker does not start.
func play(ctx context.Context, logger *slog.Logger, conf *config.Config, shared *arena.Arena, player int) error {
	channel, err := notify.Open(notify.Path(conf.PipePrefix, player))
	if err != nil {
		return fmt.Errorf("could not open notification channel: %w", err)
	}

	defer func() {
		if err = channel.Close(); err != nil {
			logger.Error("could not close notification channel", "player", player, "error", err)
		}
	}()

	if err = shared.Scores.Register(player, entity.DefaultPlayerName(player)); err != nil {
		return fmt.Errorf("could not register player: %w", err)
	}

	worker.New(logger, player, shared.State, shared.Events, shared.Scores, channel, conf.WorkerInterval).Run(ctx)

	return nil
}
