package config

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var (
	ErrUnknownMode         = errors.New("unknown mode")
	ErrUnknownScoreBackend = errors.New("unknown score backend")
	ErrInvalidPlayer       = errors.New("invalid player slot")
	ErrNoPlayers           = errors.New("no active players")
	ErrInvalidInterval     = errors.New("interval must be positive")
)

// Validate - checks values cleanenv cannot check on its own.
func (that *Config) Validate() error {
	switch that.Mode {
	case ModeProcess, ModeInProc:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	switch that.ScoreBackend {
	case ScoreBackendFile, ScoreBackendRedis, ScoreBackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScoreBackend, that.ScoreBackend)
	}

	if len(that.Players) == 0 {
		return ErrNoPlayers
	}

	seen := make(map[int]bool, len(that.Players))
	for _, player := range that.Players {
		if player < 0 || player >= entity.MaxPlayers || seen[player] {
			return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
		}
		seen[player] = true
	}

	if that.SchedulerInterval <= 0 || that.WorkerInterval <= 0 || that.DrainInterval <= 0 {
		return ErrInvalidInterval
	}

	return nil
}
