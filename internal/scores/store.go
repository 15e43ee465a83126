package scores

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Repository - durable backend for the score table.
type Repository interface {
	Load(ctx context.Context) ([]entity.ScoreRecord, error)
	Save(ctx context.Context, records []entity.ScoreRecord) error
}

// Store - loads the table once at startup and saves it once on shutdown.
type Store struct {
	logger *slog.Logger
	table  *Table
	repo   Repository
}

func NewStore(logger *slog.Logger, table *Table, repo Repository) *Store {
	return &Store{
		logger: logger.With("component", "scores"),
		table:  table,
		repo:   repo,
	}
}

// Load - fills the table from the repository. A missing or unreadable backend
// leaves the defaults in place.
func (that *Store) Load(ctx context.Context) {
	log := that.logger.With("method", "Load")

	records, err := that.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			log.Info("no saved scores, starting from defaults")
		} else {
			log.Warn("can't load scores, starting from defaults", "error", err)
		}
		return
	}

	that.table.Apply(records)
	log.Info("scores loaded", "records", len(records))
}

// Save - writes every named slot in slot order, overwriting prior contents.
func (that *Store) Save(ctx context.Context) error {
	records := that.Named()

	if err := that.repo.Save(ctx, records); err != nil {
		return fmt.Errorf("can't save scores: %w", err)
	}

	that.logger.Info("scores saved", "method", "Save", "records", len(records))

	return nil
}

// Named - the slots that carry a name, in slot order.
func (that *Store) Named() []entity.ScoreRecord {
	all := that.table.Records()

	records := make([]entity.ScoreRecord, 0, len(all))
	for _, record := range all {
		if record.Name != "" {
			records = append(records, record)
		}
	}

	return records
}

func (that *Store) Increment(player int) error {
	return that.table.Increment(player)
}

func (that *Store) Register(player int, name string) error {
	return that.table.Register(player, name)
}
