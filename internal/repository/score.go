package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// ScoreRepository - durable copy of the score table. Load returns
// apperror.ErrNotFound when nothing was saved yet; otherwise it returns the
// records in slot order up to the first unreadable one.
type ScoreRepository interface {
	Load(ctx context.Context) ([]entity.ScoreRecord, error)
	Save(ctx context.Context, records []entity.ScoreRecord) error
}
