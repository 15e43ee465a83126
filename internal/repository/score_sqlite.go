package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type sqliteScores struct {
	conn *sql.DB
}

// NewSQLiteScoreRepository - keeps scores in the scores table, one row per saved slot.
func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScores{
		conn: conn,
	}
}

func (that *sqliteScores) Load(ctx context.Context) ([]entity.ScoreRecord, error) {
	query := `SELECT name, score FROM scores ORDER BY slot LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, entity.MaxPlayers)
	if err != nil {
		return nil, fmt.Errorf("can't load scores: %w", err)
	}
	defer rows.Close()

	records := make([]entity.ScoreRecord, 0, entity.MaxPlayers)
	for rows.Next() {
		var record entity.ScoreRecord
		if err = rows.Scan(&record.Name, &record.Score); err != nil || record.Name == "" || record.Score < 0 {
			break
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return records, fmt.Errorf("can't load scores: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("scores table: %w", apperror.ErrNotFound)
	}

	return records, nil
}

func (that *sqliteScores) Save(ctx context.Context, records []entity.ScoreRecord) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't save scores: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("can't clear scores: %w", err)
	}

	query := `INSERT INTO scores (slot, name, score) VALUES (?, ?, ?)`
	for slot, record := range records {
		if _, err = tx.ExecContext(ctx, query, slot, record.Name, record.Score); err != nil {
			return fmt.Errorf("can't save score: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit scores: %w", err)
	}

	return nil
}
