package application

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
)

// newScoreRepository - the configured score backend and a function releasing it.
func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	switch conf.ScoreBackend {
	case config.ScoreBackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil

	case config.ScoreBackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not prepare sqlite storage: %w", err)
		}

		return repository.NewSQLiteScoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return repository.NewFileScoreRepository(conf.ScoreFile), func() error { return nil }, nil
	}
}
