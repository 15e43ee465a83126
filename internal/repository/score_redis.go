package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type redisScores struct {
	client *redis.Client
	key    string
}

// NewRedisScoreRepository - keeps scores as a Redis list of JSON records in slot order.
func NewRedisScoreRepository(client *redis.Client, key string) ScoreRepository {
	return &redisScores{
		client: client,
		key:    key,
	}
}

func (that *redisScores) Load(ctx context.Context) ([]entity.ScoreRecord, error) {
	response, err := that.client.LRange(ctx, that.key, 0, entity.MaxPlayers-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	if len(response) == 0 {
		return nil, fmt.Errorf("scores at %s: %w", that.key, apperror.ErrNotFound)
	}

	records := make([]entity.ScoreRecord, 0, len(response))
	for _, raw := range response {
		var record entity.ScoreRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil || record.Name == "" || record.Score < 0 {
			break
		}

		records = append(records, record)
	}

	return records, nil
}

func (that *redisScores) Save(ctx context.Context, records []entity.ScoreRecord) error {
	values := make([]any, 0, len(records))
	for _, record := range records {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}

		values = append(values, recordJSON)
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, that.key)
		if len(values) > 0 {
			pipe.RPush(ctx, that.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}
