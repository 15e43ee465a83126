package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type fileScores struct {
	path string
}

// NewFileScoreRepository - keeps scores in a text file, one `<name> <score>` pair per line.
func NewFileScoreRepository(path string) ScoreRepository {
	return &fileScores{
		path: path,
	}
}

func (that *fileScores) Load(_ context.Context) ([]entity.ScoreRecord, error) {
	file, err := os.Open(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("score file %s: %w", that.path, apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("can't open score file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	records := make([]entity.ScoreRecord, 0, entity.MaxPlayers)
	for len(records) < entity.MaxPlayers {
		if !scanner.Scan() {
			break
		}
		name := scanner.Text()

		if !scanner.Scan() {
			break
		}

		score, err := strconv.Atoi(scanner.Text())
		if err != nil || score < 0 {
			break
		}

		records = append(records, entity.ScoreRecord{Name: name, Score: score})
	}

	if err = scanner.Err(); err != nil {
		return records, fmt.Errorf("can't read score file: %w", err)
	}

	return records, nil
}

func (that *fileScores) Save(_ context.Context, records []entity.ScoreRecord) error {
	file, err := os.Create(that.path)
	if err != nil {
		return fmt.Errorf("can't create score file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, record := range records {
		if _, err = fmt.Fprintf(writer, "%s %d\n", record.Name, record.Score); err != nil {
			_ = file.Close()
			return fmt.Errorf("can't write score file: %w", err)
		}
	}

	if err = writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("can't write score file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("can't close score file: %w", err)
	}

	return nil
}
