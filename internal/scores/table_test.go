package scores

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func newTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewTable(make([]byte, Size))
	require.NoError(t, err)
	table.Reset()

	return table
}

func TestNewTable(t *testing.T) {
	// When
	_, err := NewTable(make([]byte, Size-1))

	// Then
	require.ErrorIs(t, err, apperror.ErrRegionTooSmall)
}

func TestTable_Register(t *testing.T) {
	t.Run("Names an empty slot", func(t *testing.T) {
		// Given
		table := newTable(t)

		// When
		require.NoError(t, table.Register(1, entity.DefaultPlayerName(1)))

		// Then
		records := table.Records()
		assert.Equal(t, "Player1", records[1].Name)
		assert.Empty(t, records[0].Name)
		assert.Empty(t, records[2].Name)
	})

	t.Run("Keeps a restored name", func(t *testing.T) {
		// Given
		table := newTable(t)
		table.Apply([]entity.ScoreRecord{{Name: "alice", Score: 3}})

		// When
		require.NoError(t, table.Register(0, entity.DefaultPlayerName(0)))

		// Then
		assert.Equal(t, entity.ScoreRecord{Name: "alice", Score: 3}, table.Records()[0])
	})

	t.Run("Truncates long names", func(t *testing.T) {
		// Given
		table := newTable(t)

		// When
		require.NoError(t, table.Register(2, strings.Repeat("n", 100)))

		// Then
		assert.Len(t, table.Records()[2].Name, entity.MaxNameLen-1)
	})

	t.Run("Rejects an invalid slot", func(t *testing.T) {
		table := newTable(t)

		assert.ErrorIs(t, table.Register(entity.MaxPlayers, "x"), entity.ErrInvalidPlayer)
		assert.ErrorIs(t, table.Increment(-1), entity.ErrInvalidPlayer)
	})
}

func TestTable_Apply(t *testing.T) {
	t.Run("Assigns records to slots in order and clears the rest", func(t *testing.T) {
		// Given
		table := newTable(t)
		table.Apply([]entity.ScoreRecord{{Name: "a", Score: 1}, {Name: "b", Score: 2}, {Name: "c", Score: 3}})

		// When
		table.Apply([]entity.ScoreRecord{{Name: "d", Score: 4}})

		// Then
		records := table.Records()
		assert.Equal(t, entity.ScoreRecord{Name: "d", Score: 4}, records[0])
		assert.Equal(t, entity.ScoreRecord{}, records[1])
		assert.Equal(t, entity.ScoreRecord{}, records[2])
	})

	t.Run("Ignores records past the last slot", func(t *testing.T) {
		// Given
		table := newTable(t)

		// When
		table.Apply([]entity.ScoreRecord{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}})

		// Then
		assert.Equal(t, "c", table.Records()[2].Name)
	})
}

func TestTable_Increment(t *testing.T) {
	// Given: Several goroutines counting wins for the same slot
	table := newTable(t)
	const goroutines = 8
	const wins = 250

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range wins {
				assert.NoError(t, table.Increment(2))
			}
		}()
	}

	// When
	wg.Wait()

	// Then: No increment is lost
	assert.Equal(t, goroutines*wins, table.Records()[2].Score)
	assert.Zero(t, table.Records()[0].Score)
}
