package scores

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/shm"
)

const (
	offLock    = 0
	offRecords = 4

	recordSize = entity.MaxNameLen + 4

	// Size - bytes the table occupies in the region.
	Size = (offRecords + entity.MaxPlayers*recordSize + 7) &^ 7
)

// Table - per-slot name and score living in shared memory so that wins
// counted by worker processes are visible to the coordinator on save.
type Table struct {
	data []byte
	mu   *shm.Mutex
}

func NewTable(data []byte) (*Table, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", apperror.ErrRegionTooSmall, len(data), Size)
	}

	area := data[:Size]

	return &Table{
		data: area,
		mu:   shm.NewMutex(shm.Word(area, offLock)),
	}, nil
}

// Reset - clears every slot. Only the region creator calls it.
func (that *Table) Reset() {
	clear(that.data)
}

func (that *Table) Increment(player int) error {
	if err := entity.ValidatePlayer(player); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	off := that.scoreOffset(player)
	binary.LittleEndian.PutUint32(that.data[off:], binary.LittleEndian.Uint32(that.data[off:])+1)

	return nil
}

// Register - names the slot unless it already carries a name, for example
// one restored from a previous run.
func (that *Table) Register(player int, name string) error {
	if err := entity.ValidatePlayer(player); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.name(player) != "" {
		return nil
	}

	that.setName(player, name)

	return nil
}

// Apply - replaces the table with records assigned to slots in order.
// Records beyond the slot count are ignored.
func (that *Table) Apply(records []entity.ScoreRecord) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clear(that.data[offRecords:])

	for player, record := range records {
		if player >= entity.MaxPlayers {
			break
		}

		that.setName(player, record.Name)
		binary.LittleEndian.PutUint32(that.data[that.scoreOffset(player):], uint32(max(record.Score, 0)))
	}
}

// Records - a consistent copy of every slot, named or not.
func (that *Table) Records() [entity.MaxPlayers]entity.ScoreRecord {
	that.mu.Lock()
	defer that.mu.Unlock()

	var records [entity.MaxPlayers]entity.ScoreRecord
	for player := range records {
		records[player] = entity.ScoreRecord{
			Name:  that.name(player),
			Score: int(binary.LittleEndian.Uint32(that.data[that.scoreOffset(player):])),
		}
	}

	return records
}

func (that *Table) name(player int) string {
	raw := that.nameField(player)
	if end := bytes.IndexByte(raw, 0); end >= 0 {
		raw = raw[:end]
	}

	return string(raw)
}

func (that *Table) setName(player int, name string) {
	field := that.nameField(player)
	clear(field)
	copy(field[:entity.MaxNameLen-1], name)
}

func (that *Table) nameField(player int) []byte {
	start := offRecords + player*recordSize

	return that.data[start : start+entity.MaxNameLen]
}

func (that *Table) scoreOffset(player int) int {
	return offRecords + player*recordSize + entity.MaxNameLen
}
