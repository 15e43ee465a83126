package eventlog

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/shm"
)

const (
	// Capacity - slots in the ring. One slot stays free to tell full from empty.
	Capacity = 1024
	// EntrySize - fixed slot width; texts are cut to EntrySize-1 bytes and NUL padded.
	EntrySize = 256

	offLock    = 0
	offHead    = 4
	offTail    = 8
	offDropped = 12
	offEntries = 16

	// Size - bytes the queue occupies in the region.
	Size = offEntries + Capacity*EntrySize
)

// Queue - a bounded multi-producer, single-consumer ring of log lines living in
// shared memory, guarded by its own mutex word.
//
// Overflow policy is drop-oldest: a producer that finds the ring full advances
// the tail past the oldest undrained entry and counts it as dropped. Entries
// are written and copied out only under the mutex, so a consumer never sees a
// half-written slot.
type Queue struct {
	data []byte
	mu   *shm.Mutex
}

// New - binds to a queue area. The region creator calls Reset once before use.
func New(data []byte) (*Queue, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", apperror.ErrRegionTooSmall, len(data), Size)
	}

	area := data[:Size]

	return &Queue{
		data: area,
		mu:   shm.NewMutex(shm.Word(area, offLock)),
	}, nil
}

// Reset - empties the queue and the drop counter.
func (that *Queue) Reset() {
	clear(that.data[:offEntries])
}

// Log - appends one entry. Never blocks on the consumer.
func (that *Queue) Log(text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	head := that.get(offHead)
	next := (head + 1) % Capacity

	if next == that.get(offTail) {
		that.put(offTail, (next+1)%Capacity)
		that.put(offDropped, that.get(offDropped)+1)
	}

	slot := that.slot(head)
	clear(slot)
	copy(slot, entity.Truncate(text, EntrySize-1))

	that.put(offHead, next)
}

// Logf - formats and appends one entry.
func (that *Queue) Logf(format string, args ...any) {
	that.Log(fmt.Sprintf(format, args...))
}

// Pop - copies out every pending entry in order and marks them consumed.
func (that *Queue) Pop() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	head, tail := that.get(offHead), that.get(offTail)
	if head == tail {
		return nil
	}

	entries := make([]string, 0, (head-tail+Capacity)%Capacity)
	for tail != head {
		slot := that.slot(tail)
		if end := bytes.IndexByte(slot, 0); end >= 0 {
			slot = slot[:end]
		}
		entries = append(entries, string(slot))
		tail = (tail + 1) % Capacity
	}

	that.put(offTail, tail)

	return entries
}

// Pending - entries waiting for the consumer.
func (that *Queue) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return int((that.get(offHead) - that.get(offTail) + Capacity) % Capacity)
}

// Dropped - entries overwritten before the consumer reached them.
func (that *Queue) Dropped() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return int(that.get(offDropped))
}

func (that *Queue) slot(index uint32) []byte {
	start := offEntries + int(index)*EntrySize

	return that.data[start : start+EntrySize]
}

func (that *Queue) get(off int) uint32 {
	return binary.LittleEndian.Uint32(that.data[off:])
}

func (that *Queue) put(off int, value uint32) {
	binary.LittleEndian.PutUint32(that.data[off:], value)
}
