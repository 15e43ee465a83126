package shm

import (
	"runtime"
	"sync/atomic"
	"time"
)

const (
	unlocked  uint32 = 0
	locked    uint32 = 1
	contended uint32 = 2
)

// Mutex - a lock living in a 32-bit word of shared memory, usable from any
// process or goroutine that maps the word. Three states: 0 free, 1 held,
// 2 held with waiters sleeping on the futex.
//
// The zero word is an unlocked mutex. A process that dies while holding the
// lock leaves it held.
type Mutex struct {
	word *uint32
}

func NewMutex(word *uint32) *Mutex {
	return &Mutex{word: word}
}

func (that *Mutex) Lock() {
	if atomic.CompareAndSwapUint32(that.word, unlocked, locked) {
		return
	}

	for atomic.SwapUint32(that.word, contended) != unlocked {
		futexWait(that.word, contended, 0)
	}
}

func (that *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(that.word, unlocked, locked)
}

// Unlock - releases the lock. With sleepers present it wakes one and yields,
// so the sleeper gets a chance before this caller can take the lock again.
func (that *Mutex) Unlock() {
	if atomic.AddUint32(that.word, ^uint32(0)) == unlocked {
		return
	}

	atomic.StoreUint32(that.word, unlocked)
	futexWake(that.word, 1)
	runtime.Gosched()
}

// WaitChange - blocks until the word no longer holds seen or the timeout passes.
// Returns the value observed last.
func WaitChange(word *uint32, seen uint32, timeout time.Duration) uint32 {
	deadline := time.Now().Add(timeout)

	for {
		current := atomic.LoadUint32(word)
		if current != seen {
			return current
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return current
		}

		futexWait(word, seen, remaining)
	}
}

// WakeAll - wakes every waiter blocked in WaitChange on the word.
func WakeAll(word *uint32) {
	futexWake(word, 1<<30)
}
