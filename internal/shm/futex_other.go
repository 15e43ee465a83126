//go:build !linux

package shm

import (
	"sync/atomic"
	"time"
)

const pollStep = 200 * time.Microsecond

// futexWait - no futex outside Linux; sleep a short step and let the caller re-check.
func futexWait(addr *uint32, val uint32, timeout time.Duration) {
	if atomic.LoadUint32(addr) != val {
		return
	}

	step := pollStep
	if timeout > 0 && timeout < step {
		step = timeout
	}

	time.Sleep(step)
}

func futexWake(*uint32, int) {}
