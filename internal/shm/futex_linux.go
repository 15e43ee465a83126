//go:build linux

package shm

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Shared (not FUTEX_PRIVATE) operations so waiters in other processes are woken.
const (
	opFutexWait = 0
	opFutexWake = 1
)

// futexWait - sleeps while *addr == val. A zero timeout waits until woken.
// Spurious wakeups, EAGAIN and EINTR are left for the caller's loop.
func futexWait(addr *uint32, val uint32, timeout time.Duration) {
	var tsp *unix.Timespec
	if timeout > 0 {
		ts := unix.NsecToTimespec(int64(timeout))
		tsp = &ts
	}

	_, _, _ = unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		opFutexWait,
		uintptr(val),
		uintptr(unsafe.Pointer(tsp)),
		0, 0,
	)
}

func futexWake(addr *uint32, count int) {
	_, _, _ = unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		opFutexWake,
		uintptr(count),
		0, 0, 0,
	)
}
