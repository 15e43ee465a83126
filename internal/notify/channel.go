//go:build unix

package notify

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var ErrNotFIFO = errors.New("path exists and is not a FIFO")

// Channel - the write side of a player's named pipe.
//
// The pipe is held open read-write so that writes never fail for lack of a
// reader, and non-blocking so that a viewer that stopped reading cannot stall
// the worker: a full pipe drops the message with apperror.ErrChannelFull.
type Channel struct {
	path string

	mu sync.Mutex
	fd int
}

// Open - creates the FIFO if needed and opens it.
func Open(path string) (*Channel, error) {
	if err := unix.Mkfifo(path, 0o666); err != nil && !errors.Is(err, unix.EEXIST) {
		return nil, fmt.Errorf("can't create channel %s: %w", path, err)
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("can't open channel %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err = unix.Fstat(fd, &stat); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("can't stat channel %s: %w", path, err)
	}

	if stat.Mode&unix.S_IFMT != unix.S_IFIFO {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("%w: %s", ErrNotFIFO, path)
	}

	return &Channel{path: path, fd: fd}, nil
}

func (that *Channel) Path() string {
	return that.path
}

// Send - writes text as one NUL-terminated message, cut to at most
// MessageSize-1 bytes on a rune boundary.
func (that *Channel) Send(text string) error {
	message := append([]byte(entity.Truncate(text, MessageSize-1)), 0)

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.fd < 0 {
		return fmt.Errorf("channel %s: %w", that.path, unix.EBADF)
	}

	for {
		_, err := unix.Write(that.fd, message)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return apperror.ErrChannelFull
		default:
			return fmt.Errorf("can't write to channel %s: %w", that.path, err)
		}
	}
}

// Close - closes the pipe and removes it from the filesystem.
func (that *Channel) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.fd < 0 {
		return nil
	}

	var errs []error
	if err := unix.Close(that.fd); err != nil {
		errs = append(errs, fmt.Errorf("can't close channel: %w", err))
	}
	that.fd = -1

	if err := unix.Unlink(that.path); err != nil && !errors.Is(err, unix.ENOENT) {
		errs = append(errs, fmt.Errorf("can't remove channel: %w", err))
	}

	return errors.Join(errs...)
}
