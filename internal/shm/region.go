//go:build unix

package shm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

var (
	ErrInvalidSize  = errors.New("invalid region size")
	ErrSizeMismatch = errors.New("region size mismatch")
	ErrUnaligned    = errors.New("word offset is not 4-byte aligned")
)

// Region - a MAP_SHARED memory mapping visible to every process that maps the same name.
type Region struct {
	name string
	path string
	data []byte
}

// Dir - where named segments live. /dev/shm is what shm_open uses on Linux.
func Dir() string {
	if runtime.GOOS == "linux" {
		return "/dev/shm"
	}

	return os.TempDir()
}

// Path - the file system path of a named segment.
func Path(name string) string {
	return filepath.Join(Dir(), filepath.Base(name))
}

// Create - creates (or truncates) the named segment, sizes it and maps it read-write.
func Create(name string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	path := Path(name)

	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC|unix.O_CLOEXEC, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to create segment %s: %w", path, err)
	}
	defer unix.Close(fd)

	if err = unix.Ftruncate(fd, int64(size)); err != nil {
		_ = unix.Unlink(path)
		return nil, fmt.Errorf("failed to size segment %s: %w", path, err)
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Unlink(path)
		return nil, fmt.Errorf("failed to map segment %s: %w", path, err)
	}

	return &Region{name: name, path: path, data: data}, nil
}

// Open - maps an existing named segment. The size must match what the creator used.
func Open(name string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	path := Path(name)

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err = unix.Fstat(fd, &stat); err != nil {
		return nil, fmt.Errorf("failed to stat segment %s: %w", path, err)
	}

	if stat.Size != int64(size) {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrSizeMismatch, path, stat.Size, size)
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map segment %s: %w", path, err)
	}

	return &Region{name: name, path: path, data: data}, nil
}

// Anonymous - an unnamed shared mapping, used when every participant lives in one process.
func Anonymous(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("failed to map anonymous region: %w", err)
	}

	return &Region{data: data}, nil
}

func (that *Region) Name() string {
	return that.name
}

func (that *Region) Bytes() []byte {
	return that.data
}

func (that *Region) Size() int {
	return len(that.data)
}

// Close - unmaps the region. The segment itself survives until Unlink.
func (that *Region) Close() error {
	if that.data == nil {
		return nil
	}

	if err := unix.Munmap(that.data); err != nil {
		return fmt.Errorf("failed to unmap region: %w", err)
	}
	that.data = nil

	return nil
}

// Unlink - removes the segment name. Existing mappings stay valid.
func (that *Region) Unlink() error {
	if that.path == "" {
		return nil
	}

	if err := unix.Unlink(that.path); err != nil && !errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("failed to unlink segment %s: %w", that.path, err)
	}

	return nil
}

// Word - a pointer to the 32-bit word at off, for atomic access.
func Word(data []byte, off int) *uint32 {
	if off%4 != 0 {
		panic(fmt.Errorf("%w: %d", ErrUnaligned, off))
	}

	return (*uint32)(unsafe.Pointer(&data[off]))
}
