//go:build linux

package mmio

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/jetsetilly/xypong/hardware/bus"
	"golang.org/x/sys/unix"
)

// ErrClosed is returned by Read() and Write() after Close() has been called
var ErrClosed = errors.New("mmio: closed")

// MMIO implements the bus.Bus interface for memory mapped registers
type MMIO struct {
	base uint32
	mem  []byte
}

// Open maps the peripheral registers through /dev/mem
func Open() (*MMIO, error) {
	return OpenFile(DevMem, Base, Base, Length)
}

// OpenFile maps length bytes of the named file starting at offset. The
// register at address base is at the start of the mapping
func OpenFile(path string, offset int64, base uint32, length int) (*MMIO, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("mmio: %w", err)
	}

	// the mapping remains valid after the file is closed
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmio: mmap %s: %w", path, err)
	}

	return &MMIO{
		base: base,
		mem:  mem,
	}, nil
}

// Close removes the mapping
func (m *MMIO) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	if err != nil {
		return fmt.Errorf("mmio: %w", err)
	}
	return nil
}

func (m *MMIO) word(address uint32) (*uint32, error) {
	if m.mem == nil {
		return nil, ErrClosed
	}
	if address < m.base || address&0x03 != 0 {
		return nil, bus.UnmappedAddress(address)
	}
	idx := address - m.base
	if uint64(idx)+4 > uint64(len(m.mem)) {
		return nil, bus.UnmappedAddress(address)
	}
	return (*uint32)(unsafe.Pointer(&m.mem[idx])), nil
}

// Read implements the bus.Bus interface
func (m *MMIO) Read(address uint32) (uint32, error) {
	w, err := m.word(address)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(w), nil
}

// Write implements the bus.Bus interface
func (m *MMIO) Write(address uint32, data uint32) error {
	w, err := m.word(address)
	if err != nil {
		return err
	}
	atomic.StoreUint32(w, data)
	return nil
}
