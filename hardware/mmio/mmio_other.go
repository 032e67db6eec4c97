//go:build !linux

package mmio

import (
	"errors"

	"github.com/jetsetilly/xypong/hardware/bus"
)

// ErrUnsupported is returned by Open() on platforms without /dev/mem
var ErrUnsupported = errors.New("mmio: not supported on this platform")

// MMIO is not available on this platform
type MMIO struct{}

// Open always fails on this platform
func Open() (*MMIO, error) {
	return nil, ErrUnsupported
}

// OpenFile always fails on this platform
func OpenFile(_ string, _ int64, _ uint32, _ int) (*MMIO, error) {
	return nil, ErrUnsupported
}

// Close implements the io.Closer interface
func (m *MMIO) Close() error {
	return nil
}

// Read implements the bus.Bus interface
func (m *MMIO) Read(address uint32) (uint32, error) {
	return 0, bus.UnmappedAddress(address)
}

// Write implements the bus.Bus interface
func (m *MMIO) Write(address uint32, _ uint32) error {
	return bus.UnmappedAddress(address)
}
