// Package bustest provides a Bus implementation for tests. It records every
// write and answers reads from a table of values that the test can change at
// any time.
package bustest

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
)

// Access is a single write to the bus
type Access struct {
	Address uint32
	Data    uint32
}

func (a Access) String() string {
	n := registers.Name(a.Address)
	if n == "" {
		n = fmt.Sprintf("%08x", a.Address)
	}
	return fmt.Sprintf("%s=%04x", n, a.Data)
}

// Bus implements the bus.Bus interface
type Bus struct {
	Writes []Access
	Values map[uint32]uint32

	// the number of reads of each address
	Reads map[uint32]int

	// OnRead is called before every read. it allows the test to change values in
	// response to polling
	OnRead func(b *Bus, address uint32)

	// addresses in Fault return an error
	Fault map[uint32]error
}

// NewBus is the preferred method of initialisation for the Bus type
func NewBus() *Bus {
	return &Bus{
		Values: make(map[uint32]uint32),
		Reads:  make(map[uint32]int),
		Fault:  make(map[uint32]error),
	}
}

// Read implements the bus.Bus interface
func (b *Bus) Read(address uint32) (uint32, error) {
	if err, ok := b.Fault[address]; ok {
		return 0, err
	}
	b.Reads[address]++
	if b.OnRead != nil {
		b.OnRead(b, address)
	}
	if v, ok := b.Values[address]; ok {
		return v, nil
	}
	if registers.Name(address) == "" {
		return 0, bus.UnmappedAddress(address)
	}
	return 0, nil
}

// Write implements the bus.Bus interface
func (b *Bus) Write(address uint32, data uint32) error {
	if err, ok := b.Fault[address]; ok {
		return err
	}
	if registers.Name(address) == "" {
		return bus.UnmappedAddress(address)
	}
	b.Writes = append(b.Writes, Access{Address: address, Data: data})
	return nil
}

// WritesTo returns the values written to a single address in the order they
// were written
func (b *Bus) WritesTo(address uint32) []uint32 {
	var w []uint32
	for _, a := range b.Writes {
		if a.Address == address {
			w = append(w, a.Data)
		}
	}
	return w
}

// Clear forgets all writes and read counts
func (b *Bus) Clear() {
	b.Writes = b.Writes[:0]
	clear(b.Reads)
}
