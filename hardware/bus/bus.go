// Package bus defines how the rest of the program talks to the peripheral
// registers. A Bus might be the real memory-mapped hardware or a simulation
// of it.
package bus

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/registers"
)

// Bus is implemented by anything that can read and write the 32 bit
// peripheral registers. Addresses are absolute
type Bus interface {
	Read(address uint32) (uint32, error)
	Write(address uint32, data uint32) error
}

// Register is a single peripheral register on a bus
type Register struct {
	bus     Bus
	address uint32
}

// NewRegister is the preferred method of initialisation for the Register type
func NewRegister(bus Bus, address uint32) Register {
	return Register{
		bus:     bus,
		address: address,
	}
}

func (r Register) String() string {
	if n := registers.Name(r.address); n != "" {
		return n
	}
	return fmt.Sprintf("%08x", r.address)
}

// Address of the register
func (r Register) Address() uint32 {
	return r.address
}

// Load the current value of the register
func (r Register) Load() (uint32, error) {
	return r.bus.Read(r.address)
}

// Store a value in the register
func (r Register) Store(data uint32) error {
	return r.bus.Write(r.address, data)
}

// Test returns true if any of the bits in the mask are set
func (r Register) Test(mask uint32) (bool, error) {
	v, err := r.bus.Read(r.address)
	if err != nil {
		return false, err
	}
	return v&mask != 0, nil
}

// Busy returns a function that reports true while none of the bits in the mask
// are set. Suitable for use as a timing.Waiter
func (r Register) Busy(mask uint32) func() (bool, error) {
	return func() (bool, error) {
		ready, err := r.Test(mask)
		return !ready, err
	}
}
