package bus

import (
	"errors"
	"fmt"
)

// Unmapped is the sentinel error for accesses to addresses that the bus knows
// nothing about
var Unmapped = errors.New("unmapped address")

// UnmappedAddress returns an error wrapping Unmapped for the address
func UnmappedAddress(address uint32) error {
	return fmt.Errorf("%w: %08x", Unmapped, address)
}
