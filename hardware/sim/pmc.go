package sim

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/bus"
)

// PMC is the power management controller. Only the peripheral clock enable
// and status registers are modelled
type PMC struct {
	pcsr uint32
}

// Label implements the Area interface
func (pmc *PMC) Label() string {
	return "PMC"
}

func (pmc *PMC) String() string {
	return fmt.Sprintf("PMC: clocks=%08x", pmc.pcsr)
}

// Clocks returns the peripheral clock status
func (pmc *PMC) Clocks() uint32 {
	return pmc.pcsr
}

// Read implements the Area interface
func (pmc *PMC) Read(idx uint32) (uint32, error) {
	switch idx {
	case 0x18:
		// PMC_PCSR
		return pmc.pcsr, nil
	case 0x10, 0x14:
		// enable and disable are write-only
		return 0, nil
	}
	return 0, bus.UnmappedAddress(originPMC + idx)
}

// Write implements the Area interface
func (pmc *PMC) Write(idx uint32, data uint32) error {
	switch idx {
	case 0x10:
		// PMC_PCER
		pmc.pcsr |= data
	case 0x14:
		// PMC_PCDR
		pmc.pcsr &^= data
	default:
		return bus.UnmappedAddress(originPMC + idx)
	}
	return nil
}

// PIO is parallel I/O controller A. Pin assignment is recorded but has no
// effect on the simulation
type PIO struct {
	// pins under PIO control. a cleared bit means the pin is owned by a
	// peripheral
	psr uint32

	// output enable
	osr uint32

	// output data
	odsr uint32

	// peripheral A/B select. a cleared bit means peripheral A
	absr uint32
}

// Label implements the Area interface
func (pio *PIO) Label() string {
	return "PIOA"
}

// Peripheral returns the pins that have been handed to peripheral A
func (pio *PIO) Peripheral() uint32 {
	return ^pio.psr & ^pio.absr
}

// Read implements the Area interface
func (pio *PIO) Read(idx uint32) (uint32, error) {
	switch idx {
	case 0x08:
		return pio.psr, nil
	case 0x18:
		return pio.osr, nil
	case 0x38:
		return pio.odsr, nil
	case 0x78:
		return pio.absr, nil
	case 0x00, 0x04, 0x10, 0x14, 0x30, 0x34, 0x70, 0x74:
		return 0, nil
	}
	return 0, bus.UnmappedAddress(originPIO + idx)
}

// Write implements the Area interface
func (pio *PIO) Write(idx uint32, data uint32) error {
	switch idx {
	case 0x00:
		pio.psr |= data
	case 0x04:
		pio.psr &^= data
	case 0x10:
		pio.osr |= data
	case 0x14:
		pio.osr &^= data
	case 0x30:
		pio.odsr |= data
	case 0x34:
		pio.odsr &^= data
	case 0x70:
		pio.absr &^= data
	case 0x74:
		pio.absr |= data
	default:
		return bus.UnmappedAddress(originPIO + idx)
	}
	return nil
}
