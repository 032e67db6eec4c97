package sim

import (
	"fmt"
	"time"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/logger"
)

// SPIENS is the bit in SPI_SR that reports whether the SPI is enabled
const SPIENS = 0x10000

// SPI is the serial peripheral interface and the DAC attached to it
type SPI struct {
	beam     Beam
	transfer time.Duration
	now      func() time.Time

	enabled bool
	mr      uint32
	csr0    uint32

	// the transmit data register is not ready until this time
	busyUntil time.Time

	// the last word transmitted and the number of transmissions
	last      uint32
	transmits int

	// the X channel of the DAC
	x int
}

func newSPI(beam Beam, transfer time.Duration, now func() time.Time) *SPI {
	return &SPI{
		beam:     beam,
		transfer: transfer,
		now:      now,
	}
}

// Label implements the Area interface
func (spi *SPI) Label() string {
	return "SPI"
}

func (spi *SPI) String() string {
	return fmt.Sprintf("SPI: enabled=%v mode=%02x csr0=%03x last=%04x", spi.enabled, spi.mr, spi.csr0, spi.last)
}

// Transmits returns the number of words transmitted to the DAC
func (spi *SPI) Transmits() int {
	return spi.transmits
}

func (spi *SPI) reset() {
	spi.enabled = false
	spi.mr = 0
	spi.csr0 = 0
	spi.busyUntil = time.Time{}
}

// Read implements the Area interface
func (spi *SPI) Read(idx uint32) (uint32, error) {
	switch idx {
	case 0x00, 0x0c:
		// control and transmit data are write-only
		return 0, nil
	case 0x04:
		return spi.mr, nil
	case 0x08:
		// nothing is ever received from the DAC
		return 0, nil
	case 0x10:
		var sr uint32
		if spi.enabled {
			sr |= SPIENS
		}
		if !spi.now().Before(spi.busyUntil) {
			sr |= registers.SPIReadyTDR
		}
		return sr, nil
	case 0x30:
		return spi.csr0, nil
	}
	return 0, bus.UnmappedAddress(originSPI + idx)
}

// Write implements the Area interface
func (spi *SPI) Write(idx uint32, data uint32) error {
	switch idx {
	case 0x00:
		if data&registers.SPIReset == registers.SPIReset {
			spi.reset()
		}
		if data&registers.SPIEnable == registers.SPIEnable {
			spi.enabled = true
		}
	case 0x04:
		spi.mr = data
	case 0x0c:
		spi.transmit(data)
	case 0x30:
		spi.csr0 = data
	default:
		return bus.UnmappedAddress(originSPI + idx)
	}
	return nil
}

func (spi *SPI) transmit(data uint32) {
	if !spi.enabled {
		logger.Logf(logger.Allow, "sim", "SPI transmission while disabled: %04x", data)
		return
	}

	spi.last = data
	spi.transmits++
	spi.busyUntil = spi.now().Add(spi.transfer)

	v := int(data&registers.LaneValue) >> registers.LaneShift
	switch data & registers.LaneMask {
	case registers.LaneX:
		spi.x = v
	case registers.LaneY:
		// the beam is considered to have arrived once both channels have been
		// written
		spi.beam.Point(spi.x, v)
	}
}
