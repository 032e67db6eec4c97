// Package sim is a simulation of the peripherals used by the game. It
// implements the bus.Bus interface so the display driver and the paddle
// sampler can run on a desktop computer exactly as they would on the real
// board.
//
// Transmissions to the DAC move the beam of a virtual oscilloscope. The
// paddles are virtual knobs that can be turned by the GUI.
//
// Busy flags are modelled in wall-clock time. A transmission keeps the SPI
// busy for the transfer time and a conversion keeps the ADC busy for the
// conversion time. The busy-wait loops of the display driver therefore take
// about as long as they would on the real hardware.
package sim

import (
	"time"

	"github.com/jetsetilly/xypong/hardware/bus"
)

// Beam is the destination of the DAC. In practice this is a scope.Scope
type Beam interface {
	Point(x, y int)
}

// Area is a bank of registers. The idx argument is the address of the
// register with the origin of the area removed. In other words, the area
// doesn't need to know about its location in memory, only the relative
// placement of registers within the area
type Area interface {
	Label() string
	Read(idx uint32) (uint32, error)
	Write(idx uint32, data uint32) error
}

// the origin of each area
const (
	originADC = 0xfffd8000
	originSPI = 0xfffe0000
	originPIO = 0xfffff400
	originPMC = 0xfffffc00
	areaSize  = 0x100
)

// Board implements the bus.Bus interface
type Board struct {
	PMC *PMC
	PIO *PIO
	SPI *SPI
	ADC *ADC
}

// NewBoard is the preferred method of initialisation for the Board type
func NewBoard(beam Beam, transfer time.Duration, conversion time.Duration) *Board {
	return &Board{
		PMC: &PMC{},
		PIO: &PIO{psr: 0xffffffff},
		SPI: newSPI(beam, transfer, time.Now),
		ADC: newADC(conversion, time.Now),
	}
}

// MapAddress returns the area that contains the address and the index of the
// address within the area. The area is nil if the address is unmapped
func (b *Board) MapAddress(address uint32) (uint32, Area) {
	switch {
	case address >= originADC && address < originADC+areaSize:
		return address - originADC, b.ADC
	case address >= originSPI && address < originSPI+areaSize:
		return address - originSPI, b.SPI
	case address >= originPIO && address < originPIO+areaSize:
		return address - originPIO, b.PIO
	case address >= originPMC && address < originPMC+areaSize:
		return address - originPMC, b.PMC
	}
	return 0, nil
}

// Read implements the bus.Bus interface
func (b *Board) Read(address uint32) (uint32, error) {
	idx, area := b.MapAddress(address)
	if area == nil {
		return 0, bus.UnmappedAddress(address)
	}
	return area.Read(idx)
}

// Write implements the bus.Bus interface
func (b *Board) Write(address uint32, data uint32) error {
	idx, area := b.MapAddress(address)
	if area == nil {
		return bus.UnmappedAddress(address)
	}
	return area.Write(idx, data)
}

// SetKnob turns the paddle knob for a player. The value is in the range 0 to
// 1 and is clamped if necessary
func (b *Board) SetKnob(player int, value float64) {
	b.ADC.setKnob(player, value)
}
