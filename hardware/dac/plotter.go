// Package dac positions the oscilloscope beam. The X and Y inputs of the
// oscilloscope are driven by the two channels of a DAC, which is fed one word
// at a time through the SPI transmit register.
package dac

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/hardware/timing"
)

// The addressable range of both axes
const (
	MinCoord = 0
	MaxCoord = registers.MaxLaneCoord
)

// DefaultWait is the polling delay between checks of the transmit-ready flag
const DefaultWait = 1000

// Plotter moves the beam to a point
type Plotter struct {
	timer *timing.Timer
	tdr   bus.Register
	sr    bus.Register

	// Wait is the value passed to ConversionWait() after each transmission
	Wait int

	// the number of coordinates that had to be clamped
	clamped int
}

// NewPlotter is the preferred method of initialisation for the Plotter type
func NewPlotter(b bus.Bus, timer *timing.Timer) *Plotter {
	return &Plotter{
		timer: timer,
		tdr:   bus.NewRegister(b, registers.SPI_TDR),
		sr:    bus.NewRegister(b, registers.SPI_SR),
		Wait:  DefaultWait,
	}
}

// Clamped returns the number of coordinates that have been outside the
// addressable range
func (p *Plotter) Clamped() int {
	return p.clamped
}

func (p *Plotter) clamp(v int) int {
	if v < MinCoord {
		p.clamped++
		return MinCoord
	}
	if v > MaxCoord {
		p.clamped++
		return MaxCoord
	}
	return v
}

// Lane returns the word that is sent to the DAC for a coordinate. The
// coordinate must be in range
func Lane(tag uint32, v int) uint32 {
	return tag | uint32(v)<<registers.LaneShift
}

// DrawPoint moves the beam to (x, y). The X channel is always written first.
// Each transmission is followed by a wait for the transmit register to become
// ready again so that when the function returns the beam has settled on both
// axes
func (p *Plotter) DrawPoint(x, y int) error {
	x = p.clamp(x)
	y = p.clamp(y)

	if err := p.tdr.Store(Lane(registers.LaneX, x)); err != nil {
		return fmt.Errorf("dac: %w", err)
	}
	if err := p.timer.ConversionWait(p.Wait, p.sr.Busy(registers.SPIReadyTDR)); err != nil {
		return fmt.Errorf("dac: %w", err)
	}

	if err := p.tdr.Store(Lane(registers.LaneY, y)); err != nil {
		return fmt.Errorf("dac: %w", err)
	}
	if err := p.timer.ConversionWait(p.Wait, p.sr.Busy(registers.SPIReadyTDR)); err != nil {
		return fmt.Errorf("dac: %w", err)
	}

	return nil
}
