// Package preamble brings up the peripherals. It must be run once before the
// first point is drawn or the first paddle sample is taken.
package preamble

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/hardware/timing"
)

// DefaultWait is the polling delay used while waiting for the first SPI
// transmission to complete
const DefaultWait = 100

// Step is a single register write in the bring-up sequence
type Step struct {
	Address uint32
	Data    uint32
}

// Clocks, pins and SPI setup. The final SPI write is a dummy word sent to the
// DAC to check that the serial path works
var spiSequence = []Step{
	{registers.PMC_PCER, 1<<registers.IDPIOA | 1<<registers.IDADC | 1<<registers.IDSPI},

	// pins 11 to 14 of PIOA are MISO, MOSI, SPCK and NPCS0
	{registers.PIO_PDR, 0x7800},
	{registers.PIO_ASR, 0x7800},

	{registers.SPI_CR, registers.SPIReset},
	{registers.SPI_CR, registers.SPIEnable},

	// master mode, mode fault detection disabled
	{registers.SPI_MR, 0x11},

	// clock polarity/phase, 16 bits per transfer, clock divider of 1
	{registers.SPI_CSR0, 0x183},

	{registers.SPI_TDR, 0xd002},
}

// ADC setup. Channels 4 and 5 are enabled
var adcSequence = []Step{
	{registers.ADC_CR, registers.ADCReset},
	{registers.ADC_CHER, registers.ADCEOC4 | registers.ADCEOC5},

	// sample and hold time = 3, startup = 0xb, prescale = 4
	{registers.ADC_MR, 0x030b0400},
}

// Sequence returns every write made by Preamble() in order
func Sequence() []Step {
	s := make([]Step, 0, len(spiSequence)+len(adcSequence))
	s = append(s, spiSequence...)
	s = append(s, adcSequence...)
	return s
}

// Preamble configures the peripheral bank. Running it more than once has the
// same result as running it once
func Preamble(b bus.Bus, timer *timing.Timer) error {
	for _, s := range spiSequence {
		if err := b.Write(s.Address, s.Data); err != nil {
			return fmt.Errorf("preamble: %w", err)
		}
	}

	sr := bus.NewRegister(b, registers.SPI_SR)
	if err := timer.ConversionWait(DefaultWait, sr.Busy(registers.SPIReadyTDR)); err != nil {
		return fmt.Errorf("preamble: %w", err)
	}

	for _, s := range adcSequence {
		if err := b.Write(s.Address, s.Data); err != nil {
			return fmt.Errorf("preamble: %w", err)
		}
	}

	return nil
}
