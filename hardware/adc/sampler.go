// Package adc reads the two paddles. The paddles are potentiometers wired to
// channels 4 and 5 of the analogue to digital converter.
package adc

import (
	"fmt"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
	"github.com/jetsetilly/xypong/hardware/timing"
)

// Normalisation constants. A raw sample is converted to a screen coordinate
// by removing the zero offset and multiplying by the gain. Results below the
// margin are replaced by their absolute value so that the paddle centre is
// never below the floor
const (
	ZeroOffset = 153
	Gain       = 2
	Margin     = 50
)

// DefaultWait is the polling delay between checks of the end-of-conversion
// flag. The status register is polled with no delay at all
const DefaultWait = 0

// Normalise converts a raw sample into the vertical centre of a paddle
func Normalise(raw int) int {
	v := (raw - ZeroOffset) * Gain
	if v < Margin {
		return max(v, -v)
	}
	return v
}

// Sampler triggers conversions and reads the results
type Sampler struct {
	timer *timing.Timer
	cr    bus.Register
	sr    bus.Register
	cdr   [2]bus.Register

	// Wait is the value passed to ConversionWait() while polling
	Wait int
}

// NewSampler is the preferred method of initialisation for the Sampler type
func NewSampler(b bus.Bus, timer *timing.Timer) *Sampler {
	return &Sampler{
		timer: timer,
		cr:    bus.NewRegister(b, registers.ADC_CR),
		sr:    bus.NewRegister(b, registers.ADC_SR),
		cdr: [2]bus.Register{
			bus.NewRegister(b, registers.ADC_CDR4),
			bus.NewRegister(b, registers.ADC_CDR5),
		},
		Wait: DefaultWait,
	}
}

// Raw starts a conversion and returns the unprocessed samples for both
// paddles. Only channel 4 is waited for. Both channels are converted in the
// same sequence and channel 5 completes immediately after channel 4
func (s *Sampler) Raw() (int, int, error) {
	if err := s.cr.Store(registers.ADCStart); err != nil {
		return 0, 0, fmt.Errorf("adc: %w", err)
	}
	if err := s.timer.ConversionWait(s.Wait, s.sr.Busy(registers.ADCEOC4)); err != nil {
		return 0, 0, fmt.Errorf("adc: %w", err)
	}

	var raw [2]int
	for i, r := range s.cdr {
		v, err := r.Load()
		if err != nil {
			return 0, 0, fmt.Errorf("adc: %w", err)
		}
		raw[i] = int(v)
	}

	return raw[0], raw[1], nil
}

// SamplePaddles returns the normalised centre positions of both paddles
func (s *Sampler) SamplePaddles() (int, int, error) {
	p1, p2, err := s.Raw()
	if err != nil {
		return 0, 0, err
	}
	return Normalise(p1), Normalise(p2), nil
}
