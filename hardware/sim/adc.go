package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/jetsetilly/xypong/hardware/bus"
	"github.com/jetsetilly/xypong/hardware/registers"
)

// The range of raw values produced by the paddle knobs. A knob turned fully
// one way gives KnobMin and fully the other way gives KnobMax. The range is
// chosen so that the normalised paddle centre covers the playing area
const (
	KnobMin = 153
	KnobMax = 541
)

// ADC is the analogue to digital converter with the two paddle knobs
type ADC struct {
	conversion time.Duration
	now        func() time.Time

	mr   uint32
	chsr uint32
	sr   uint32
	cdr  [8]uint32

	// conversion in progress and when it will complete
	converting bool
	readyAt    time.Time

	// knob positions for channels 4 and 5 in the range 0 to 1
	knobs [2]float64
}

func newADC(conversion time.Duration, now func() time.Time) *ADC {
	return &ADC{
		conversion: conversion,
		now:        now,
		knobs:      [2]float64{0.5, 0.5},
	}
}

// Label implements the Area interface
func (adc *ADC) Label() string {
	return "ADC"
}

func (adc *ADC) String() string {
	return fmt.Sprintf("ADC: channels=%02x status=%02x knobs=%.2f,%.2f", adc.chsr, adc.sr, adc.knobs[0], adc.knobs[1])
}

func (adc *ADC) setKnob(player int, value float64) {
	if player < 0 || player >= len(adc.knobs) {
		return
	}
	adc.knobs[player] = min(max(value, 0), 1)
}

// Knob returns the raw value that the knob for the player would produce
func (adc *ADC) Knob(player int) uint32 {
	return uint32(KnobMin + math.Round(adc.knobs[player]*(KnobMax-KnobMin)))
}

func (adc *ADC) reset() {
	adc.mr = 0
	adc.chsr = 0
	adc.sr = 0
	clear(adc.cdr[:])
	adc.converting = false
}

// complete a conversion if enough time has passed
func (adc *ADC) update() {
	if !adc.converting || adc.now().Before(adc.readyAt) {
		return
	}
	adc.converting = false

	for player, ch := range []int{4, 5} {
		if adc.chsr&(1<<ch) != 0 {
			adc.cdr[ch] = adc.Knob(player)
			adc.sr |= 1 << ch
		}
	}
}

// Read implements the Area interface
func (adc *ADC) Read(idx uint32) (uint32, error) {
	switch idx {
	case 0x00, 0x10, 0x14:
		// control, channel enable and channel disable are write-only
		return 0, nil
	case 0x04:
		return adc.mr, nil
	case 0x18:
		return adc.chsr, nil
	case 0x1c:
		adc.update()
		return adc.sr, nil
	}

	if idx >= 0x30 && idx < 0x50 && idx&0x03 == 0 {
		// reading a channel data register clears the end of conversion flag for
		// that channel
		ch := (idx - 0x30) / 4
		adc.update()
		adc.sr &^= 1 << ch
		return adc.cdr[ch], nil
	}

	return 0, bus.UnmappedAddress(originADC + idx)
}

// Write implements the Area interface
func (adc *ADC) Write(idx uint32, data uint32) error {
	switch idx {
	case 0x00:
		if data&registers.ADCReset == registers.ADCReset {
			adc.reset()
		}
		if data&registers.ADCStart == registers.ADCStart {
			adc.converting = true
			adc.readyAt = adc.now().Add(adc.conversion)
		}
	case 0x04:
		adc.mr = data
	case 0x10:
		adc.chsr |= data & 0xff
	case 0x14:
		adc.chsr &^= data & 0xff
	default:
		return bus.UnmappedAddress(originADC + idx)
	}
	return nil
}
